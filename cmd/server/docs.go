package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           Gonggo API
// @version         0.1.0
// @description     Government support-program announcements and bid notices: import, search, bookmarks.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
