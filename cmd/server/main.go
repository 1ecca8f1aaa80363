package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"gonggo/internal/client/bizinfo"
	"gonggo/internal/client/nara"
	"gonggo/internal/config"
	cronrunner "gonggo/internal/cron"
	"gonggo/internal/db"
	"gonggo/internal/handler"
	"gonggo/internal/logger"
	gormrepository "gonggo/internal/repository/gorm"
	"gonggo/internal/service"
	"gonggo/internal/tagger"

	_ "gonggo/docs"
)

func main() {
	cfgPath := os.Getenv("GG_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("GG_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.SetTimezone(dbConn, cfg.DB.Timezone); err != nil {
		logger.Warn("failed to set timezone", zap.Error(err))
	}
	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	bizinfoHTTP := &http.Client{Timeout: cfg.Bizinfo.Timeout}
	bizinfoClient := bizinfo.NewClient(bizinfoHTTP, cfg.Bizinfo.BaseURL, cfg.Bizinfo.APIKey)
	naraHTTP := &http.Client{Timeout: cfg.Nara.Timeout}
	naraClient := nara.NewClient(naraHTTP, cfg.Nara.BaseURL, cfg.Nara.APIKey)

	store := gormrepository.New(dbConn.Gorm)
	keywordTagger := tagger.New(cfg.Tagger.Keywords)
	importService := &service.ImportService{
		Store:  store,
		Feed:   bizinfoClient,
		Tagger: keywordTagger,
		Logger: logger,
	}
	queryService := &service.NoticeQueryService{Store: store}

	importDefaults := service.ImportOptions{
		SearchLclasID: cfg.Import.SearchLclasID,
		Hashtags:      cfg.Import.Hashtags,
		Pages:         cfg.Import.Pages,
		PageUnit:      cfg.Import.PageUnit,
	}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm}
	healthHandler.Register(engine)
	noticeHandler := &handler.NoticeHandler{Query: queryService, Logger: logger}
	noticeHandler.Register(engine)
	tagHandler := &handler.TagHandler{Store: store, Logger: logger}
	tagHandler.Register(engine)
	bookmarkHandler := &handler.BookmarkHandler{Store: store, Query: queryService, Logger: logger}
	bookmarkHandler.Register(engine)
	importHandler := &handler.ImportHandler{Service: importService, Defaults: importDefaults, Logger: logger}
	importHandler.Register(engine)
	naraHandler := &handler.NaraHandler{Client: naraClient, Logger: logger}
	naraHandler.Register(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cronRunner := cronrunner.New(logger, ctx)
	if cfg.Cron.Enabled {
		_, err = cronRunner.Add(cfg.Cron.Import, func(ctx context.Context) {
			result, err := importService.Run(ctx, importDefaults)
			if err != nil {
				logger.Warn("cron import failed", zap.Error(err))
				return
			}
			logger.Info("cron import ok",
				zap.Int("saved", result.Saved),
				zap.Int("updated", result.Updated),
				zap.Int("skipped", result.Skipped),
			)
		})
		if err != nil {
			logger.Warn("cron register import failed", zap.Error(err))
		}
	}
	cronRunner.Start()
	defer cronRunner.Stop()

	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown failed", zap.Error(err))
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
