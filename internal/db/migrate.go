package db

import (
	"gonggo/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	return db.Gorm.AutoMigrate(
		&models.Notice{},
		&models.Tag{},
		&models.NoticeTag{},
		&models.Bookmark{},
		&models.SyncState{},
	)
}
