package models

import "time"

// Bookmark marks a saved notice. The unique index on NoticeID keeps creation
// idempotent: at most one bookmark per notice.
type Bookmark struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	NoticeID  string    `gorm:"type:text;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
