package models

import "time"

// Tag names are stored post-normalization (trimmed, NFC, lowercased when the
// raw text carried ASCII uppercase), so uniqueness is on the canonical form.
type Tag struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:text;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
}

func (Tag) TableName() string {
	return "tags"
}
