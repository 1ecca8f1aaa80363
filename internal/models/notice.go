package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notice is one procurement/grant announcement. ID is the upstream identity
// (bizinfo seq or pblancId) and stays stable across re-imports.
type Notice struct {
	ID           string         `gorm:"primaryKey;type:text"`
	Title        string         `gorm:"type:text;not null"`
	Summary      *string        `gorm:"type:text"`
	Organization *string        `gorm:"type:text;index"`
	Category     *string        `gorm:"type:text;index"`
	Link         *string        `gorm:"type:text"`
	DetailURL    *string        `gorm:"type:text"`
	HashtagsRaw  *string        `gorm:"type:text"`
	PeriodRaw    *string        `gorm:"type:text"`
	PubDate      *time.Time     `gorm:"type:timestamptz;index"`
	SourceDate   *time.Time     `gorm:"type:timestamptz"`
	Views        *int           `gorm:""`
	Attachment   *string        `gorm:"type:text"`
	LastSeenAt   time.Time      `gorm:"type:timestamptz;not null"`
	CreatedAt    time.Time      `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"type:timestamptz;autoUpdateTime"`
	RawJSON      datatypes.JSON `gorm:"type:jsonb"`

	Tags      []Tag      `gorm:"many2many:notice_tags;joinForeignKey:NoticeID;joinReferences:TagID"`
	Bookmarks []Bookmark `gorm:"foreignKey:NoticeID"`
}

func (Notice) TableName() string {
	return "notices"
}
