package models

type NoticeTag struct {
	NoticeID string `gorm:"primaryKey;type:text"`
	TagID    uint   `gorm:"primaryKey"`
}

func (NoticeTag) TableName() string {
	return "notice_tags"
}
