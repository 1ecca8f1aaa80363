package repository

import (
	"context"

	"gorm.io/gorm"

	"gonggo/internal/models"
)

// ListNoticesParams are the coarse filters pushed down to SQL. The period
// window cannot be expressed against the raw period string, so it is applied
// in memory by the ranking pass afterwards.
type ListNoticesParams struct {
	Query        string
	Category     string
	Organization string
	// Tags are normalized names; a notice must carry every one of them.
	Tags           []string
	BookmarkedOnly bool
}

type Repository interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error

	// Notices
	GetNoticeByID(ctx context.Context, id string) (*models.Notice, error)
	ListNotices(ctx context.Context, params ListNoticesParams) ([]models.Notice, error)
	ListRelatedNotices(ctx context.Context, noticeID string, tagIDs []uint, organization *string, limit int) ([]models.Notice, error)
	CreateNoticeTx(ctx context.Context, tx *gorm.DB, notice *models.Notice) error
	UpdateNoticeTx(ctx context.Context, tx *gorm.DB, notice *models.Notice) error
	DeleteNoticeTagsTx(ctx context.Context, tx *gorm.DB, noticeID string) error

	// Tags
	ListTags(ctx context.Context) ([]models.Tag, error)
	UpsertTag(ctx context.Context, name string) (*models.Tag, error)
	UpsertTagTx(ctx context.Context, tx *gorm.DB, name string) (*models.Tag, error)
	UpsertNoticeTagTx(ctx context.Context, tx *gorm.DB, link models.NoticeTag) error
	DeleteTag(ctx context.Context, id uint) error

	// Bookmarks
	GetBookmarkByNoticeID(ctx context.Context, noticeID string) (*models.Bookmark, error)
	CreateBookmark(ctx context.Context, bookmark *models.Bookmark) error
	DeleteBookmark(ctx context.Context, id uint) error

	// Sync bookkeeping
	GetSyncState(ctx context.Context, source string) (*models.SyncState, error)
	SaveSyncState(ctx context.Context, state *models.SyncState) error
	ListSyncStates(ctx context.Context) ([]models.SyncState, error)
}
