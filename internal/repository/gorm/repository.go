package gormrepository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gonggo/internal/models"
	"gonggo/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

// --- Notices ----------------------------------------------------------------

func (s *Store) GetNoticeByID(ctx context.Context, id string) (*models.Notice, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var notice models.Notice
	err := s.db.WithContext(ctx).
		Preload("Tags").
		Preload("Bookmarks").
		First(&notice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &notice, nil
}

func (s *Store) ListNotices(ctx context.Context, params repository.ListNoticesParams) ([]models.Notice, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).Model(&models.Notice{}).
		Preload("Tags").
		Preload("Bookmarks")
	if q := strings.TrimSpace(params.Query); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("title LIKE ? OR summary LIKE ?", pattern, pattern)
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.Organization != "" {
		query = query.Where("organization LIKE ?", "%"+params.Organization+"%")
	}
	for _, name := range params.Tags {
		query = query.Where(
			"EXISTS (SELECT 1 FROM notice_tags nt JOIN tags t ON t.id = nt.tag_id WHERE nt.notice_id = notices.id AND t.name = ?)",
			name,
		)
	}
	if params.BookmarkedOnly {
		query = query.Where("EXISTS (SELECT 1 FROM bookmarks b WHERE b.notice_id = notices.id)")
	}
	var items []models.Notice
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListRelatedNotices(ctx context.Context, noticeID string, tagIDs []uint, organization *string, limit int) ([]models.Notice, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	query := s.db.WithContext(ctx).Model(&models.Notice{}).
		Preload("Tags").
		Preload("Bookmarks").
		Where("id <> ?", noticeID)

	var conds []string
	var args []any
	if len(tagIDs) > 0 {
		conds = append(conds, "EXISTS (SELECT 1 FROM notice_tags nt WHERE nt.notice_id = notices.id AND nt.tag_id IN ?)")
		args = append(args, tagIDs)
	}
	if organization != nil && *organization != "" {
		conds = append(conds, "organization = ?")
		args = append(args, *organization)
	}
	if len(conds) == 0 {
		return nil, nil
	}
	query = query.Where(strings.Join(conds, " OR "), args...)

	var items []models.Notice
	if err := query.Limit(limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CreateNoticeTx(ctx context.Context, tx *gorm.DB, notice *models.Notice) error {
	if tx == nil || notice == nil {
		return nil
	}
	return tx.WithContext(ctx).Omit("Tags", "Bookmarks").Create(notice).Error
}

func (s *Store) UpdateNoticeTx(ctx context.Context, tx *gorm.DB, notice *models.Notice) error {
	if tx == nil || notice == nil {
		return nil
	}
	return tx.WithContext(ctx).
		Model(&models.Notice{}).
		Where("id = ?", notice.ID).
		Updates(map[string]any{
			"title":        notice.Title,
			"summary":      notice.Summary,
			"organization": notice.Organization,
			"category":     notice.Category,
			"link":         notice.Link,
			"detail_url":   notice.DetailURL,
			"hashtags_raw": notice.HashtagsRaw,
			"period_raw":   notice.PeriodRaw,
			"pub_date":     notice.PubDate,
			"source_date":  notice.SourceDate,
			"views":        notice.Views,
			"attachment":   notice.Attachment,
			"last_seen_at": notice.LastSeenAt,
			"raw_json":     notice.RawJSON,
		}).Error
}

func (s *Store) DeleteNoticeTagsTx(ctx context.Context, tx *gorm.DB, noticeID string) error {
	if tx == nil {
		return nil
	}
	return tx.WithContext(ctx).
		Where("notice_id = ?", noticeID).
		Delete(&models.NoticeTag{}).Error
}

// --- Tags -------------------------------------------------------------------

func (s *Store) ListTags(ctx context.Context) ([]models.Tag, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var tags []models.Tag
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *Store) UpsertTag(ctx context.Context, name string) (*models.Tag, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	return s.UpsertTagTx(ctx, s.db, name)
}

// UpsertTagTx inserts the tag if missing and returns the stored row either
// way. Name must already be normalized.
func (s *Store) UpsertTagTx(ctx context.Context, tx *gorm.DB, name string) (*models.Tag, error) {
	if tx == nil {
		return nil, nil
	}
	tag := models.Tag{Name: name}
	err := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&tag).Error
	if err != nil {
		return nil, err
	}
	if tag.ID == 0 {
		if err := tx.WithContext(ctx).First(&tag, "name = ?", name).Error; err != nil {
			return nil, err
		}
	}
	return &tag, nil
}

func (s *Store) UpsertNoticeTagTx(ctx context.Context, tx *gorm.DB, link models.NoticeTag) error {
	if tx == nil {
		return nil
	}
	return tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "notice_id"}, {Name: "tag_id"}},
		DoNothing: true,
	}).Create(&link).Error
}

// DeleteTag removes the tag and its notice associations; notices themselves
// are untouched.
func (s *Store) DeleteTag(ctx context.Context, id uint) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.NoticeTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tag{}, id).Error
	})
}

// --- Bookmarks --------------------------------------------------------------

func (s *Store) GetBookmarkByNoticeID(ctx context.Context, noticeID string) (*models.Bookmark, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var bookmark models.Bookmark
	err := s.db.WithContext(ctx).First(&bookmark, "notice_id = ?", noticeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}

func (s *Store) CreateBookmark(ctx context.Context, bookmark *models.Bookmark) error {
	if s == nil || s.db == nil || bookmark == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(bookmark).Error
}

func (s *Store) DeleteBookmark(ctx context.Context, id uint) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Delete(&models.Bookmark{}, id).Error
}

// --- Sync bookkeeping -------------------------------------------------------

func (s *Store) GetSyncState(ctx context.Context, source string) (*models.SyncState, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var state models.SyncState
	err := s.db.WithContext(ctx).First(&state, "source = ?", source).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *Store) SaveSyncState(ctx context.Context, state *models.SyncState) error {
	if s == nil || s.db == nil || state == nil {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "source"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"last_success_at",
			"last_attempt_at",
			"last_error",
			"stats_json",
		}),
	}).Create(state).Error
}

func (s *Store) ListSyncStates(ctx context.Context) ([]models.SyncState, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var states []models.SyncState
	if err := s.db.WithContext(ctx).Order("source ASC").Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}
