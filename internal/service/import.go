package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"gonggo/internal/client/bizinfo"
	"gonggo/internal/models"
	"gonggo/internal/normalize"
	"gonggo/internal/repository"
	"gonggo/internal/tagger"
)

// ImportService pulls announcement pages from the bizinfo feed and upserts
// them into storage. Each record is committed in its own transaction so one
// bad record cannot roll back the rest of the run.
type ImportService struct {
	Store  repository.Repository
	Feed   *bizinfo.Client
	Tagger *tagger.Tagger
	Logger *zap.Logger
}

type ImportOptions struct {
	SearchLclasID string
	Hashtags      string
	Pages         int
	PageUnit      int
}

type ImportResult struct {
	Saved   int `json:"saved"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

const syncSourceBizinfo = "bizinfo"

// untitledNotice stands in when the feed delivers a record with no title.
const untitledNotice = "제목 미상"

// Run fetches all configured pages, then upserts record by record. Records
// without a usable identity are counted as skipped; a storage error aborts
// the run with the partial counts accumulated so far.
func (s *ImportService) Run(ctx context.Context, opts ImportOptions) (ImportResult, error) {
	result := ImportResult{}
	if s.Store == nil || s.Feed == nil {
		return result, nil
	}

	items, err := s.Feed.FetchAllPages(ctx, opts.Pages, bizinfo.PageParams{
		PageUnit:      opts.PageUnit,
		SearchLclasID: opts.SearchLclasID,
		Hashtags:      opts.Hashtags,
	})
	if err != nil {
		s.writeSyncError(ctx, err)
		return result, err
	}

	now := time.Now().UTC()
	for _, item := range items {
		identity := item.Identity()
		if identity == "" {
			result.Skipped++
			continue
		}
		notice, tags := mapNotice(item, identity, now, s.Tagger)

		existing, err := s.Store.GetNoticeByID(ctx, identity)
		if err != nil {
			s.writeSyncError(ctx, err)
			return result, err
		}

		err = s.Store.InTx(ctx, func(tx *gorm.DB) error {
			if existing != nil {
				if err := s.Store.UpdateNoticeTx(ctx, tx, notice); err != nil {
					return err
				}
				if err := s.Store.DeleteNoticeTagsTx(ctx, tx, identity); err != nil {
					return err
				}
			} else {
				if err := s.Store.CreateNoticeTx(ctx, tx, notice); err != nil {
					return err
				}
			}
			for _, name := range tags {
				tag, err := s.Store.UpsertTagTx(ctx, tx, name)
				if err != nil {
					return err
				}
				if tag == nil {
					continue
				}
				link := models.NoticeTag{NoticeID: identity, TagID: tag.ID}
				if err := s.Store.UpsertNoticeTagTx(ctx, tx, link); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			s.writeSyncError(ctx, err)
			return result, err
		}

		if existing != nil {
			result.Updated++
		} else {
			result.Saved++
		}
	}

	s.writeSyncSuccess(ctx, now, result)
	if s.Logger != nil {
		s.Logger.Info("import finished",
			zap.Int("saved", result.Saved),
			zap.Int("updated", result.Updated),
			zap.Int("skipped", result.Skipped))
	}
	return result, nil
}

// mapNotice converts one feed record into the stored shape plus its
// normalized tag set (feed hashtags merged with keyword matches).
func mapNotice(item bizinfo.RawNotice, identity string, now time.Time, kw *tagger.Tagger) (*models.Notice, []string) {
	title := strings.TrimSpace(item.Title)
	if title == "" {
		title = untitledNotice
	}
	summary := strings.TrimSpace(item.BsnsSumryCn)

	pubDate := normalize.ParseDate(item.PubDate)
	sourceDate := normalize.ParseDate(item.CreatPnttm)
	if pubDate == nil {
		pubDate = sourceDate
	}

	var views *int
	if raw := strings.TrimSpace(string(item.InqireCo)); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			views = &parsed
		}
	}

	rawJSON, _ := json.Marshal(item)

	notice := &models.Notice{
		ID:           identity,
		Title:        title,
		Summary:      strPtr(summary),
		Organization: strPtr(strings.TrimSpace(item.JrsdInsttNm)),
		Category:     strPtr(strings.TrimSpace(item.LclasCodeNm)),
		Link:         strPtr(strings.TrimSpace(item.Link)),
		DetailURL:    strPtr(strings.TrimSpace(item.PblancURL)),
		HashtagsRaw:  strPtr(strings.TrimSpace(item.HashTag)),
		PeriodRaw:    strPtr(strings.TrimSpace(item.ReqstBeginEndDe)),
		PubDate:      pubDate,
		SourceDate:   sourceDate,
		Views:        views,
		Attachment:   strPtr(strings.TrimSpace(item.FlpthNm)),
		LastSeenAt:   now,
		RawJSON:      rawJSON,
	}

	raw := strings.Split(item.HashTag, ",")
	if kw != nil {
		raw = append(raw, kw.Extract(title, summary)...)
	}
	return notice, normalize.Tags(raw)
}

func (s *ImportService) writeSyncSuccess(ctx context.Context, attemptAt time.Time, result ImportResult) {
	now := time.Now().UTC()
	stats, _ := json.Marshal(result)
	state := &models.SyncState{
		Source:        syncSourceBizinfo,
		LastSuccessAt: &now,
		LastAttemptAt: &attemptAt,
		StatsJSON:     stats,
	}
	if err := s.Store.SaveSyncState(ctx, state); err != nil && s.Logger != nil {
		s.Logger.Warn("failed to record sync state", zap.Error(err))
	}
}

func (s *ImportService) writeSyncError(ctx context.Context, cause error) {
	if s.Logger != nil {
		s.Logger.Warn("import failed", zap.Error(cause))
	}
	now := time.Now().UTC()
	state := &models.SyncState{
		Source:        syncSourceBizinfo,
		LastAttemptAt: &now,
		LastError:     strPtr(cause.Error()),
	}
	_ = s.Store.SaveSyncState(ctx, state)
}

// strPtr returns nil for the empty string so optional columns stay NULL.
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
