package service

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"gonggo/internal/models"
	"gonggo/internal/repository"
)

// stubRepo is an in-memory Repository for service tests. Tx methods ignore
// the *gorm.DB handle; InTx just runs the callback.
type stubRepo struct {
	notices        map[string]*models.Notice
	tags           map[string]*models.Tag
	links          map[string]map[uint]struct{}
	bookmarks      map[string]*models.Bookmark
	states         map[string]*models.SyncState
	nextTagID      uint
	nextBookmarkID uint
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		notices:   map[string]*models.Notice{},
		tags:      map[string]*models.Tag{},
		links:     map[string]map[uint]struct{}{},
		bookmarks: map[string]*models.Bookmark{},
		states:    map[string]*models.SyncState{},
	}
}

var _ repository.Repository = (*stubRepo)(nil)

func (r *stubRepo) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func (r *stubRepo) materialize(n *models.Notice) models.Notice {
	out := *n
	out.Tags = nil
	out.Bookmarks = nil
	ids := make([]uint, 0, len(r.links[n.ID]))
	for id := range r.links[n.ID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		for _, tag := range r.tags {
			if tag.ID == id {
				out.Tags = append(out.Tags, *tag)
			}
		}
	}
	if b, ok := r.bookmarks[n.ID]; ok {
		out.Bookmarks = []models.Bookmark{*b}
	}
	return out
}

func (r *stubRepo) GetNoticeByID(ctx context.Context, id string) (*models.Notice, error) {
	n, ok := r.notices[id]
	if !ok {
		return nil, nil
	}
	out := r.materialize(n)
	return &out, nil
}

func (r *stubRepo) ListNotices(ctx context.Context, params repository.ListNoticesParams) ([]models.Notice, error) {
	var out []models.Notice
	for _, n := range r.notices {
		m := r.materialize(n)
		if params.Query != "" {
			summary := ""
			if m.Summary != nil {
				summary = *m.Summary
			}
			if !strings.Contains(m.Title, params.Query) && !strings.Contains(summary, params.Query) {
				continue
			}
		}
		if params.Category != "" && (m.Category == nil || *m.Category != params.Category) {
			continue
		}
		if params.Organization != "" && (m.Organization == nil || !strings.Contains(*m.Organization, params.Organization)) {
			continue
		}
		if len(params.Tags) > 0 {
			names := map[string]struct{}{}
			for _, tag := range m.Tags {
				names[tag.Name] = struct{}{}
			}
			miss := false
			for _, want := range params.Tags {
				if _, ok := names[want]; !ok {
					miss = true
					break
				}
			}
			if miss {
				continue
			}
		}
		if params.BookmarkedOnly && len(m.Bookmarks) == 0 {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubRepo) ListRelatedNotices(ctx context.Context, noticeID string, tagIDs []uint, organization *string, limit int) ([]models.Notice, error) {
	wanted := map[uint]struct{}{}
	for _, id := range tagIDs {
		wanted[id] = struct{}{}
	}
	var out []models.Notice
	for _, n := range r.notices {
		if n.ID == noticeID {
			continue
		}
		matched := false
		for id := range r.links[n.ID] {
			if _, ok := wanted[id]; ok {
				matched = true
				break
			}
		}
		if !matched && organization != nil && n.Organization != nil && *n.Organization == *organization {
			matched = true
		}
		if matched {
			out = append(out, r.materialize(n))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubRepo) CreateNoticeTx(ctx context.Context, tx *gorm.DB, notice *models.Notice) error {
	copied := *notice
	r.notices[notice.ID] = &copied
	return nil
}

func (r *stubRepo) UpdateNoticeTx(ctx context.Context, tx *gorm.DB, notice *models.Notice) error {
	copied := *notice
	r.notices[notice.ID] = &copied
	return nil
}

func (r *stubRepo) DeleteNoticeTagsTx(ctx context.Context, tx *gorm.DB, noticeID string) error {
	delete(r.links, noticeID)
	return nil
}

func (r *stubRepo) ListTags(ctx context.Context) ([]models.Tag, error) {
	var out []models.Tag
	for _, tag := range r.tags {
		out = append(out, *tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubRepo) UpsertTag(ctx context.Context, name string) (*models.Tag, error) {
	return r.UpsertTagTx(ctx, nil, name)
}

func (r *stubRepo) UpsertTagTx(ctx context.Context, tx *gorm.DB, name string) (*models.Tag, error) {
	if tag, ok := r.tags[name]; ok {
		out := *tag
		return &out, nil
	}
	r.nextTagID++
	tag := &models.Tag{ID: r.nextTagID, Name: name}
	r.tags[name] = tag
	out := *tag
	return &out, nil
}

func (r *stubRepo) UpsertNoticeTagTx(ctx context.Context, tx *gorm.DB, link models.NoticeTag) error {
	if r.links[link.NoticeID] == nil {
		r.links[link.NoticeID] = map[uint]struct{}{}
	}
	r.links[link.NoticeID][link.TagID] = struct{}{}
	return nil
}

func (r *stubRepo) DeleteTag(ctx context.Context, id uint) error {
	for name, tag := range r.tags {
		if tag.ID == id {
			delete(r.tags, name)
		}
	}
	for _, set := range r.links {
		delete(set, id)
	}
	return nil
}

func (r *stubRepo) GetBookmarkByNoticeID(ctx context.Context, noticeID string) (*models.Bookmark, error) {
	b, ok := r.bookmarks[noticeID]
	if !ok {
		return nil, nil
	}
	out := *b
	return &out, nil
}

func (r *stubRepo) CreateBookmark(ctx context.Context, bookmark *models.Bookmark) error {
	r.nextBookmarkID++
	bookmark.ID = r.nextBookmarkID
	copied := *bookmark
	r.bookmarks[bookmark.NoticeID] = &copied
	return nil
}

func (r *stubRepo) DeleteBookmark(ctx context.Context, id uint) error {
	for noticeID, b := range r.bookmarks {
		if b.ID == id {
			delete(r.bookmarks, noticeID)
		}
	}
	return nil
}

func (r *stubRepo) GetSyncState(ctx context.Context, source string) (*models.SyncState, error) {
	s, ok := r.states[source]
	if !ok {
		return nil, nil
	}
	out := *s
	return &out, nil
}

func (r *stubRepo) SaveSyncState(ctx context.Context, state *models.SyncState) error {
	copied := *state
	r.states[state.Source] = &copied
	return nil
}

func (r *stubRepo) ListSyncStates(ctx context.Context) ([]models.SyncState, error) {
	var out []models.SyncState
	for _, s := range r.states {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Source < out[j].Source })
	return out, nil
}
