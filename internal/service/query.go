package service

import (
	"context"
	"strings"
	"time"

	"gonggo/internal/models"
	"gonggo/internal/normalize"
	"gonggo/internal/ranking"
	"gonggo/internal/repository"
)

const (
	defaultPageSize   = 10
	maxPageSize       = 100
	relatedCandidates = 20
	relatedLimit      = 5
)

// NoticeQueryService answers the read side: filtered, ranked, paginated
// listings plus the detail view with its related notices.
type NoticeQueryService struct {
	Store repository.Repository
}

type ListNoticesParams struct {
	Query          string
	Category       string
	Organization   string
	Tags           []string
	Sort           string
	Page           int
	PageSize       int
	Start          *time.Time
	End            *time.Time
	BookmarkedOnly bool
}

type TagDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NoticeCardDTO is the list-view shape. Deadline carries the raw period
// string; clients parse or display it as-is.
type NoticeCardDTO struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Summary      *string    `json:"summary"`
	PubDate      *time.Time `json:"pubDate"`
	Deadline     *string    `json:"deadline"`
	Organization *string    `json:"organization"`
	Category     *string    `json:"category"`
	Tags         []TagDTO   `json:"tags"`
	Bookmarked   bool       `json:"bookmarked"`
	BookmarkID   *uint      `json:"bookmarkId"`
	Views        *int       `json:"inqireCo"`
}

type NoticeDetailDTO struct {
	NoticeCardDTO
	Link       *string         `json:"link"`
	DetailURL  *string         `json:"pblancUrl"`
	Content    *string         `json:"content"`
	Attachment *string         `json:"attachment"`
	SourceDate *time.Time      `json:"sourceDate"`
	Related    []NoticeCardDTO `json:"related"`
}

type PaginatedNotices struct {
	Items    []NoticeCardDTO `json:"items"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

// ListNotices loads the matching notices, applies the period window that
// cannot be pushed to SQL, ranks, then slices the requested page. Total is
// the filtered count, not the page length.
func (s *NoticeQueryService) ListNotices(ctx context.Context, params ListNoticesParams) (PaginatedNotices, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	out := PaginatedNotices{Items: []NoticeCardDTO{}, Page: page, PageSize: pageSize}
	if s.Store == nil {
		return out, nil
	}

	tags := normalize.Tags(params.Tags)
	notices, err := s.Store.ListNotices(ctx, repository.ListNoticesParams{
		Query:          strings.TrimSpace(params.Query),
		Category:       strings.TrimSpace(params.Category),
		Organization:   strings.TrimSpace(params.Organization),
		Tags:           tags,
		BookmarkedOnly: params.BookmarkedOnly,
	})
	if err != nil {
		return out, err
	}
	if params.Start != nil || params.End != nil {
		notices = ranking.Filter(notices, ranking.FilterParams{Start: params.Start, End: params.End})
	}
	notices = ranking.Sort(notices, params.Sort)

	out.Total = len(notices)
	offset := (page - 1) * pageSize
	if offset >= len(notices) {
		return out, nil
	}
	end := offset + pageSize
	if end > len(notices) {
		end = len(notices)
	}
	for _, n := range notices[offset:end] {
		out.Items = append(out.Items, toCard(n))
	}
	return out, nil
}

// GetNoticeDetail returns the notice with up to five related ones, or nil
// when the id is unknown. Related notices share at least one tag or come
// from the same organization, newest first.
func (s *NoticeQueryService) GetNoticeDetail(ctx context.Context, id string) (*NoticeDetailDTO, error) {
	if s.Store == nil {
		return nil, nil
	}
	notice, err := s.Store.GetNoticeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notice == nil {
		return nil, nil
	}

	tagIDs := make([]uint, 0, len(notice.Tags))
	for _, tag := range notice.Tags {
		tagIDs = append(tagIDs, tag.ID)
	}
	candidates, err := s.Store.ListRelatedNotices(ctx, notice.ID, tagIDs, notice.Organization, relatedCandidates)
	if err != nil {
		return nil, err
	}
	candidates = ranking.Sort(candidates, ranking.SortNewest)
	if len(candidates) > relatedLimit {
		candidates = candidates[:relatedLimit]
	}
	related := make([]NoticeCardDTO, 0, len(candidates))
	for _, c := range candidates {
		related = append(related, toCard(c))
	}

	detail := &NoticeDetailDTO{
		NoticeCardDTO: toCard(*notice),
		Link:          notice.Link,
		DetailURL:     notice.DetailURL,
		Content:       notice.Summary,
		Attachment:    notice.Attachment,
		SourceDate:    notice.SourceDate,
		Related:       related,
	}
	return detail, nil
}

func toCard(n models.Notice) NoticeCardDTO {
	tags := make([]TagDTO, 0, len(n.Tags))
	for _, tag := range n.Tags {
		tags = append(tags, TagDTO{ID: tag.ID, Name: tag.Name})
	}
	card := NoticeCardDTO{
		ID:           n.ID,
		Title:        n.Title,
		Summary:      n.Summary,
		PubDate:      n.PubDate,
		Organization: n.Organization,
		Category:     n.Category,
		Tags:         tags,
		Views:        n.Views,
	}
	card.Deadline = n.PeriodRaw
	if len(n.Bookmarks) > 0 {
		card.Bookmarked = true
		id := n.Bookmarks[0].ID
		card.BookmarkID = &id
	}
	return card
}
