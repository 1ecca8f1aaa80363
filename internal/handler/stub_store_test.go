package handler

import (
	"context"

	"gonggo/internal/models"
	"gonggo/internal/repository"
)

// stubStore is the in-memory repository behind the handler tests. Methods a
// test never reaches panic through the embedded nil interface.
type stubStore struct {
	repository.Repository

	notices   map[string]*models.Notice
	bookmarks map[string]*models.Bookmark
	tags      map[uint]*models.Tag
	links     map[string]map[uint]struct{}

	nextBookmarkID      uint
	createBookmarkCalls int
}

func newStubStore() *stubStore {
	return &stubStore{
		notices:   map[string]*models.Notice{},
		bookmarks: map[string]*models.Bookmark{},
		tags:      map[uint]*models.Tag{},
		links:     map[string]map[uint]struct{}{},
	}
}

func (s *stubStore) GetNoticeByID(ctx context.Context, id string) (*models.Notice, error) {
	n, ok := s.notices[id]
	if !ok {
		return nil, nil
	}
	out := *n
	return &out, nil
}

func (s *stubStore) GetBookmarkByNoticeID(ctx context.Context, noticeID string) (*models.Bookmark, error) {
	b, ok := s.bookmarks[noticeID]
	if !ok {
		return nil, nil
	}
	out := *b
	return &out, nil
}

func (s *stubStore) CreateBookmark(ctx context.Context, bookmark *models.Bookmark) error {
	s.createBookmarkCalls++
	s.nextBookmarkID++
	bookmark.ID = s.nextBookmarkID
	stored := *bookmark
	s.bookmarks[bookmark.NoticeID] = &stored
	return nil
}

// DeleteTag removes the tag and its notice links; notices stay untouched,
// matching the transactional delete in the gorm store.
func (s *stubStore) DeleteTag(ctx context.Context, id uint) error {
	delete(s.tags, id)
	for _, set := range s.links {
		delete(set, id)
	}
	return nil
}
