package bizinfo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func TestFetchPageRetriesOn429WithBackoff(t *testing.T) {
	var mu sync.Mutex
	var hits []time.Time
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits = append(hits, time.Now())
		n := len(hits)
		mu.Unlock()
		if n == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"jsonArray":{"item":[]}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, "test-key")
	items, err := c.FetchPage(context.Background(), PageParams{PageIndex: 1, PageUnit: 10})
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("items = %v, want empty", items)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(hits) != 2 {
		t.Fatalf("upstream called %d times, want 2", len(hits))
	}
	if gap := hits[1].Sub(hits[0]); gap < baseBackoff {
		t.Fatalf("retry after %v, want at least %v", gap, baseBackoff)
	}
}

func TestFetchPageRetriesOn5xx(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"jsonArray":{"item":{"seq":"1","title":"단건"}}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, "k")
	items, err := c.FetchPage(context.Background(), PageParams{PageIndex: 1})
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
	if len(items) != 1 || items[0].Identity() != "1" {
		t.Fatalf("items = %+v, want the single wrapped object", items)
	}
}

func TestFetchPageDoesNotRetryClientErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, "k")
	_, err := c.FetchPage(context.Background(), PageParams{PageIndex: 1})
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := err.(*APIError)
	if !ok || apiErr.Status != http.StatusNotFound {
		t.Fatalf("err = %v, want *APIError 404", err)
	}
	if calls != 1 {
		t.Fatalf("upstream called %d times, want 1 (no retry)", calls)
	}
}

func TestFetchAllPagesSequentialConcat(t *testing.T) {
	var pages []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("pageIndex")
		pages = append(pages, page)
		switch page {
		case "1":
			w.Write([]byte(`{"jsonArray":{"item":[{"seq":"a"},{"seq":"b"}]}}`))
		default:
			w.Write([]byte(`{"jsonArray":{"item":[{"seq":"c"}]}}`))
		}
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, "k")
	items, err := c.FetchAllPages(context.Background(), 2, PageParams{PageUnit: 2})
	if err != nil {
		t.Fatalf("FetchAllPages: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	if items[0].Identity() != "a" || items[2].Identity() != "c" {
		t.Fatalf("concatenation out of order: %+v", items)
	}
	if len(pages) != 2 || pages[0] != "1" || pages[1] != "2" {
		t.Fatalf("page order = %v, want [1 2]", pages)
	}
}

func TestFetchAllPagesAbortsOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("pageIndex") == "2" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Write([]byte(`{"jsonArray":{"item":[{"seq":"a"}]}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, "k")
	items, err := c.FetchAllPages(context.Background(), 3, PageParams{})
	if err == nil {
		t.Fatal("expected error from page 2")
	}
	if items != nil {
		t.Fatalf("partial result returned: %v", items)
	}
}

func TestParseItemsEnvelopeShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"array", `{"jsonArray":{"item":[{"seq":"1"},{"seq":"2"}]}}`, 2},
		{"object", `{"jsonArray":{"item":{"seq":"1"}}}`, 1},
		{"absent", `{"jsonArray":{}}`, 0},
		{"empty body", `{}`, 0},
	}
	for _, tt := range tests {
		items, err := parseItems([]byte(tt.body))
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if len(items) != tt.want {
			t.Fatalf("%s: got %d items, want %d", tt.name, len(items), tt.want)
		}
	}
}

func TestFlexStringAcceptsNumbers(t *testing.T) {
	items, err := parseItems([]byte(`{"jsonArray":{"item":{"seq":12345,"inqireCo":678}}}`))
	if err != nil {
		t.Fatalf("parseItems: %v", err)
	}
	if items[0].Identity() != "12345" {
		t.Fatalf("identity = %q, want 12345", items[0].Identity())
	}
	if string(items[0].InqireCo) != "678" {
		t.Fatalf("inqireCo = %q, want 678", items[0].InqireCo)
	}
}
