package ranking

import (
	"testing"
	"time"

	"gonggo/internal/models"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }

func TestSortNewest(t *testing.T) {
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	notices := []models.Notice{
		{ID: "a", PubDate: timePtr(older)},
		{ID: "b", PubDate: timePtr(newer)},
		{ID: "c"}, // no dates at all, sorts last
	}
	got := Sort(notices, SortNewest)
	if got[0].ID != "b" || got[1].ID != "a" || got[2].ID != "c" {
		t.Fatalf("newest order = %s,%s,%s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestSortNewestUsesLaterOfDates(t *testing.T) {
	pub := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	src := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	notices := []models.Notice{
		{ID: "a", PubDate: timePtr(pub), SourceDate: timePtr(src)},
		{ID: "b", PubDate: timePtr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))},
	}
	got := Sort(notices, SortNewest)
	if got[0].ID != "a" {
		t.Fatalf("expected later source date to win, got %s first", got[0].ID)
	}
}

func TestSortPopular(t *testing.T) {
	notices := []models.Notice{
		{ID: "low", Views: intPtr(50)},
		{ID: "high", Views: intPtr(100)},
		{ID: "none"},
	}
	got := Sort(notices, SortPopular)
	if got[0].ID != "high" || got[1].ID != "low" || got[2].ID != "none" {
		t.Fatalf("popular order = %s,%s,%s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestSortDeadline(t *testing.T) {
	notices := []models.Notice{
		{ID: "none", PeriodRaw: strPtr("상시모집"), Views: intPtr(9999)},
		{ID: "late", PeriodRaw: strPtr("20240101 ~ 20241231")},
		{ID: "soon", PeriodRaw: strPtr("20240101 ~ 20240301")},
	}
	got := Sort(notices, SortDeadline)
	if got[0].ID != "soon" || got[1].ID != "late" {
		t.Fatalf("deadline order = %s,%s,%s", got[0].ID, got[1].ID, got[2].ID)
	}
	if got[2].ID != "none" {
		t.Fatalf("unparsable deadline must sort last, got %s", got[2].ID)
	}
}

func TestSortUnknownKeyFallsBackToNewest(t *testing.T) {
	newer := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	notices := []models.Notice{
		{ID: "a", PubDate: timePtr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))},
		{ID: "b", PubDate: timePtr(newer)},
	}
	got := Sort(notices, "bogus")
	if got[0].ID != "b" {
		t.Fatalf("fallback order = %s first, want b", got[0].ID)
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	notices := []models.Notice{
		{ID: "a", Views: intPtr(1)},
		{ID: "b", Views: intPtr(2)},
	}
	Sort(notices, SortPopular)
	if notices[0].ID != "a" {
		t.Fatalf("input slice was reordered")
	}
}

func TestFilterQuery(t *testing.T) {
	notices := []models.Notice{
		{ID: "a", Title: "수출바우처 모집"},
		{ID: "b", Title: "창업 지원", Summary: strPtr("수출 기업 대상")},
		{ID: "c", Title: "기타"},
	}
	got := Filter(notices, FilterParams{Query: "수출"})
	if len(got) != 2 {
		t.Fatalf("query filter kept %d, want 2", len(got))
	}
}

func TestFilterCategoryAndOrganization(t *testing.T) {
	notices := []models.Notice{
		{ID: "a", Category: strPtr("금융"), Organization: strPtr("중소벤처기업부")},
		{ID: "b", Category: strPtr("수출"), Organization: strPtr("산업통상자원부")},
		{ID: "c"},
	}
	if got := Filter(notices, FilterParams{Category: "금융"}); len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("category filter = %v", got)
	}
	if got := Filter(notices, FilterParams{Organization: "벤처"}); len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("organization substring filter = %v", got)
	}
}

func TestFilterTagSuperset(t *testing.T) {
	notices := []models.Notice{
		{ID: "both", Tags: []models.Tag{{Name: "수출"}, {Name: "창업"}}},
		{ID: "one", Tags: []models.Tag{{Name: "수출"}}},
	}
	got := Filter(notices, FilterParams{Tags: []string{"수출", "창업"}})
	if len(got) != 1 || got[0].ID != "both" {
		t.Fatalf("tag superset filter = %v", got)
	}
}

func TestFilterPeriodWindow(t *testing.T) {
	notices := []models.Notice{
		{ID: "inside", PeriodRaw: strPtr("20240110 ~ 20240120")},
		{ID: "ended", PeriodRaw: strPtr("20231101 ~ 20231215")},
		{ID: "future", PeriodRaw: strPtr("20240301 ~ 20240601")},
		{ID: "straddles", PeriodRaw: strPtr("20231201 ~ 20240120")},
		{ID: "open", PeriodRaw: strPtr("상시")},
	}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	got := Filter(notices, FilterParams{Start: &start, End: &end})
	// overlap keeps anything whose window touches [start,end]; an
	// unparsable period is open on both sides and always overlaps
	want := map[string]bool{"inside": true, "straddles": true, "open": true}
	if len(got) != len(want) {
		t.Fatalf("period filter = %v, want %v", got, want)
	}
	for _, n := range got {
		if !want[n.ID] {
			t.Fatalf("period filter kept %q unexpectedly", n.ID)
		}
	}
}

func TestFilterZeroParamsKeepsAll(t *testing.T) {
	notices := []models.Notice{{ID: "a"}, {ID: "b"}}
	if got := Filter(notices, FilterParams{}); len(got) != 2 {
		t.Fatalf("zero filter kept %d, want 2", len(got))
	}
}
