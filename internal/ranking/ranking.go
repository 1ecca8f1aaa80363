// Package ranking filters and orders in-memory notice collections for the
// query path. Filtering is a pure predicate pass and always runs before
// ordering; every predicate is optional.
package ranking

import (
	"sort"
	"strings"
	"time"

	"gonggo/internal/models"
	"gonggo/internal/normalize"
)

const (
	SortNewest   = "newest"
	SortPopular  = "popular"
	SortDeadline = "deadline"
)

// Sort reorders a copy of notices by the given key. Unrecognized keys fall
// back to newest. Ordering beyond the primary key follows whatever order the
// input arrived in.
func Sort(notices []models.Notice, sortKey string) []models.Notice {
	out := make([]models.Notice, len(notices))
	copy(out, notices)
	switch sortKey {
	case SortPopular:
		sort.Slice(out, func(i, j int) bool {
			vi, vj := views(out[i]), views(out[j])
			if vi != vj {
				return vi > vj
			}
			return newestKey(out[i]).After(newestKey(out[j]))
		})
	case SortDeadline:
		// parse each period once, outside the comparator
		ends := make([]*time.Time, len(out))
		order := make([]int, len(out))
		for i, n := range out {
			ends[i] = deadline(n)
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool {
			return deadlineBefore(ends[order[i]], ends[order[j]])
		})
		sorted := make([]models.Notice, len(out))
		for pos, idx := range order {
			sorted[pos] = out[idx]
		}
		out = sorted
	default:
		sort.Slice(out, func(i, j int) bool {
			return newestKey(out[i]).After(newestKey(out[j]))
		})
	}
	return out
}

// newestKey is the later of the publish and source timestamps. A notice with
// neither keeps the zero time and sorts last.
func newestKey(n models.Notice) time.Time {
	var key time.Time
	if n.PubDate != nil {
		key = *n.PubDate
	}
	if n.SourceDate != nil && n.SourceDate.After(key) {
		key = *n.SourceDate
	}
	return key
}

func views(n models.Notice) int {
	if n.Views == nil {
		return 0
	}
	return *n.Views
}

func deadline(n models.Notice) *time.Time {
	if n.PeriodRaw == nil {
		return nil
	}
	return normalize.ParsePeriod(*n.PeriodRaw).End
}

// deadlineBefore orders parsable deadlines ascending; a nil deadline sorts
// after every parsable one.
func deadlineBefore(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.Before(*b)
}

// FilterParams are all optional; a zero value matches everything.
type FilterParams struct {
	Query        string
	Category     string
	Organization string
	Tags         []string
	Start        *time.Time
	End          *time.Time
}

// Filter keeps notices matching every present predicate: free-text substring
// on title/summary, category equality, organization substring, tag-set
// superset containment, and period overlap against the Start/End window.
func Filter(notices []models.Notice, f FilterParams) []models.Notice {
	out := make([]models.Notice, 0, len(notices))
	for _, n := range notices {
		if Matches(n, f) {
			out = append(out, n)
		}
	}
	return out
}

func Matches(n models.Notice, f FilterParams) bool {
	if f.Query != "" {
		summary := ""
		if n.Summary != nil {
			summary = *n.Summary
		}
		if !strings.Contains(n.Title, f.Query) && !strings.Contains(summary, f.Query) {
			return false
		}
	}
	if f.Category != "" {
		if n.Category == nil || *n.Category != f.Category {
			return false
		}
	}
	if f.Organization != "" {
		if n.Organization == nil || !strings.Contains(*n.Organization, f.Organization) {
			return false
		}
	}
	if len(f.Tags) > 0 {
		names := make(map[string]struct{}, len(n.Tags))
		for _, tag := range n.Tags {
			names[tag.Name] = struct{}{}
		}
		for _, want := range f.Tags {
			if _, ok := names[want]; !ok {
				return false
			}
		}
	}
	if f.Start != nil || f.End != nil {
		var period normalize.Period
		if n.PeriodRaw != nil {
			period = normalize.ParsePeriod(*n.PeriodRaw)
		}
		// overlap test; a nil period side is open-ended and never excludes
		if f.End != nil && period.Start != nil && period.Start.After(*f.End) {
			return false
		}
		if f.Start != nil && period.End != nil && period.End.Before(*f.Start) {
			return false
		}
	}
	return true
}
