// Package tagger derives categorical tags from notice text by matching a
// fixed keyword list. It is deliberately not NLP: the point is to populate
// useful facets for filtering without manual tagging.
package tagger

import "strings"

type Tagger struct {
	Keywords []string
}

func New(keywords []string) *Tagger {
	return &Tagger{Keywords: keywords}
}

// Extract returns every configured keyword that appears as a literal
// substring of the joined title and summary, in keyword-list order.
// Matching is case-sensitive, mirroring the feed conventions the default
// list is written for.
func (t *Tagger) Extract(title, summary string) []string {
	if t == nil || len(t.Keywords) == 0 {
		return nil
	}
	var parts []string
	if title != "" {
		parts = append(parts, title)
	}
	if summary != "" {
		parts = append(parts, summary)
	}
	if len(parts) == 0 {
		return nil
	}
	text := strings.Join(parts, "\n")
	var out []string
	for _, kw := range t.Keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(text, kw) {
			out = append(out, kw)
		}
	}
	return out
}
