// Package normalize canonicalizes raw feed fields (tag names, dates, period
// strings) so that visually identical values compare equal and malformed
// values degrade to nil instead of failing an import batch.
package normalize

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// KST is the zone applied to bare upstream timestamps; both government feeds
// publish local Korean time without an offset.
var KST = time.FixedZone("KST", 9*60*60)

// TagName canonicalizes a raw tag: trims, collapses whitespace runs to one
// space, folds to NFC so multi-codepoint and precomposed Hangul/Latin forms
// compare equal, and lowercases only when the input carries ASCII uppercase.
// Non-Latin scripts keep their original case. May return "" for blank input;
// callers must reject empty names before use.
func TagName(raw string) string {
	s := strings.Join(strings.Fields(raw), " ")
	s = norm.NFC.String(s)
	if hasASCIIUpper(s) {
		s = strings.ToLower(s)
	}
	return s
}

func hasASCIIUpper(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			return true
		}
	}
	return false
}

// Tags normalizes each entry and deduplicates by the canonical form,
// preserving first-seen order. Blank entries are dropped.
func Tags(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := map[string]struct{}{}
	for _, item := range raw {
		name := TagName(item)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Period is the application/bid window parsed from a raw period string.
// A side that is missing or unparsable is nil (open-ended).
type Period struct {
	Start *time.Time
	End   *time.Time
}

// periodSeparators in order of likelihood. The feeds use the canonical tilde
// plus a handful of look-alikes; plain hyphen is excluded because it appears
// inside ISO dates.
var periodSeparators = []string{"~", "～", "∼", "–"}

// ParsePeriod splits a raw "start ~ end" string and parses each side
// independently. It never returns an error: garbage in, open period out.
func ParsePeriod(raw string) Period {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Period{}
	}
	for _, sep := range periodSeparators {
		if idx := strings.Index(text, sep); idx >= 0 {
			return Period{
				Start: ParseDate(text[:idx]),
				End:   ParseDate(text[idx+len(sep):]),
			}
		}
	}
	return Period{Start: ParseDate(text)}
}

// dateLayouts for delimited forms. Bare-digit forms (8/12/14 digits) are
// handled by injecting delimiters first, matching the feed conventions.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006.01.02 15:04:05",
	"2006.01.02",
}

// ParseDate parses the date spellings seen across both feeds. Returns nil for
// anything it cannot parse.
func ParseDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if isDigits(s) {
		switch len(s) {
		case 8:
			s = s[0:4] + "-" + s[4:6] + "-" + s[6:8]
		case 12:
			s = s[0:4] + "-" + s[4:6] + "-" + s[6:8] + " " + s[8:10] + ":" + s[10:12]
		case 14:
			s = s[0:4] + "-" + s[4:6] + "-" + s[6:8] + " " + s[8:10] + ":" + s[10:12] + ":" + s[12:14]
		default:
			return nil
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, KST); err == nil {
			return &t
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
