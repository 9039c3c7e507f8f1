// Package search finds query matches in a transcript. Offsets are rune
// indexes into the message text, so multi-byte scripts such as Hangul are
// measured in characters rather than bytes.
package search

import (
	"strings"
	"unicode"

	"github.com/Finz-2025/finz-coach/internal/client/models"
)

// Result is the outcome of one search over a transcript.
type Result struct {
	Hits         []models.SearchHit
	CountsByDate models.CountsByDate
}

// BuildHits returns every case-insensitive, non-overlapping occurrence of
// query in the message texts of items. Separators are not searched. Hits
// follow item order and CountsByDate counts ranges, not messages.
//
// A blank query yields an empty result.
func BuildHits(items []models.DisplayItem, query string) Result {
	res := Result{Hits: []models.SearchHit{}, CountsByDate: models.CountsByDate{}}

	q := Fold(strings.TrimSpace(query))
	if len(q) == 0 {
		return res
	}

	for i, it := range items {
		if it.IsSeparator() {
			continue
		}
		ranges := Find(it.Message.Text, q)
		if len(ranges) == 0 {
			continue
		}
		res.Hits = append(res.Hits, models.SearchHit{
			ItemIndex: i,
			MessageID: it.Message.ID,
			Ranges:    ranges,
		})
		res.CountsByDate[it.Message.Date] += len(ranges)
	}
	return res
}

// Find scans text left to right for the folded query, resuming after each
// match.
func Find(text string, q []rune) []models.Range {
	if len(q) == 0 {
		return nil
	}
	t := Fold(text)

	var out []models.Range
	for i := 0; i+len(q) <= len(t); {
		if runesEqual(t[i:i+len(q)], q) {
			out = append(out, models.Range{Start: i, End: i + len(q)})
			i += len(q)
			continue
		}
		i++
	}
	return out
}

// Fold lowercases s rune by rune. Rune count is preserved, which keeps
// offsets into the folded text valid for the original.
func Fold(s string) []rune {
	r := []rune(s)
	for i, c := range r {
		r[i] = unicode.ToLower(c)
	}
	return r
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
