package models

// Range is a half-open [Start, End) span of rune offsets into a message text.
type Range struct {
	Start int
	End   int
}

// Len returns the span width in runes.
func (r Range) Len() int { return r.End - r.Start }

// SearchHit lists the matches found in one transcript message.
type SearchHit struct {
	ItemIndex int
	MessageID string
	Ranges    []Range
}

// CountsByDate maps a display date to the number of match ranges on it.
type CountsByDate map[string]int
