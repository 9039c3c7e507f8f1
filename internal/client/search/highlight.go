package search

import "github.com/Finz-2025/finz-coach/internal/client/models"

// Chunk is a run of text that is either plain or highlighted.
type Chunk struct {
	Text        string
	Highlighted bool
}

// Highlight splits text into alternating plain and highlighted chunks.
// Ranges must be ordered and non-overlapping; out-of-bounds offsets are
// clamped. Empty chunks are dropped.
func Highlight(text string, ranges []models.Range) []Chunk {
	if len(ranges) == 0 {
		if text == "" {
			return nil
		}
		return []Chunk{{Text: text}}
	}

	r := []rune(text)
	clamp := func(n int) int {
		if n < 0 {
			return 0
		}
		if n > len(r) {
			return len(r)
		}
		return n
	}

	var out []Chunk
	pos := 0
	for _, rg := range ranges {
		start, end := clamp(rg.Start), clamp(rg.End)
		if start < pos {
			start = pos
		}
		if end <= start {
			continue
		}
		if pos < start {
			out = append(out, Chunk{Text: string(r[pos:start])})
		}
		out = append(out, Chunk{Text: string(r[start:end]), Highlighted: true})
		pos = end
	}
	if pos < len(r) {
		out = append(out, Chunk{Text: string(r[pos:])})
	}
	return out
}
