// Package transcript turns a flat list of messages into the date-grouped
// display sequence rendered by the chat view.
package transcript

import (
	"slices"
	"sort"

	"github.com/Finz-2025/finz-coach/internal/client/models"
)

// Build groups messages by date and orders them for display.
func Build(messages []models.Message) []models.DisplayItem {
	items := make([]models.DisplayItem, len(messages))
	for i, m := range messages {
		items[i] = models.MessageItem(m)
	}
	return Normalize(items)
}

// Normalize re-derives a display sequence from items. Dates come out in
// ascending order, each preceded by exactly one separator, and messages are
// stably sorted by time within their date. A separator whose date has no
// messages is kept on its own.
//
// The input is never modified.
func Normalize(items []models.DisplayItem) []models.DisplayItem {
	buckets := make(map[string][]models.Message)
	dates := make([]string, 0)

	for _, it := range items {
		if _, ok := buckets[it.Date]; !ok {
			buckets[it.Date] = nil
			dates = append(dates, it.Date)
		}
		if !it.IsSeparator() {
			buckets[it.Date] = append(buckets[it.Date], it.Message)
		}
	}

	slices.Sort(dates)

	out := make([]models.DisplayItem, 0, len(items)+len(dates))
	for _, d := range dates {
		msgs := buckets[d]
		sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].Time < msgs[j].Time })

		out = append(out, models.DateSeparator(d))
		for _, m := range msgs {
			out = append(out, models.MessageItem(m))
		}
	}
	return out
}

// Messages returns the messages of items in display order.
func Messages(items []models.DisplayItem) []models.Message {
	out := make([]models.Message, 0, len(items))
	for _, it := range items {
		if !it.IsSeparator() {
			out = append(out, it.Message)
		}
	}
	return out
}
