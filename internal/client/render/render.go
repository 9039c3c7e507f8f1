// Package render draws a conversation snapshot for a terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Finz-2025/finz-coach/internal/client/models"
	"github.com/Finz-2025/finz-coach/internal/client/search"
	"github.com/Finz-2025/finz-coach/internal/client/store"
)

// Theme groups the styles used by a Renderer. With Plain set, no styling is
// applied and search matches are bracketed instead of coloured, which keeps
// output readable when it is piped.
type Theme struct {
	Plain bool

	Separator    lipgloss.Style
	Time         lipgloss.Style
	User         lipgloss.Style
	Coach        lipgloss.Style
	Match        lipgloss.Style
	CurrentMatch lipgloss.Style
	Error        lipgloss.Style
	Status       lipgloss.Style
	Muted        lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Separator:    lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c")).Bold(true),
		Time:         lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c")),
		User:         lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true),
		Coach:        lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true),
		Match:        lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("220")),
		CurrentMatch: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("208")).Bold(true),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("24")).Padding(0, 1),
		Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Plain:        true,
		Separator:    plain,
		Time:         plain,
		User:         plain,
		Coach:        plain,
		Match:        plain,
		CurrentMatch: plain,
		Error:        plain,
		Status:       plain,
		Muted:        plain,
	}
}

// Renderer turns store snapshots into text.
type Renderer struct {
	theme Theme
	width int
}

// New returns a Renderer. A width of zero disables wrapping.
func New(theme Theme, width int) *Renderer {
	return &Renderer{theme: theme, width: width}
}

// Transcript renders every item of st, highlighting search matches. The
// selected hit is drawn with the CurrentMatch style.
func (r *Renderer) Transcript(st store.State) string {
	if len(st.Items) == 0 {
		return r.theme.Muted.Render("(대화가 없어요)")
	}

	hits := make(map[int][]models.Range, len(st.Hits))
	current := -1
	for i, h := range st.Hits {
		hits[h.ItemIndex] = h.Ranges
		if i == st.HitIndex {
			current = h.ItemIndex
		}
	}

	lines := make([]string, 0, len(st.Items))
	for i, it := range st.Items {
		if it.IsSeparator() {
			lines = append(lines, r.separator(it.Date, st.CountsByDate[it.Date]))
			continue
		}
		lines = append(lines, r.message(it.Message, hits[i], i == current))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) separator(date string, matches int) string {
	label := "── " + date + " ──"
	if matches > 0 {
		label += fmt.Sprintf(" (%d)", matches)
	}
	return r.theme.Separator.Render(label)
}

func (r *Renderer) message(m models.Message, ranges []models.Range, current bool) string {
	who := r.theme.Coach.Render("코치")
	if m.Sender == models.SenderUser {
		who = r.theme.User.Render("나")
	}
	prefix := r.theme.Time.Render("["+m.Time+"]") + " " + who + " › "

	body := r.highlight(m.Text, ranges, current)
	if r.width > 0 {
		indent := lipgloss.Width(prefix)
		if w := r.width - indent; w > 10 {
			wrapped := strings.Split(lipgloss.NewStyle().Width(w).Render(body), "\n")
			for i, l := range wrapped {
				wrapped[i] = strings.TrimRight(l, " ")
			}
			body = strings.Join(wrapped, "\n"+strings.Repeat(" ", indent))
		}
	}
	return prefix + body
}

func (r *Renderer) highlight(text string, ranges []models.Range, current bool) string {
	var b strings.Builder
	for _, c := range search.Highlight(text, ranges) {
		if !c.Highlighted {
			b.WriteString(c.Text)
			continue
		}
		switch {
		case r.theme.Plain && current:
			b.WriteString("[[" + c.Text + "]]")
		case r.theme.Plain:
			b.WriteString("[" + c.Text + "]")
		case current:
			b.WriteString(r.theme.CurrentMatch.Render(c.Text))
		default:
			b.WriteString(r.theme.Match.Render(c.Text))
		}
	}
	return b.String()
}

// Status renders a one-line summary: mode, in-flight requests, search
// position and the last error.
func (r *Renderer) Status(st store.State) string {
	parts := []string{st.Mode.Label()}

	var busy []string
	if st.IsLoading {
		busy = append(busy, "불러오는 중")
	}
	if st.IsSyncing {
		busy = append(busy, "동기화 중")
	}
	if st.IsSending {
		busy = append(busy, "전송 중")
	}
	if st.IsModeLoading {
		busy = append(busy, "상담 준비 중")
	}
	if len(busy) > 0 {
		parts = append(parts, strings.Join(busy, ", "))
	}

	if st.Query != "" {
		if len(st.Hits) == 0 {
			parts = append(parts, fmt.Sprintf("%q 0건", st.Query))
		} else {
			parts = append(parts, fmt.Sprintf("%q %d/%d", st.Query, st.HitIndex+1, len(st.Hits)))
		}
	}

	line := r.theme.Status.Render(strings.Join(parts, " · "))
	if st.Err != nil {
		line += " " + r.theme.Error.Render("! "+st.Err.Error())
	}
	return line
}

// QuickActions renders the quick-action bar, or nothing when it is closed.
func (r *Renderer) QuickActions(st store.State) string {
	if !st.ActionsOpen {
		return ""
	}
	return r.theme.Muted.Render("빠른 액션: [goal] 목표 추천 · [counsel] 지출 상담")
}
