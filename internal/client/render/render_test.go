package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Finz-2025/finz-coach/internal/client/models"
	"github.com/Finz-2025/finz-coach/internal/client/search"
	"github.com/Finz-2025/finz-coach/internal/client/store"
	"github.com/Finz-2025/finz-coach/internal/client/transcript"
)

func state(query string, hitIndex int) store.State {
	items := transcript.Build([]models.Message{
		{ID: "1", Date: "2025-10-03", Time: "18:20", Sender: models.SenderUser, Text: "맛나제과 3,500원 카드 결제 카드"},
		{ID: "2", Date: "2025-10-03", Time: "18:21", Sender: models.SenderCoach, Text: "카드 사용이 잦아요"},
	})
	res := search.BuildHits(items, query)
	return store.State{
		Items:        items,
		Query:        query,
		Hits:         res.Hits,
		HitIndex:     hitIndex,
		CountsByDate: res.CountsByDate,
		Mode:         models.ModeFreeChat,
	}
}

func TestTranscript_Plain(t *testing.T) {
	out := New(PlainTheme(), 0).Transcript(state("", 0))

	assert.Equal(t, strings.Join([]string{
		"── 2025-10-03 ──",
		"[18:20] 나 › 맛나제과 3,500원 카드 결제 카드",
		"[18:21] 코치 › 카드 사용이 잦아요",
	}, "\n"), out)
}

func TestTranscript_HighlightsMatches(t *testing.T) {
	out := New(PlainTheme(), 0).Transcript(state("카드", 1))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "── 2025-10-03 ── (3)", lines[0])
	assert.Equal(t, "[18:20] 나 › 맛나제과 3,500원 [카드] 결제 [카드]", lines[1])
	assert.Equal(t, "[18:21] 코치 › [[카드]] 사용이 잦아요", lines[2])
}

func TestTranscript_Empty(t *testing.T) {
	assert.Contains(t, New(PlainTheme(), 0).Transcript(store.State{}), "대화가 없어요")
}

func TestTranscript_Wraps(t *testing.T) {
	st := store.State{Items: transcript.Build([]models.Message{{
		ID: "1", Date: "2025-10-03", Time: "09:00", Sender: models.SenderCoach,
		Text: strings.Repeat("budget ", 20),
	}})}
	out := New(PlainTheme(), 40).Transcript(st)

	lines := strings.Split(out, "\n")
	assert.Greater(t, len(lines), 2)
	for _, l := range lines[1:] {
		assert.LessOrEqual(t, len([]rune(l)), 40)
	}
}

func TestStatus(t *testing.T) {
	r := New(PlainTheme(), 0)

	st := state("카드", 1)
	st.Mode = models.ModeGoalSetting
	st.IsSending = true
	assert.Equal(t, `목표 상담 · 전송 중 · "카드" 2/3`, r.Status(st))

	st = state("없음", 0)
	st.Err = errors.New("boom")
	assert.Equal(t, `자유 대화 · "없음" 0건 ! boom`, r.Status(st))
}

func TestQuickActions(t *testing.T) {
	r := New(PlainTheme(), 0)
	assert.Empty(t, r.QuickActions(store.State{ActionsOpen: false}))
	assert.Contains(t, r.QuickActions(store.State{ActionsOpen: true}), "goal")
}
