package store

import (
	"context"
	"sync"
	"time"

	"github.com/Finz-2025/finz-coach/internal/client/models"
	"github.com/Finz-2025/finz-coach/internal/client/timestamp"
)

// fakeAPI is a scriptable CoachClient. Unset hooks succeed with empty data.
type fakeAPI struct {
	mu sync.Mutex

	history func(ctx context.Context, userID int64) ([]models.HistoryRecord, error)
	send    func(ctx context.Context, userID int64, req models.SendRequest) (models.SendResponse, error)
	goal    func(ctx context.Context, userID int64) (models.ModeStart, error)
	expense func(ctx context.Context, userID int64) (models.ModeStart, error)

	historyCalls int
	sendCalls    int
	goalCalls    int
	expenseCalls int
	sent         []models.SendRequest
}

func (f *fakeAPI) History(ctx context.Context, userID int64) ([]models.HistoryRecord, error) {
	f.mu.Lock()
	f.historyCalls++
	fn := f.history
	f.mu.Unlock()
	if fn == nil {
		return []models.HistoryRecord{}, nil
	}
	return fn(ctx, userID)
}

func (f *fakeAPI) SendMessage(ctx context.Context, userID int64, req models.SendRequest) (models.SendResponse, error) {
	f.mu.Lock()
	f.sendCalls++
	f.sent = append(f.sent, req)
	fn := f.send
	f.mu.Unlock()
	if fn == nil {
		return models.SendResponse{Message: req.Message, MessageType: req.MessageType}, nil
	}
	return fn(ctx, userID, req)
}

func (f *fakeAPI) StartGoalConsult(ctx context.Context, userID int64) (models.ModeStart, error) {
	f.mu.Lock()
	f.goalCalls++
	fn := f.goal
	f.mu.Unlock()
	if fn == nil {
		return models.ModeStart{Message: "목표를 정해볼까요?", MessageType: models.MessageTypeGoalSetting}, nil
	}
	return fn(ctx, userID)
}

func (f *fakeAPI) StartExpenseConsult(ctx context.Context, userID int64) (models.ModeStart, error) {
	f.mu.Lock()
	f.expenseCalls++
	fn := f.expense
	f.mu.Unlock()
	if fn == nil {
		return models.ModeStart{Message: "어떤 지출이 고민인가요?", MessageType: models.MessageTypeExpenseConsult}, nil
	}
	return fn(ctx, userID)
}

func (f *fakeAPI) calls() (history, send, goal, expense int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.historyCalls, f.sendCalls, f.goalCalls, f.expenseCalls
}

// fixedNow is 2025-10-31 03:23 in the display zone.
var fixedNow = time.Date(2025, 10, 30, 18, 23, 0, 0, time.UTC)

func newTestStore(api *fakeAPI) *Store {
	return New(api, timestamp.New(timestamp.DefaultOffset, timestamp.WithClock(func() time.Time { return fixedNow })), nil)
}

func record(id, sender, content, createdAt string) models.HistoryRecord {
	return models.HistoryRecord{
		MessageID:   models.OpaqueID(id),
		Sender:      sender,
		MessageType: models.MessageTypeFreeChat,
		Content:     content,
		CreatedAt:   createdAt,
	}
}

func texts(st State) []string {
	var out []string
	for _, it := range st.Items {
		if it.IsSeparator() {
			out = append(out, "sep:"+it.Date)
		} else {
			out = append(out, string(it.Message.Sender)+":"+it.Message.Text)
		}
	}
	return out
}
