// Package store holds the conversation state of one coach chat session.
//
// A Store is created when the chat is mounted and closed when it goes away.
// Readers take snapshots or subscribe to changes; all writes go through the
// action methods. Network failures never escape an action: they are recorded
// in State.Err and, for sends and mode entry, voiced by the coach in the
// transcript.
//
// Actions are safe to call from any goroutine. The internal lock is only held
// for in-memory transitions, never across a request.
package store

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/Finz-2025/finz-coach/internal/client/client"
	"github.com/Finz-2025/finz-coach/internal/client/models"
	"github.com/Finz-2025/finz-coach/internal/client/search"
	"github.com/Finz-2025/finz-coach/internal/client/timestamp"
	"github.com/Finz-2025/finz-coach/internal/client/transcript"
	"github.com/Finz-2025/finz-coach/internal/logging"
)

// Store is the single authoritative state container of a conversation.
type Store struct {
	api  client.CoachClient
	norm *timestamp.Normalizer
	log  logging.Logger

	mu      sync.Mutex
	state   State
	subs    map[int]func(State)
	nextSub int
	closed  bool

	// refreshSeq is the sequence number of the latest dispatched history
	// fetch. Responses tagged with an older number are dropped.
	refreshSeq uint64
	loading    int
	syncing    int
}

// New mounts a fresh session. A nil normalizer uses the default +09:00 zone
// and a nil logger discards output.
func New(api client.CoachClient, norm *timestamp.Normalizer, log logging.Logger) *Store {
	if norm == nil {
		norm = timestamp.New(timestamp.DefaultOffset)
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &Store{
		api:   api,
		norm:  norm,
		log:   log.With("component", "coach_store"),
		state: initialState(),
		subs:  make(map[int]func(State)),
	}
}

// Snapshot returns the latest committed state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to be called after every committed change. fn runs
// on the goroutine that performed the change, outside the store lock.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Close tears the session down. Subscribers are dropped and completions of
// requests still in flight are ignored.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.subs = make(map[int]func(State))
}

// update applies fn to a copy of the current state and publishes the result
// when fn returns true. It is a no-op once the store is closed.
func (s *Store) update(fn func(st *State) bool) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}

	next := s.state
	if !fn(&next) {
		s.mu.Unlock()
		return false
	}
	next.Version = s.state.Version + 1
	s.state = next

	subs := make([]func(State), 0, len(s.subs))
	for _, id := range sortedKeys(s.subs) {
		subs = append(subs, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return true
}

// commit is update for transitions that always apply.
func (s *Store) commit(fn func(st *State)) {
	s.update(func(st *State) bool {
		fn(st)
		return true
	})
}

// installItems replaces the transcript and keeps an active search in sync
// with it.
func installItems(st *State, items []models.DisplayItem) {
	st.Items = items
	if st.Query == "" {
		return
	}
	res := search.BuildHits(items, st.Query)
	st.Hits = res.Hits
	st.CountsByDate = res.CountsByDate
	st.HitIndex = 0
}

// appendMessage adds one message and rebuilds the transcript. The separator
// for date is appended too; normalization folds it into the existing one.
func appendMessage(st *State, m models.Message) {
	items := slices.Concat(st.Items, []models.DisplayItem{
		models.DateSeparator(m.Date),
		models.MessageItem(m),
	})
	installItems(st, transcript.Normalize(items))
}

func newLocalID() string {
	return "local-" + uuid.NewString()
}

func sortedKeys(m map[int]func(State)) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// AddMessage appends a message authored locally, such as an optimistic user
// message or a synthesized coach reply.
func (s *Store) AddMessage(sender models.Sender, text, date, tm string) {
	m := models.Message{ID: newLocalID(), Date: date, Time: tm, Sender: sender, Text: text}
	s.commit(func(st *State) { appendMessage(st, m) })
}

// ToggleActions flips the quick-action bar.
func (s *Store) ToggleActions() {
	s.commit(func(st *State) { st.ActionsOpen = !st.ActionsOpen })
}

// SetActionsOpen opens or collapses the quick-action bar.
func (s *Store) SetActionsOpen(open bool) {
	s.commit(func(st *State) { st.ActionsOpen = open })
}

// ExitMode returns to free chat. The server is not told; the next message
// carries the free-chat type.
func (s *Store) ExitMode() {
	s.commit(func(st *State) { st.Mode = models.ModeFreeChat })
	s.log.Debug(context.Background(), "mode exited")
}

// PickQuickAction runs the quick action a: goal recommendation enters goal
// mode, spending counsel enters expense mode.
func (s *Store) PickQuickAction(ctx context.Context, userID int64, a models.QuickAction) {
	switch a {
	case models.QuickActionGoal:
		s.EnterGoalMode(ctx, userID)
	case models.QuickActionCounsel:
		s.EnterExpenseMode(ctx, userID)
	default:
		s.log.Warn(ctx, "unknown quick action", "action", string(a))
	}
}
