package store

import (
	"context"
	"fmt"

	"github.com/Finz-2025/finz-coach/internal/client/models"
)

// EnterGoalMode asks the server to start a goal-setting consultation.
func (s *Store) EnterGoalMode(ctx context.Context, userID int64) {
	s.enterMode(ctx, userID, models.ModeGoalSetting, s.api.StartGoalConsult, msgGoalModeFailed)
}

// EnterExpenseMode asks the server to start an expense consultation.
func (s *Store) EnterExpenseMode(ctx context.Context, userID int64) {
	s.enterMode(ctx, userID, models.ModeExpenseConsult, s.api.StartExpenseConsult, msgExpenseModeFailed)
}

// enterMode runs one mode transition. Only one may be in flight; further
// calls return immediately. On failure the mode is left unchanged and the
// coach explains what happened.
func (s *Store) enterMode(
	ctx context.Context,
	userID int64,
	requested models.Mode,
	start func(context.Context, int64) (models.ModeStart, error),
	failureText string,
) {
	ok := s.update(func(st *State) bool {
		if st.IsModeLoading {
			return false
		}
		st.IsModeLoading = true
		st.ActionsOpen = false
		st.Err = nil
		return true
	})
	if !ok {
		return
	}

	log := s.log.With("user_id", userID, "mode", string(requested))

	ms, err := start(ctx, userID)
	if err != nil {
		log.Warn(ctx, "mode start failed", "error", err)
		now := s.norm.NowLocal()
		reply := models.Message{ID: newLocalID(), Date: now.Date, Time: now.Time, Sender: models.SenderCoach, Text: failureText}
		s.commit(func(st *State) {
			appendMessage(st, reply)
			st.Err = fmt.Errorf("start %s: %w", requested, err)
			st.IsModeLoading = false
		})
		return
	}

	mode := requested
	if confirmed, perr := models.ParseMode(string(ms.MessageType)); perr == nil {
		mode = confirmed
	} else {
		log.Warn(ctx, "unexpected mode in server reply, keeping requested", "message_type", string(ms.MessageType))
	}

	s.commit(func(st *State) { st.Mode = mode })
	log.Info(ctx, "mode entered", "confirmed", string(mode))

	s.RefreshHistory(ctx, userID)
	s.commit(func(st *State) { st.IsModeLoading = false })
}
