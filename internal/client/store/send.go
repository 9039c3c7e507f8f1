package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/Finz-2025/finz-coach/internal/client/models"
)

// SendToCoach sends message in the current mode. The user's message shows
// up in the transcript before the request starts and stays there even if
// delivery fails. Blank messages and calls made while a send is in flight
// are ignored.
func (s *Store) SendToCoach(ctx context.Context, userID int64, message string) {
	text := strings.TrimSpace(message)
	if text == "" {
		return
	}

	now := s.norm.NowLocal()
	mine := models.Message{ID: newLocalID(), Date: now.Date, Time: now.Time, Sender: models.SenderUser, Text: text}

	var mt models.MessageType
	ok := s.update(func(st *State) bool {
		if st.IsSending {
			return false
		}
		st.IsSending = true
		st.Err = nil
		appendMessage(st, mine)
		mt = st.Mode.MessageType()
		return true
	})
	if !ok {
		return
	}

	log := s.log.With("user_id", userID, "message_type", string(mt))

	if _, err := s.api.SendMessage(ctx, userID, models.SendRequest{Message: text, MessageType: mt}); err != nil {
		log.Warn(ctx, "send failed", "error", err)
		now := s.norm.NowLocal()
		reply := models.Message{ID: newLocalID(), Date: now.Date, Time: now.Time, Sender: models.SenderCoach, Text: msgSendFailed}
		s.commit(func(st *State) {
			appendMessage(st, reply)
			st.Err = fmt.Errorf("send message: %w", err)
			st.IsSending = false
		})
		return
	}

	log.Debug(ctx, "message sent")
	s.RefreshHistory(ctx, userID)
	s.commit(func(st *State) { st.IsSending = false })
}
