package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Finz-2025/finz-coach/internal/client/models"
	"github.com/Finz-2025/finz-coach/internal/common"
)

var largeExpense = decimal.NewFromInt(20000)

// PostExpenseRecord drops a just-recorded expense into the conversation: the
// user's line first, then a short coach reaction chosen locally. Nothing is
// sent to the server.
func (s *Store) PostExpenseRecord(rec models.ExpenseRecord) {
	if err := rec.Validate(); err != nil {
		s.commit(func(st *State) { st.Err = fmt.Errorf("%w: expense record: %w", common.ErrorValidation, err) })
		return
	}
	s.postExpense(rec.Text(), rec.Date, rec.Time, expenseReply(rec))
	s.log.Debug(context.Background(), "expense auto-posted", "category", rec.Category, "amount", rec.Amount.String())
}

// PostExpenseText auto-posts an expense line that has no structured record
// behind it. The coach answers with a generic acknowledgement. Blank text is
// ignored; empty date or time means now.
func (s *Store) PostExpenseText(text, date, tm string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	s.postExpense(text, date, tm, msgExpenseRecorded)
	s.log.Debug(context.Background(), "expense text auto-posted")
}

func (s *Store) postExpense(text, date, tm, replyText string) {
	now := s.norm.NowLocal()
	if date == "" {
		date = now.Date
	}
	if tm == "" {
		tm = now.Time
	}

	mine := models.Message{ID: newLocalID(), Date: date, Time: tm, Sender: models.SenderUser, Text: text}
	reply := models.Message{ID: newLocalID(), Date: date, Time: now.Time, Sender: models.SenderCoach, Text: replyText}
	if reply.Time < mine.Time {
		reply.Time = mine.Time
	}

	s.commit(func(st *State) { appendMessage(st, mine) })
	s.commit(func(st *State) { appendMessage(st, reply) })
}

func expenseReply(rec models.ExpenseRecord) string {
	switch {
	case rec.Category == models.CategoryCafe:
		return msgExpenseCafe
	case rec.Amount.GreaterThanOrEqual(largeExpense):
		return msgExpenseLarge
	default:
		return msgExpenseEncourage
	}
}
