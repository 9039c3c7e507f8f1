package client

import (
	"context"

	"github.com/Finz-2025/finz-coach/internal/client/models"
)

// CoachClient is the transport-agnostic contract of the Coach API.
type CoachClient interface {
	// History returns the full conversation of userID, oldest first as sent
	// by the server (callers must not rely on the order).
	History(ctx context.Context, userID int64) ([]models.HistoryRecord, error)

	// SendMessage posts one user message. The coach reply is only visible in
	// a later History call.
	SendMessage(ctx context.Context, userID int64, req models.SendRequest) (models.SendResponse, error)

	// StartGoalConsult switches the server conversation into goal setting.
	StartGoalConsult(ctx context.Context, userID int64) (models.ModeStart, error)

	// StartExpenseConsult switches the server conversation into expense
	// consultation.
	StartExpenseConsult(ctx context.Context, userID int64) (models.ModeStart, error)
}
