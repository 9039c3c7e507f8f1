package store

import (
	"context"
	"fmt"

	"github.com/Finz-2025/finz-coach/internal/client/models"
	"github.com/Finz-2025/finz-coach/internal/client/transcript"
)

type fetchKind int

const (
	fetchLoad fetchKind = iota
	fetchSync
)

func (k fetchKind) String() string {
	if k == fetchLoad {
		return "load"
	}
	return "sync"
}

// LoadInitial populates the transcript from the server. On failure the
// current transcript stays as it is and the error is recorded.
func (s *Store) LoadInitial(ctx context.Context, userID int64) {
	s.fetch(ctx, userID, fetchLoad)
}

// RefreshHistory re-syncs the transcript with the server, replacing it
// wholesale. It runs after every successful send and mode entry. If a newer
// refresh was dispatched meanwhile, this response is discarded.
func (s *Store) RefreshHistory(ctx context.Context, userID int64) {
	s.fetch(ctx, userID, fetchSync)
}

func (s *Store) fetch(ctx context.Context, userID int64, kind fetchKind) {
	var seq uint64
	started := s.update(func(st *State) bool {
		s.refreshSeq++
		seq = s.refreshSeq
		switch kind {
		case fetchLoad:
			s.loading++
			st.IsLoading = true
		case fetchSync:
			s.syncing++
			st.IsSyncing = true
		}
		return true
	})
	if !started {
		return
	}

	log := s.log.With("user_id", userID, "kind", kind.String(), "seq", seq)

	records, err := s.api.History(ctx, userID)
	var items []models.DisplayItem
	if err == nil {
		items = transcript.Build(s.toMessages(ctx, records))
	}

	s.commit(func(st *State) {
		switch kind {
		case fetchLoad:
			s.loading--
			st.IsLoading = s.loading > 0
		case fetchSync:
			s.syncing--
			st.IsSyncing = s.syncing > 0
		}

		if seq != s.refreshSeq {
			log.Debug(ctx, "stale history response dropped", "latest", s.refreshSeq)
			return
		}
		if err != nil {
			log.Warn(ctx, "history fetch failed", "error", err)
			st.Err = fmt.Errorf("%s history: %w", kind, err)
			return
		}
		installItems(st, items)
		log.Debug(ctx, "history installed", "records", len(records))
	})
}

// toMessages maps server records to transcript messages in the display zone.
// A record with an unreadable timestamp is placed at the current time.
func (s *Store) toMessages(ctx context.Context, records []models.HistoryRecord) []models.Message {
	out := make([]models.Message, 0, len(records))
	for _, rec := range records {
		stamp, err := s.norm.SplitToLocal(rec.CreatedAt)
		if err != nil {
			s.log.Warn(ctx, "bad createdAt in history", "message_id", string(rec.MessageID), "error", err)
			stamp = s.norm.NowLocal()
		}

		id := string(rec.MessageID)
		if id == "" {
			id = newLocalID()
		}
		out = append(out, models.Message{
			ID:     id,
			Date:   stamp.Date,
			Time:   stamp.Time,
			Sender: models.SenderFromServer(rec.Sender),
			Text:   rec.Content,
		})
	}
	return out
}
