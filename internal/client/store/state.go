package store

import "github.com/Finz-2025/finz-coach/internal/client/models"

// State is one immutable snapshot of a conversation session. Slices and maps
// reachable from a published State are never modified afterwards.
type State struct {
	Items        []models.DisplayItem
	Query        string
	Hits         []models.SearchHit
	HitIndex     int
	CountsByDate models.CountsByDate
	Mode         models.Mode
	ActionsOpen  bool

	IsLoading     bool
	IsSending     bool
	IsSyncing     bool
	IsModeLoading bool

	// Err holds the most recent failure; nil when the last action that
	// clears it succeeded.
	Err error

	// Version increases with every committed change. Subscribers receiving
	// snapshots from several goroutines can drop older ones.
	Version uint64
}

func initialState() State {
	return State{
		Items:        []models.DisplayItem{},
		Hits:         []models.SearchHit{},
		CountsByDate: models.CountsByDate{},
		Mode:         models.ModeFreeChat,
		ActionsOpen:  true,
	}
}

// Busy reports whether any request is in flight.
func (s State) Busy() bool {
	return s.IsLoading || s.IsSending || s.IsSyncing || s.IsModeLoading
}

// Messages counts message items, ignoring separators.
func (s State) Messages() int {
	n := 0
	for _, it := range s.Items {
		if !it.IsSeparator() {
			n++
		}
	}
	return n
}
