package store

import (
	"strings"

	"github.com/Finz-2025/finz-coach/internal/client/models"
	"github.com/Finz-2025/finz-coach/internal/client/search"
)

// SetQuery stores q without searching. Pair it with SetHits, or use Search.
func (s *Store) SetQuery(q string) {
	s.commit(func(st *State) { st.Query = q })
}

// SetHits replaces the search results and selects the first hit.
func (s *Store) SetHits(hits []models.SearchHit, counts models.CountsByDate) {
	if hits == nil {
		hits = []models.SearchHit{}
	}
	if counts == nil {
		counts = models.CountsByDate{}
	}
	s.commit(func(st *State) {
		st.Hits = hits
		st.CountsByDate = counts
		st.HitIndex = 0
	})
}

// Search runs q against the current transcript. A blank q clears the query
// and all hit state.
func (s *Store) Search(q string) {
	q = strings.TrimSpace(q)
	s.commit(func(st *State) {
		res := search.BuildHits(st.Items, q)
		st.Query = q
		st.Hits = res.Hits
		st.CountsByDate = res.CountsByDate
		st.HitIndex = 0
	})
}

// NextHit selects the following hit, wrapping around.
func (s *Store) NextHit() {
	s.update(func(st *State) bool {
		if len(st.Hits) == 0 {
			return false
		}
		st.HitIndex = (st.HitIndex + 1) % len(st.Hits)
		return true
	})
}

// PrevHit selects the preceding hit, wrapping around.
func (s *Store) PrevHit() {
	s.update(func(st *State) bool {
		if len(st.Hits) == 0 {
			return false
		}
		st.HitIndex = (st.HitIndex - 1 + len(st.Hits)) % len(st.Hits)
		return true
	})
}

// JumpToHit selects hit i. Callers must keep 0 <= i < len(Hits).
func (s *Store) JumpToHit(i int) {
	s.commit(func(st *State) { st.HitIndex = i })
}

// CurrentHit returns the selected hit, if any.
func (s *Store) CurrentHit() (models.SearchHit, bool) {
	st := s.Snapshot()
	if st.HitIndex < 0 || st.HitIndex >= len(st.Hits) {
		return models.SearchHit{}, false
	}
	return st.Hits[st.HitIndex], true
}
