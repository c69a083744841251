package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/lapolla/quiniela/internal/domain/match"
)

type MatchRepository struct {
	mu     sync.RWMutex
	byID   map[int64]match.Match
	nextID int64
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	r := &MatchRepository{byID: make(map[int64]match.Match, len(matches)), nextID: 1}
	for _, item := range matches {
		if item.ID <= 0 {
			continue
		}
		r.byID[item.ID] = item
		if item.ID >= r.nextID {
			r.nextID = item.ID + 1
		}
	}
	return r
}

func (r *MatchRepository) ListByRound(_ context.Context, roundID int64) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, item := range r.byID {
		if item.RoundID == roundID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].KickoffAt.Equal(out[j].KickoffAt) {
			return out[i].KickoffAt.Before(out[j].KickoffAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[matchID]
	return item, ok, nil
}

// Create stores the match under its own id when one is set, so feed
// match ids survive as primary keys. Otherwise a serial id is assigned.
func (r *MatchRepository) Create(_ context.Context, item match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID <= 0 {
		item.ID = r.nextID
	}
	if item.ID >= r.nextID {
		r.nextID = item.ID + 1
	}
	r.byID[item.ID] = item

	return item, nil
}

func (r *MatchRepository) SetResult(_ context.Context, matchID int64, homeGoals, awayGoals int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[matchID]
	if !ok {
		return nil
	}

	item.HomeGoals = &homeGoals
	item.AwayGoals = &awayGoals
	item.Status = match.StatusFinished
	r.byID[matchID] = item

	return nil
}

func (r *MatchRepository) CountByRound(_ context.Context, roundID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, item := range r.byID {
		if item.RoundID == roundID {
			count++
		}
	}

	return count, nil
}
