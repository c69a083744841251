package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/lapolla/quiniela/internal/domain/round"
)

type RoundRepository struct {
	mu     sync.RWMutex
	byID   map[int64]round.Round
	nextID int64
}

func NewRoundRepository(rounds []round.Round) *RoundRepository {
	r := &RoundRepository{byID: make(map[int64]round.Round, len(rounds)), nextID: 1}
	for _, item := range rounds {
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

func (r *RoundRepository) ListBySeason(_ context.Context, season string) ([]round.Round, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]round.Round, 0, len(r.byID))
	for _, item := range r.byID {
		if item.Season == season {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })

	return out, nil
}

func (r *RoundRepository) GetByID(_ context.Context, roundID int64) (round.Round, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[roundID]
	return item, ok, nil
}

func (r *RoundRepository) GetByNumber(_ context.Context, number int, season string) (round.Round, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.byID {
		if item.Number == number && item.Season == season {
			return item, true, nil
		}
	}

	return round.Round{}, false, nil
}

func (r *RoundRepository) Create(_ context.Context, item round.Round) (round.Round, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.byID[item.ID] = item

	return item, nil
}
