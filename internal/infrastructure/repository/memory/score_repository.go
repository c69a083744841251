package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/lapolla/quiniela/internal/domain/score"
)

type scoreKey struct {
	userID int64
	season string
}

type ScoreRepository struct {
	mu     sync.RWMutex
	byID   map[int64]score.Score
	byKey  map[scoreKey]int64
	nextID int64
}

func NewScoreRepository() *ScoreRepository {
	return &ScoreRepository{
		byID:   make(map[int64]score.Score),
		byKey:  make(map[scoreKey]int64),
		nextID: 1,
	}
}

func (r *ScoreRepository) GetOrCreate(_ context.Context, userID int64, season string) (score.Score, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := scoreKey{userID: userID, season: season}
	if id, ok := r.byKey[key]; ok {
		return r.byID[id], nil
	}

	item := score.NewForSeason(userID, season)
	item.ID = r.nextID
	r.nextID++
	r.byID[item.ID] = item
	r.byKey[key] = item.ID

	return item, nil
}

func (r *ScoreRepository) ListBySeason(_ context.Context, season string) ([]score.Score, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]score.Score, 0)
	for _, item := range r.byID {
		if item.Season == season {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *ScoreRepository) ApplySettlement(_ context.Context, scoreID int64, update score.SettlementUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[scoreID]
	if !ok {
		return nil
	}

	item.TotalPoints += update.Delta
	item.BetsSettled++
	if update.Hit {
		item.Hits++
	} else {
		item.Misses++
	}
	r.byID[scoreID] = item

	return nil
}
