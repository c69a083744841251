package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/lapolla/quiniela/internal/domain/bet"
)

type betKey struct {
	userID  int64
	matchID int64
	betType bet.Type
}

type BetRepository struct {
	mu     sync.RWMutex
	byID   map[int64]bet.Bet
	byKey  map[betKey]int64
	nextID int64
}

func NewBetRepository() *BetRepository {
	return &BetRepository{
		byID:   make(map[int64]bet.Bet),
		byKey:  make(map[betKey]int64),
		nextID: 1,
	}
}

func (r *BetRepository) Upsert(_ context.Context, item bet.Bet) (bet.Bet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := betKey{userID: item.UserID, matchID: item.MatchID, betType: item.Type}
	if id, ok := r.byKey[key]; ok {
		item.ID = id
	} else {
		item.ID = r.nextID
		r.nextID++
		r.byKey[key] = item.ID
	}
	item.Awarded = nil
	r.byID[item.ID] = item

	return item, nil
}

func (r *BetRepository) GetByKey(_ context.Context, userID, matchID int64, betType bet.Type) (bet.Bet, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byKey[betKey{userID: userID, matchID: matchID, betType: betType}]
	if !ok {
		return bet.Bet{}, false, nil
	}

	return r.byID[id], true, nil
}

func (r *BetRepository) ListUnsettledByUser(_ context.Context, userID int64) ([]bet.Bet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]bet.Bet, 0)
	for _, item := range r.byID {
		if item.UserID == userID && !item.Settled() {
			out = append(out, item)
		}
	}
	sortBets(out)

	return out, nil
}

func (r *BetRepository) ListUnsettledByMatchIDs(_ context.Context, matchIDs []int64) ([]bet.Bet, error) {
	wanted := make(map[int64]struct{}, len(matchIDs))
	for _, id := range matchIDs {
		wanted[id] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]bet.Bet, 0)
	for _, item := range r.byID {
		if _, ok := wanted[item.MatchID]; ok && !item.Settled() {
			out = append(out, item)
		}
	}
	sortBets(out)

	return out, nil
}

func (r *BetRepository) ListByUserAndMatchIDs(_ context.Context, userID int64, matchIDs []int64) ([]bet.Bet, error) {
	wanted := make(map[int64]struct{}, len(matchIDs))
	for _, id := range matchIDs {
		wanted[id] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]bet.Bet, 0)
	for _, item := range r.byID {
		if item.UserID != userID {
			continue
		}
		if _, ok := wanted[item.MatchID]; ok {
			out = append(out, item)
		}
	}
	sortBets(out)

	return out, nil
}

func (r *BetRepository) SetAwarded(_ context.Context, betID int64, awarded int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[betID]
	if !ok {
		return nil
	}
	item.Awarded = &awarded
	r.byID[betID] = item

	return nil
}

func sortBets(items []bet.Bet) {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
}
