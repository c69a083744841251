// Package memory holds the in-process repositories used when the
// service runs without Postgres, mainly for demos and tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/lapolla/quiniela/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	byID  map[int64]team.Team
	order []int64
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	r := &TeamRepository{byID: make(map[int64]team.Team)}
	r.replace(teams)
	return r
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[teamID]
	return item, ok, nil
}

func (r *TeamRepository) ReplaceAll(_ context.Context, teams []team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.replace(teams)
	return nil
}

func (r *TeamRepository) replace(teams []team.Team) {
	r.byID = make(map[int64]team.Team, len(teams))
	r.order = r.order[:0]
	for _, item := range teams {
		if item.ID <= 0 {
			continue
		}
		if _, seen := r.byID[item.ID]; !seen {
			r.order = append(r.order, item.ID)
		}
		r.byID[item.ID] = item
	}
	sort.Slice(r.order, func(i, j int) bool { return r.order[i] < r.order[j] })
}
