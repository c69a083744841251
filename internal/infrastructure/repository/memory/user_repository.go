package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/lapolla/quiniela/internal/domain/user"
)

type UserRepository struct {
	mu     sync.RWMutex
	byID   map[int64]user.User
	nextID int64
}

func NewUserRepository(users []user.User) *UserRepository {
	r := &UserRepository{byID: make(map[int64]user.User, len(users)), nextID: 1}
	for _, item := range users {
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

func (r *UserRepository) ListActive(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0, len(r.byID))
	for _, item := range r.byID {
		if item.Active {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *UserRepository) GetByID(_ context.Context, userID int64) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[userID]
	return item, ok, nil
}

func (r *UserRepository) Create(_ context.Context, item user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.byID[item.ID] = item

	return item, nil
}
