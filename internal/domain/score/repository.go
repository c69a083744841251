package score

import "context"

// SettlementUpdate is the per-bet adjustment applied to a score row.
type SettlementUpdate struct {
	Delta int
	Hit   bool
}

// Repository describes score persistence needs from use cases.
type Repository interface {
	// GetOrCreate returns the user's row for the season, inserting the
	// initial-stake row on first access. The (user, season) uniqueness
	// is a store constraint, not an application-level check.
	GetOrCreate(ctx context.Context, userID int64, season string) (Score, error)
	ListBySeason(ctx context.Context, season string) ([]Score, error)
	// ApplySettlement adds the delta to the total and bumps the
	// hit/miss and settled counters for one scored bet.
	ApplySettlement(ctx context.Context, scoreID int64, update SettlementUpdate) error
}
