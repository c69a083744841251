package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	ListByRound(ctx context.Context, roundID int64) ([]Match, error)
	GetByID(ctx context.Context, matchID int64) (Match, bool, error)
	Create(ctx context.Context, item Match) (Match, error)
	// SetResult stores both goals and flips the status to finished in a
	// single update.
	SetResult(ctx context.Context, matchID int64, homeGoals, awayGoals int) error
	CountByRound(ctx context.Context, roundID int64) (int, error)
}
