package round

import "context"

// Repository describes round persistence needs from use cases.
type Repository interface {
	ListBySeason(ctx context.Context, season string) ([]Round, error)
	GetByID(ctx context.Context, roundID int64) (Round, bool, error)
	GetByNumber(ctx context.Context, number int, season string) (Round, bool, error)
	Create(ctx context.Context, item Round) (Round, error)
}
