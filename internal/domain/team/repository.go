package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	// ReplaceAll clears the catalogue and stores the given teams. Used by
	// the full-reload import paths only.
	ReplaceAll(ctx context.Context, teams []Team) error
}
