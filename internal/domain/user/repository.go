package user

import "context"

// Repository describes user persistence needs from use cases.
type Repository interface {
	ListActive(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, userID int64) (User, bool, error)
	Create(ctx context.Context, item User) (User, error)
}
