package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lapolla/quiniela/internal/domain/user"
)

type UserService struct {
	userRepo user.Repository
	now      func() time.Time
}

func NewUserService(userRepo user.Repository) *UserService {
	return &UserService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (s *UserService) ListActive(ctx context.Context) ([]user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.ListActive")
	defer span.End()

	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active users: %w", err)
	}

	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, userID int64) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.GetByID")
	defer span.End()

	item, found, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user %d: %w", userID, err)
	}
	if !found {
		return user.User{}, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	return item, nil
}

func (s *UserService) Register(ctx context.Context, givenName, familyName string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Register")
	defer span.End()

	item := user.User{
		GivenName:    strings.TrimSpace(givenName),
		FamilyName:   strings.TrimSpace(familyName),
		RegisteredAt: s.now().UTC(),
		Active:       true,
	}
	if err := item.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.userRepo.Create(ctx, item)
	if err != nil {
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	return created, nil
}
