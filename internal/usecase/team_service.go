package usecase

import (
	"context"
	"fmt"

	"github.com/lapolla/quiniela/internal/domain/team"
	"github.com/lapolla/quiniela/internal/platform/cache"
)

const teamListCacheKey = "teams:list"

type TeamService struct {
	teamRepo team.Repository
	cache    *cache.Store
}

func NewTeamService(teamRepo team.Repository, store *cache.Store) *TeamService {
	return &TeamService{teamRepo: teamRepo, cache: store}
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, teamListCacheKey); ok {
			if teams, ok := cached.([]team.Team); ok {
				return teams, nil
			}
		}
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, teamListCacheKey, teams)
	}

	return teams, nil
}

func (s *TeamService) GetByID(ctx context.Context, teamID int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetByID")
	defer span.End()

	item, found, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team %d: %w", teamID, err)
	}
	if !found {
		return team.Team{}, fmt.Errorf("%w: team %d", ErrNotFound, teamID)
	}

	return item, nil
}

// ReplaceAll swaps the whole catalogue and drops the list cache. Used by
// the import paths.
func (s *TeamService) ReplaceAll(ctx context.Context, teams []team.Team) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ReplaceAll")
	defer span.End()

	for _, item := range teams {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	if err := s.teamRepo.ReplaceAll(ctx, teams); err != nil {
		return fmt.Errorf("replace teams: %w", err)
	}
	if s.cache != nil {
		s.cache.Delete(ctx, teamListCacheKey)
	}

	return nil
}
