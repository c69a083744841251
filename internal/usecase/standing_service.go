package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lapolla/quiniela/internal/domain/score"
	"github.com/lapolla/quiniela/internal/domain/user"
	"github.com/sourcegraph/conc"
)

type StandingService struct {
	scoreRepo score.Repository
	userRepo  user.Repository
}

// StandingRow is one ranked entry of the season table.
type StandingRow struct {
	Position int
	User     user.User
	Score    score.Score
	HitRate  float64
}

func NewStandingService(scoreRepo score.Repository, userRepo user.Repository) *StandingService {
	return &StandingService{scoreRepo: scoreRepo, userRepo: userRepo}
}

// ListBySeason ranks the season's scores by total points, then hits.
// Rows of deactivated users are dropped from the table.
func (s *StandingService) ListBySeason(ctx context.Context, season string) ([]StandingRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ListBySeason")
	defer span.End()

	if strings.TrimSpace(season) == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	var (
		scores    []score.Score
		users     []user.User
		scoresErr error
		usersErr  error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		scores, scoresErr = s.scoreRepo.ListBySeason(ctx, season)
	})
	wg.Go(func() {
		users, usersErr = s.userRepo.ListActive(ctx)
	})
	wg.Wait()

	if scoresErr != nil {
		return nil, fmt.Errorf("list scores for season %s: %w", season, scoresErr)
	}
	if usersErr != nil {
		return nil, fmt.Errorf("list active users: %w", usersErr)
	}

	usersByID := make(map[int64]user.User, len(users))
	for _, item := range users {
		usersByID[item.ID] = item
	}

	rows := make([]StandingRow, 0, len(scores))
	for _, item := range scores {
		owner, ok := usersByID[item.UserID]
		if !ok {
			continue
		}
		rows = append(rows, StandingRow{
			User:    owner,
			Score:   item,
			HitRate: item.HitRate(),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Score.TotalPoints != rows[j].Score.TotalPoints {
			return rows[i].Score.TotalPoints > rows[j].Score.TotalPoints
		}
		if rows[i].Score.Hits != rows[j].Score.Hits {
			return rows[i].Score.Hits > rows[j].Score.Hits
		}
		return rows[i].User.ID < rows[j].User.ID
	})

	for idx := range rows {
		rows[idx].Position = idx + 1
	}

	return rows, nil
}
