package usecase

import (
	"context"
	"testing"

	"github.com/lapolla/quiniela/internal/domain/score"
	"github.com/lapolla/quiniela/internal/domain/user"
)

func TestStandingService_ListBySeason_Ordering(t *testing.T) {
	t.Parallel()

	scoreRepo := newStubScoreRepository(
		score.Score{ID: 1, UserID: 1, Season: testSeason, TotalPoints: 120, Hits: 4, Misses: 2, BetsSettled: 6},
		score.Score{ID: 2, UserID: 2, Season: testSeason, TotalPoints: 140, Hits: 5, Misses: 1, BetsSettled: 6},
		score.Score{ID: 3, UserID: 3, Season: testSeason, TotalPoints: 120, Hits: 6, Misses: 4, BetsSettled: 10},
		score.Score{ID: 4, UserID: 4, Season: testSeason, TotalPoints: 120, Hits: 4, Misses: 6, BetsSettled: 10},
		score.Score{ID: 5, UserID: 5, Season: "2024-2025", TotalPoints: 500},
	)
	userRepo := newStubUserRepository(
		user.User{ID: 1, GivenName: "Ana", FamilyName: "Ruiz", Active: true},
		user.User{ID: 2, GivenName: "Bruno", FamilyName: "Sanz", Active: true},
		user.User{ID: 3, GivenName: "Carla", FamilyName: "Mora", Active: true},
		user.User{ID: 4, GivenName: "Diego", FamilyName: "Vega", Active: true},
	)

	svc := NewStandingService(scoreRepo, userRepo)

	rows, err := svc.ListBySeason(context.Background(), testSeason)
	if err != nil {
		t.Fatalf("ListBySeason: %v", err)
	}

	wantOrder := []int64{2, 3, 1, 4}
	if len(rows) != len(wantOrder) {
		t.Fatalf("rows = %d, want %d", len(rows), len(wantOrder))
	}
	for i, row := range rows {
		if row.User.ID != wantOrder[i] {
			t.Fatalf("position %d user = %d, want %d", i+1, row.User.ID, wantOrder[i])
		}
		if row.Position != i+1 {
			t.Fatalf("position field = %d, want %d", row.Position, i+1)
		}
	}
	if rows[1].HitRate != 60 {
		t.Fatalf("hit rate = %v, want 60", rows[1].HitRate)
	}
}

func TestStandingService_ListBySeason_SkipsInactiveUsers(t *testing.T) {
	t.Parallel()

	scoreRepo := newStubScoreRepository(
		score.Score{ID: 1, UserID: 1, Season: testSeason, TotalPoints: 100},
		score.Score{ID: 2, UserID: 2, Season: testSeason, TotalPoints: 200},
	)
	userRepo := newStubUserRepository(
		user.User{ID: 1, GivenName: "Ana", FamilyName: "Ruiz", Active: true},
		user.User{ID: 2, GivenName: "Bruno", FamilyName: "Sanz", Active: false},
	)

	svc := NewStandingService(scoreRepo, userRepo)

	rows, err := svc.ListBySeason(context.Background(), testSeason)
	if err != nil {
		t.Fatalf("ListBySeason: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].User.ID != 1 {
		t.Fatalf("user = %d, want 1", rows[0].User.ID)
	}
}
