package memory

import (
	"time"

	"github.com/lapolla/quiniela/internal/domain/round"
	"github.com/lapolla/quiniela/internal/domain/team"
	"github.com/lapolla/quiniela/internal/domain/user"
)

// SeedSeason is the season the demo data belongs to.
const SeedSeason = "2025-2026"

func SeedTeams() []team.Team {
	return team.DemoCatalogue()
}

func SeedUsers() []user.User {
	registeredAt := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	return []user.User{
		{ID: 1, GivenName: "Marta", FamilyName: "Lopez", RegisteredAt: registeredAt, Active: true},
		{ID: 2, GivenName: "Jorge", FamilyName: "Campos", RegisteredAt: registeredAt, Active: true},
		{ID: 3, GivenName: "Lucia", FamilyName: "Ferrer", RegisteredAt: registeredAt, Active: true},
	}
}

func SeedRounds() []round.Round {
	return []round.Round{
		{ID: 1, Number: 1, Season: SeedSeason},
	}
}
