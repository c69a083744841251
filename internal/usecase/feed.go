package usecase

import (
	"context"
	"time"
)

// ExternalTeam is a club as the league data feed reports it.
type ExternalTeam struct {
	ID    int64
	Name  string
	Short string
	Venue string
}

// ExternalMatch is a scheduled fixture as the feed reports it.
type ExternalMatch struct {
	ID              int64
	CompetitionCode string
	HomeTeamID      int64
	AwayTeamID      int64
	KickoffAt       time.Time
}

// LeagueFeed is the read-only remote provider of league data.
type LeagueFeed interface {
	// FetchCompetitionTeams lists the clubs of the configured competition.
	FetchCompetitionTeams(ctx context.Context) ([]ExternalTeam, error)
	// FetchTeamScheduledMatches lists a club's not-yet-played fixtures
	// across all competitions; callers filter by competition code.
	FetchTeamScheduledMatches(ctx context.Context, teamID int64) ([]ExternalMatch, error)
}
