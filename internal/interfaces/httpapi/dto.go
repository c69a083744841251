package httpapi

import (
	"time"

	"github.com/lapolla/quiniela/internal/domain/bet"
	"github.com/lapolla/quiniela/internal/domain/match"
	"github.com/lapolla/quiniela/internal/domain/team"
	"github.com/lapolla/quiniela/internal/domain/user"
	"github.com/lapolla/quiniela/internal/usecase"
)

type teamDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Short string `json:"short"`
	Venue string `json:"venue,omitempty"`
}

func teamToDTO(item team.Team) teamDTO {
	return teamDTO{ID: item.ID, Name: item.Name, Short: item.Short, Venue: item.Venue}
}

type userDTO struct {
	ID           int64     `json:"id"`
	GivenName    string    `json:"given_name"`
	FamilyName   string    `json:"family_name"`
	FullName     string    `json:"full_name"`
	RegisteredAt time.Time `json:"registered_at"`
	Active       bool      `json:"active"`
}

func userToDTO(item user.User) userDTO {
	return userDTO{
		ID:           item.ID,
		GivenName:    item.GivenName,
		FamilyName:   item.FamilyName,
		FullName:     item.FullName(),
		RegisteredAt: item.RegisteredAt,
		Active:       item.Active,
	}
}

type roundDTO struct {
	ID         int64  `json:"id"`
	Number     int    `json:"number"`
	Season     string `json:"season"`
	Closed     bool   `json:"closed"`
	MatchCount int    `json:"match_count"`
}

type matchDTO struct {
	ID         int64     `json:"id"`
	RoundID    int64     `json:"round_id"`
	HomeTeam   teamDTO   `json:"home_team"`
	AwayTeam   teamDTO   `json:"away_team"`
	KickoffAt  time.Time `json:"kickoff_at"`
	Status     string    `json:"status"`
	HomeGoals  *int      `json:"home_goals"`
	AwayGoals  *int      `json:"away_goals"`
	Outcome    string    `json:"outcome"`
	Score      string    `json:"score"`
	TotalGoals *int      `json:"total_goals"`
}

func matchViewToDTO(view usecase.MatchView) matchDTO {
	return matchDTO{
		ID:         view.Match.ID,
		RoundID:    view.Match.RoundID,
		HomeTeam:   teamToDTO(view.HomeTeam),
		AwayTeam:   teamToDTO(view.AwayTeam),
		KickoffAt:  view.Match.KickoffAt,
		Status:     view.Match.Status,
		HomeGoals:  view.Match.HomeGoals,
		AwayGoals:  view.Match.AwayGoals,
		Outcome:    string(view.Outcome),
		Score:      view.Score,
		TotalGoals: view.TotalGoals,
	}
}

type rawMatchDTO struct {
	ID         int64     `json:"id"`
	RoundID    int64     `json:"round_id"`
	HomeTeamID int64     `json:"home_team_id"`
	AwayTeamID int64     `json:"away_team_id"`
	KickoffAt  time.Time `json:"kickoff_at"`
	Status     string    `json:"status"`
	HomeGoals  *int      `json:"home_goals"`
	AwayGoals  *int      `json:"away_goals"`
}

func matchToDTO(item match.Match) rawMatchDTO {
	return rawMatchDTO{
		ID:         item.ID,
		RoundID:    item.RoundID,
		HomeTeamID: item.HomeTeamID,
		AwayTeamID: item.AwayTeamID,
		KickoffAt:  item.KickoffAt,
		Status:     item.Status,
		HomeGoals:  item.HomeGoals,
		AwayGoals:  item.AwayGoals,
	}
}

type balanceDTO struct {
	UserID    int64  `json:"user_id"`
	Season    string `json:"season"`
	Total     int    `json:"total"`
	Committed int    `json:"committed"`
	Available int    `json:"available"`
}

type betDTO struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	MatchID    int64     `json:"match_id"`
	Type       string    `json:"type"`
	Prediction string    `json:"prediction"`
	Wager      int       `json:"wager"`
	Awarded    *int      `json:"awarded"`
	PlacedAt   time.Time `json:"placed_at"`
}

func betToDTO(item bet.Bet) betDTO {
	return betDTO{
		ID:         item.ID,
		UserID:     item.UserID,
		MatchID:    item.MatchID,
		Type:       string(item.Type),
		Prediction: item.Prediction,
		Wager:      item.Wager,
		Awarded:    item.Awarded,
		PlacedAt:   item.PlacedAt,
	}
}

type userBetDTO struct {
	Bet             betDTO      `json:"bet"`
	Match           rawMatchDTO `json:"match"`
	Status          string      `json:"status"`
	PotentialPayout int         `json:"potential_payout"`
}

type standingRowDTO struct {
	Position    int     `json:"position"`
	User        userDTO `json:"user"`
	Season      string  `json:"season"`
	TotalPoints int     `json:"total_points"`
	Hits        int     `json:"hits"`
	Misses      int     `json:"misses"`
	BetsSettled int     `json:"bets_settled"`
	HitRate     float64 `json:"hit_rate"`
}
