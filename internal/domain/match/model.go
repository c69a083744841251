package match

import (
	"fmt"
	"time"
)

const (
	StatusScheduled = "scheduled"
	StatusFinished  = "finished"
)

// Match is one fixture of a round. Goals are both-or-neither: nil while
// the match is scheduled, both set atomically when the result lands.
type Match struct {
	ID         int64
	RoundID    int64
	HomeTeamID int64
	AwayTeamID int64
	KickoffAt  time.Time
	HomeGoals  *int
	AwayGoals  *int
	Status     string
}

func (m Match) IsFinished() bool {
	return m.Status == StatusFinished && m.HomeGoals != nil && m.AwayGoals != nil
}

func (m Match) Validate() error {
	if m.RoundID <= 0 {
		return fmt.Errorf("match round id is required")
	}
	if m.HomeTeamID <= 0 || m.AwayTeamID <= 0 {
		return fmt.Errorf("match team ids are required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match teams must differ")
	}

	return nil
}
