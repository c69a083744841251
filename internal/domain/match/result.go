package match

import "fmt"

// Outcome is the categorical result of a match, encoded the way bet
// predictions are written on slips: 1 home win, X draw, 2 away win.
type Outcome string

const (
	OutcomeHome         Outcome = "1"
	OutcomeDraw         Outcome = "X"
	OutcomeAway         Outcome = "2"
	OutcomeUndetermined Outcome = "-"
)

// ScorePlaceholder is shown for matches without a recorded result.
const ScorePlaceholder = "vs"

// CategoricalOutcome derives the 1/X/2 outcome from the recorded goals,
// or OutcomeUndetermined while the match is not finished.
func CategoricalOutcome(m Match) Outcome {
	if !m.IsFinished() {
		return OutcomeUndetermined
	}
	switch {
	case *m.HomeGoals > *m.AwayGoals:
		return OutcomeHome
	case *m.HomeGoals < *m.AwayGoals:
		return OutcomeAway
	default:
		return OutcomeDraw
	}
}

// ExactScore renders the final score as "home-away", or the placeholder
// while the match is not finished.
func ExactScore(m Match) string {
	if !m.IsFinished() {
		return ScorePlaceholder
	}
	return fmt.Sprintf("%d-%d", *m.HomeGoals, *m.AwayGoals)
}

// TotalGoals sums both sides' goals once finished; nil otherwise.
func TotalGoals(m Match) *int {
	if !m.IsFinished() {
		return nil
	}
	total := *m.HomeGoals + *m.AwayGoals
	return &total
}
