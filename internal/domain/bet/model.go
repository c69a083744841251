package bet

import (
	"fmt"
	"regexp"
	"time"

	"github.com/lapolla/quiniela/internal/domain/match"
)

// Type is the closed set of bet kinds the pool supports.
type Type string

const (
	// TypeOutcome predicts home win, draw or away win ("1", "X", "2").
	TypeOutcome Type = "outcome"
	// TypeExactScore predicts the final score as "home-away".
	TypeExactScore Type = "exact_score"
	// TypeTotalGoals predicts the goals bucket: "low" (2 or fewer) or
	// "high" (3 or more).
	TypeTotalGoals Type = "total_goals"
)

const (
	PredictionLow  = "low"
	PredictionHigh = "high"
)

// AllowedWagers is the fixed set of point amounts a bet may stake.
var AllowedWagers = []int{5, 10, 15, 20}

var exactScorePattern = regexp.MustCompile(`^\d{1,2}-\d{1,2}$`)

// Bet is one user's prediction on one match. At most one bet exists per
// (user, match, type); re-betting overwrites the previous one and
// resets Awarded to nil.
type Bet struct {
	ID         int64
	UserID     int64
	MatchID    int64
	Type       Type
	Prediction string
	Wager      int
	// Awarded is nil while the bet is unsettled; once settled it holds
	// the gross points paid out (zero for a miss).
	Awarded  *int
	PlacedAt time.Time
}

func (b Bet) Settled() bool {
	return b.Awarded != nil
}

func IsAllowedWager(wager int) bool {
	for _, allowed := range AllowedWagers {
		if wager == allowed {
			return true
		}
	}
	return false
}

// ValidatePrediction checks the type-specific prediction encoding.
func ValidatePrediction(betType Type, prediction string) error {
	switch betType {
	case TypeOutcome:
		switch match.Outcome(prediction) {
		case match.OutcomeHome, match.OutcomeDraw, match.OutcomeAway:
			return nil
		}
		return fmt.Errorf("outcome prediction must be 1, X or 2, got %q", prediction)
	case TypeExactScore:
		if !exactScorePattern.MatchString(prediction) {
			return fmt.Errorf("exact score prediction must look like 2-1, got %q", prediction)
		}
		return nil
	case TypeTotalGoals:
		if prediction != PredictionLow && prediction != PredictionHigh {
			return fmt.Errorf("total goals prediction must be %q or %q, got %q", PredictionLow, PredictionHigh, prediction)
		}
		return nil
	default:
		return fmt.Errorf("unknown bet type %q", betType)
	}
}

// InsufficientBalanceError rejects a wager exceeding the user's
// spendable points; Available carries the amount for display.
type InsufficientBalanceError struct {
	Available int
}

func (e InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: %d points available", e.Available)
}
