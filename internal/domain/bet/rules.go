package bet

import "github.com/lapolla/quiniela/internal/domain/match"

// Rule is the payout arithmetic of one bet type: either a wager
// multiplier or a flat bonus on top of the wager, never both.
type Rule struct {
	Label      string
	Multiplier int
	Bonus      int
}

// Payout is the gross points a correct bet of the given wager earns.
// The same arithmetic backs the pre-confirm preview and settlement.
func (r Rule) Payout(wager int) int {
	if r.Multiplier > 0 {
		return wager * r.Multiplier
	}
	return wager + r.Bonus
}

var rulesByType = map[Type]Rule{
	TypeOutcome:    {Label: "Resultado", Multiplier: 2},
	TypeExactScore: {Label: "Marcador Exacto", Multiplier: 3},
	TypeTotalGoals: {Label: "Total de Goles", Bonus: 5},
}

// RuleFor returns the payout rule of a bet type.
func RuleFor(betType Type) (Rule, bool) {
	rule, ok := rulesByType[betType]
	return rule, ok
}

// Evaluation is the outcome of scoring one bet against its match.
type Evaluation struct {
	// Correct is nil while the match result is still undetermined.
	Correct *bool
	// Delta is the net change to the user's total: awarded minus wager
	// on a hit, minus the wager on a miss, zero while pending.
	Delta int
	// Awarded is the gross payout persisted on the bet row.
	Awarded int
}

func (e Evaluation) Pending() bool {
	return e.Correct == nil
}

// Evaluate decides correctness and the point delta for one (bet, match)
// pair. A bet on an unfinished match stays pending with no change.
func Evaluate(b Bet, m match.Match) Evaluation {
	correct := isCorrect(b, m)
	if correct == nil {
		return Evaluation{}
	}

	if !*correct {
		return Evaluation{Correct: correct, Delta: -b.Wager}
	}

	rule, ok := RuleFor(b.Type)
	if !ok {
		// Unknown types are rejected at placement and never stored.
		return Evaluation{}
	}
	awarded := rule.Payout(b.Wager)

	return Evaluation{
		Correct: correct,
		Delta:   awarded - b.Wager,
		Awarded: awarded,
	}
}

func isCorrect(b Bet, m match.Match) *bool {
	if !m.IsFinished() {
		return nil
	}

	switch b.Type {
	case TypeOutcome:
		return boolPtr(match.Outcome(b.Prediction) == match.CategoricalOutcome(m))
	case TypeExactScore:
		return boolPtr(b.Prediction == match.ExactScore(m))
	case TypeTotalGoals:
		total := match.TotalGoals(m)
		if total == nil {
			return nil
		}
		if b.Prediction == PredictionLow {
			return boolPtr(*total <= 2)
		}
		return boolPtr(*total >= 3)
	default:
		return nil
	}
}

func boolPtr(v bool) *bool {
	return &v
}
