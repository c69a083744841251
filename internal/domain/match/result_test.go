package match

import "testing"

func finished(home, away int) Match {
	return Match{
		ID:         1,
		RoundID:    1,
		HomeTeamID: 10,
		AwayTeamID: 20,
		HomeGoals:  &home,
		AwayGoals:  &away,
		Status:     StatusFinished,
	}
}

func TestCategoricalOutcome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    Match
		want Outcome
	}{
		{name: "home win", m: finished(2, 1), want: OutcomeHome},
		{name: "away win", m: finished(0, 3), want: OutcomeAway},
		{name: "draw", m: finished(1, 1), want: OutcomeDraw},
		{name: "goalless draw", m: finished(0, 0), want: OutcomeDraw},
		{name: "scheduled", m: Match{Status: StatusScheduled}, want: OutcomeUndetermined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategoricalOutcome(tt.m); got != tt.want {
				t.Fatalf("CategoricalOutcome = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExactScore(t *testing.T) {
	t.Parallel()

	if got := ExactScore(finished(2, 1)); got != "2-1" {
		t.Fatalf("ExactScore = %q, want 2-1", got)
	}
	if got := ExactScore(Match{Status: StatusScheduled}); got != ScorePlaceholder {
		t.Fatalf("ExactScore = %q, want placeholder %q", got, ScorePlaceholder)
	}
}

func TestTotalGoals(t *testing.T) {
	t.Parallel()

	if got := TotalGoals(finished(2, 1)); got == nil || *got != 3 {
		t.Fatalf("TotalGoals = %v, want 3", got)
	}
	if got := TotalGoals(Match{Status: StatusScheduled}); got != nil {
		t.Fatalf("TotalGoals on scheduled match = %v, want nil", got)
	}
}

func TestIsFinishedRequiresBothGoals(t *testing.T) {
	t.Parallel()

	one := 1
	m := Match{Status: StatusFinished, HomeGoals: &one}
	if m.IsFinished() {
		t.Fatal("match without away goals must not count as finished")
	}
	if got := CategoricalOutcome(m); got != OutcomeUndetermined {
		t.Fatalf("CategoricalOutcome = %q, want undetermined", got)
	}
}
