package score

// InitialStake is the points every user starts a season with. The Score
// row is created lazily with this total on first access.
const InitialStake = 100

// Score is the per-user per-season running tally. Rows are mutated only
// by settlement; reads derive the spendable balance from TotalPoints.
type Score struct {
	ID          int64
	UserID      int64
	Season      string
	TotalPoints int
	Hits        int
	Misses      int
	BetsSettled int
}

// HitRate is the share of settled bets that were hits, in percent.
func (s Score) HitRate() float64 {
	if s.BetsSettled == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.BetsSettled) * 100
}

// NewForSeason is the lazily-created initial row.
func NewForSeason(userID int64, season string) Score {
	return Score{
		UserID:      userID,
		Season:      season,
		TotalPoints: InitialStake,
	}
}
