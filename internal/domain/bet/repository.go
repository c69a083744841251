package bet

import "context"

// Repository describes bet persistence needs from use cases.
type Repository interface {
	// Upsert stores the bet keyed on (user, match, type), overwriting
	// prediction, wager and timestamp and resetting Awarded to nil when
	// a bet for the key already exists.
	Upsert(ctx context.Context, item Bet) (Bet, error)
	GetByKey(ctx context.Context, userID, matchID int64, betType Type) (Bet, bool, error)
	// ListUnsettledByUser returns the user's bets with Awarded still nil.
	ListUnsettledByUser(ctx context.Context, userID int64) ([]Bet, error)
	// ListUnsettledByMatchIDs returns unsettled bets on any of the given
	// matches, across all users.
	ListUnsettledByMatchIDs(ctx context.Context, matchIDs []int64) ([]Bet, error)
	ListByUserAndMatchIDs(ctx context.Context, userID int64, matchIDs []int64) ([]Bet, error)
	// SetAwarded marks one bet settled with its gross payout.
	SetAwarded(ctx context.Context, betID int64, awarded int) error
}
