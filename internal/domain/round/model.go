package round

import "fmt"

// Round ("jornada") is a numbered set of matches within a season,
// settled together. The closed flag is informational: it gates neither
// betting nor settlement.
type Round struct {
	ID     int64
	Number int
	Season string
	Closed bool
}

func (r Round) Validate() error {
	if r.Number <= 0 {
		return fmt.Errorf("round number must be greater than zero")
	}
	if r.Season == "" {
		return fmt.Errorf("round season is required")
	}

	return nil
}
