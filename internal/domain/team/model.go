package team

import "fmt"

const maxShortCodeLength = 5

// Team is a real football club of the league the pool bets on.
type Team struct {
	ID    int64
	Name  string
	Short string
	Venue string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be greater than zero")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.Short == "" {
		return fmt.Errorf("team short code is required")
	}
	if len([]rune(t.Short)) > maxShortCodeLength {
		return fmt.Errorf("team short code %q exceeds %d characters", t.Short, maxShortCodeLength)
	}

	return nil
}

// TruncateShort clips a feed-provided code to the column limit.
func TruncateShort(code string) string {
	runes := []rune(code)
	if len(runes) <= maxShortCodeLength {
		return code
	}
	return string(runes[:maxShortCodeLength])
}
