package user

import (
	"fmt"
	"strings"
	"time"
)

// User is a registered pool participant. Users are soft-deactivated,
// never hard-deleted.
type User struct {
	ID           int64
	GivenName    string
	FamilyName   string
	RegisteredAt time.Time
	Active       bool
}

func (u User) FullName() string {
	return strings.TrimSpace(u.GivenName + " " + u.FamilyName)
}

func (u User) Validate() error {
	if strings.TrimSpace(u.GivenName) == "" {
		return fmt.Errorf("user given name is required")
	}
	if strings.TrimSpace(u.FamilyName) == "" {
		return fmt.Errorf("user family name is required")
	}

	return nil
}
