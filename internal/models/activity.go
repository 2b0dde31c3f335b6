package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/heatcal/internal/constants"
)

// ActivityEntry is a single recorded activity on a day
type ActivityEntry struct {
	ID          string     `json:"id"`
	Day         string     `json:"day"` // YYYY-MM-DD format (Gregorian)
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

func (e *ActivityEntry) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return fmt.Errorf("activity description cannot be empty")
	}
	if e.Day == "" {
		return fmt.Errorf("activity day cannot be empty")
	}
	if _, err := time.Parse(constants.DateFormat, e.Day); err != nil {
		return fmt.Errorf("invalid day format (expected YYYY-MM-DD): %w", err)
	}
	return nil
}

// IsDeleted reports whether the entry has been soft deleted
func (e *ActivityEntry) IsDeleted() bool {
	return e.DeletedAt != nil
}
