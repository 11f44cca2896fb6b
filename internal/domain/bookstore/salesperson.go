package bookstore

import (
	"fmt"
	"time"
)

// Salesperson is a member of the store's sales staff.
// The clock-in and clock-out timestamps carry no ordering constraint;
// a clock-out may precede the last clock-in and is stored as-is.
type Salesperson struct {
	ID             int64
	Name           string
	Birthday       time.Time
	LastClockedIn  time.Time
	LastClockedOut time.Time
}

// Label returns a short human-readable summary for diagnostics.
func (s *Salesperson) Label() string {
	return fmt.Sprintf("%s (born %s)", s.Name, s.Birthday.Format("2006-01-02"))
}
