package history

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one committed splitter placement.
type Entry struct {
	ID      int64
	Session string
	// Key identifies the layout the placement belongs to, e.g. the file
	// shown next to the event log and the axis.
	Key        string
	Axis       string
	ByFraction bool
	Offset     int
	Fraction   float64
	FromUser   bool
	Timestamp  time.Time
}

// Percent returns Fraction as a 0-100 value.
func (e Entry) Percent() float64 {
	return e.Fraction * 100
}

// NewSession returns an identifier stamped on every entry written by one
// run of the program.
func NewSession() string {
	return uuid.New().String()
}
