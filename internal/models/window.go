package models

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateWindow is an inclusive calendar date range with Start <= End.
// Two windows exist per request: the context window (the user's intent, used
// for display and prompt framing) and the query window (what is actually sent
// to the news provider after clamping).
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// NewDateWindow constructs a DateWindow, enforcing the Start <= End invariant
func NewDateWindow(start, end time.Time) (DateWindow, error) {
	if start.After(end) {
		return DateWindow{}, fmt.Errorf("invalid date window: start %s after end %s",
			start.Format(dateLayout), end.Format(dateLayout))
	}
	return DateWindow{Start: start, End: end}, nil
}

// StartDate returns the window start formatted as YYYY-MM-DD
func (w DateWindow) StartDate() string {
	return w.Start.Format(dateLayout)
}

// EndDate returns the window end formatted as YYYY-MM-DD
func (w DateWindow) EndDate() string {
	return w.End.Format(dateLayout)
}

// String renders the window as "YYYY-MM-DD to YYYY-MM-DD"
func (w DateWindow) String() string {
	return fmt.Sprintf("%s to %s", w.StartDate(), w.EndDate())
}
