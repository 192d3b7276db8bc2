package domain

import (
	"fmt"
	"time"
)

// FiscalWindow is an inclusive [Start, End] reporting range: either a
// fiscal-year span or an ad-hoc span such as the trailing 7 days.
type FiscalWindow struct {
	Start time.Time `yaml:"start" json:"start"`
	End   time.Time `yaml:"end" json:"end"`
}

// NewFiscalWindow builds a window, enforcing Start <= End.
func NewFiscalWindow(start, end time.Time) (FiscalWindow, error) {
	if start.After(end) {
		return FiscalWindow{}, fmt.Errorf("window start %s is after end %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return FiscalWindow{Start: start, End: end}, nil
}

// Contains reports whether t falls inside the window, inclusive at both ends.
func (w FiscalWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// OverlapsInterval reports whether [start, end] intersects the window.
// A nil end means the interval is open-ended.
func (w FiscalWindow) OverlapsInterval(start time.Time, end *time.Time) bool {
	if start.After(w.End) {
		return false
	}
	if end != nil && end.Before(w.Start) {
		return false
	}
	return true
}

func (w FiscalWindow) String() string {
	return w.Start.Format("2006-01-02") + " to " + w.End.Format("2006-01-02")
}
