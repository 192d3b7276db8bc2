package fiscal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hmillward/taxfolio/internal/domain"
)

// Calendar maps calendar dates onto fiscal years. The cutover is the
// first day of the fiscal year; the UK tax year runs April 6 to April 5.
type Calendar struct {
	CutoverMonth time.Month
	CutoverDay   int
}

// UK is the default calendar (fiscal year starting April 6).
var UK = Calendar{CutoverMonth: time.April, CutoverDay: 6}

// FiscalYearOf returns the "Y/Y+1" label of the fiscal year containing d.
func (c Calendar) FiscalYearOf(d time.Time) string {
	startYear := d.Year()
	if d.Month() < c.CutoverMonth ||
		(d.Month() == c.CutoverMonth && d.Day() < c.CutoverDay) {
		startYear--
	}
	return fmt.Sprintf("%d/%d", startYear, startYear+1)
}

// BoundsOf returns the window of a "Y/Y+1" label: cutover day of year Y
// at midnight through the day before the next cutover, end of day.
func (c Calendar) BoundsOf(label string) (domain.FiscalWindow, error) {
	first, second, ok := strings.Cut(label, "/")
	if !ok {
		return domain.FiscalWindow{}, &domain.InvalidPeriodLabelError{Label: label}
	}
	startYear, err := strconv.Atoi(first)
	if err != nil {
		return domain.FiscalWindow{}, &domain.InvalidPeriodLabelError{Label: label}
	}
	endYear, err := strconv.Atoi(second)
	if err != nil || endYear != startYear+1 {
		return domain.FiscalWindow{}, &domain.InvalidPeriodLabelError{Label: label}
	}
	return c.yearWindow(startYear), nil
}

func (c Calendar) yearWindow(startYear int) domain.FiscalWindow {
	start := time.Date(startYear, c.CutoverMonth, c.CutoverDay, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, -1)
	return domain.FiscalWindow{Start: start, End: endOfDay(end)}
}

// ThisFiscalYear returns the window of the fiscal year containing now.
func (c Calendar) ThisFiscalYear(now time.Time) domain.FiscalWindow {
	w, _ := c.BoundsOf(c.FiscalYearOf(now))
	return w
}

// LastFiscalYear returns the window of the fiscal year before the one
// containing now.
func (c Calendar) LastFiscalYear(now time.Time) domain.FiscalWindow {
	return c.yearWindow(startYearOf(c.FiscalYearOf(now)) - 1)
}

func startYearOf(label string) int {
	first, _, _ := strings.Cut(label, "/")
	y, _ := strconv.Atoi(first)
	return y
}

// TrailingDays returns a window covering the last n days up to now,
// inclusive of today.
func TrailingDays(now time.Time, n int) domain.FiscalWindow {
	start := startOfDay(now.AddDate(0, 0, -(n - 1)))
	return domain.FiscalWindow{Start: start, End: endOfDay(now)}
}

// MonthToDate returns a window from the first of the current month to now.
func MonthToDate(now time.Time) domain.FiscalWindow {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return domain.FiscalWindow{Start: start, End: endOfDay(now)}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), time.UTC)
}
