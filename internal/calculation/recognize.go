package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hmillward/taxfolio/internal/domain"
)

// RecognizeExpense computes the amount of an expense attributable to the
// window. Manual expenses count in full when their date falls inside the
// window; subscriptions contribute one amount per billing occurrence
// inside it. Only the window matters here; the derived display status is
// independent of recognition.
func RecognizeExpense(e *domain.Expense, window domain.FiscalWindow) (decimal.Decimal, error) {
	if err := e.Validate(); err != nil {
		return decimal.Zero, err
	}
	switch e.Type {
	case domain.ExpenseManual:
		if window.Contains(e.StartDate) {
			return e.AmountBase, nil
		}
		return decimal.Zero, nil
	default:
		return AmortizeSubscription(e.StartDate, e.EndDate, e.BillingCycle, e.AmountBase, window), nil
	}
}

// DeriveStatus computes the display status of an expense as of a point in
// time. It is a pure function of the record's dates and type and must be
// recomputed whenever those change; it is never persisted and never feeds
// into totals.
func DeriveStatus(e *domain.Expense, now time.Time) domain.ExpenseStatus {
	if e.Type == domain.ExpenseSubscription {
		if e.EndDate != nil && e.EndDate.Before(now) {
			return domain.ExpenseInactive
		}
		return domain.ExpenseActive
	}
	if e.StartDate.After(now) {
		return domain.ExpenseUpcoming
	}
	return domain.ExpenseCompleted
}
