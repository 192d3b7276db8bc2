package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hmillward/taxfolio/internal/domain"
)

// occurrenceIterator yields successive billing dates of a subscription.
// Occurrences are anchored to the start date rather than chained with
// repeated AddDate calls, so the billing day does not drift when a month
// boundary normalises (a subscription billed on the 31st keeps its anchor
// through shorter months).
type occurrenceIterator struct {
	start time.Time
	cycle domain.BillingCycle
	n     int
}

// Next returns the next occurrence date.
func (it *occurrenceIterator) Next() time.Time {
	var occ time.Time
	switch it.cycle {
	case domain.BillingAnnually:
		occ = it.start.AddDate(it.n, 0, 0)
	default:
		occ = it.start.AddDate(0, it.n, 0)
	}
	it.n++
	return occ
}

// AmortizeSubscription expands a recurring expense into the billing
// occurrences falling inside window and sums their amounts. An absent end
// date means the subscription is still running, so it is bounded by the
// window end. Generation stops as soon as an occurrence passes
// min(end, window end), which keeps the loop finite for open-ended
// subscriptions that started decades ago.
func AmortizeSubscription(start time.Time, end *time.Time, cycle domain.BillingCycle, amount decimal.Decimal, window domain.FiscalWindow) decimal.Decimal {
	if start.After(window.End) {
		return decimal.Zero
	}
	if end != nil && end.Before(window.Start) {
		return decimal.Zero
	}

	limit := window.End
	if end != nil && end.Before(limit) {
		limit = *end
	}

	total := decimal.Zero
	it := occurrenceIterator{start: start, cycle: cycle}
	for {
		occ := it.Next()
		if occ.After(limit) {
			return total
		}
		if !occ.Before(window.Start) {
			total = total.Add(amount)
		}
	}
}
