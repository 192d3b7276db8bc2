package calculation

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hmillward/taxfolio/internal/domain"
	"github.com/hmillward/taxfolio/internal/fiscal"
)

// TaxAnchor selects where the "income already earned this year" running
// total starts when aggregating an ad-hoc window.
type TaxAnchor string

const (
	// AnchorWindow starts the running total at zero within the selected
	// window, so an invoice's marginal position depends only on invoices
	// inside the window.
	AnchorWindow TaxAnchor = "anchor-window"
	// AnchorFiscalYear seeds the running total with paid invoices issued
	// between the fiscal-year start and the window start, taxing ad-hoc
	// spans at their true year-to-date marginal position.
	AnchorFiscalYear TaxAnchor = "anchor-fiscal-year"
)

// Engine aggregates invoices and expenses over a reporting window. It is
// a pure function of its inputs: it never writes records, holds no
// mutable state between calls, and identical inputs produce identical
// summaries, so concurrent aggregation of several windows needs no
// coordination.
type Engine struct {
	Estimator *ProgressiveTaxEstimator
	Calendar  fiscal.Calendar

	// BaselineIncome is non-freelance income (e.g. salary) that already
	// occupies the lower bands for the whole fiscal year.
	BaselineIncome decimal.Decimal

	// Anchor controls the already-earned seed for ad-hoc windows.
	Anchor TaxAnchor

	// SkipInvalid switches aggregation from fail-fast to skip-and-continue:
	// inconsistent records are dropped from the totals and listed on the
	// summary instead of failing the whole run. Off by default so a bad
	// record cannot silently shrink the totals.
	SkipInvalid bool

	// AsOf is the reference instant for derived display statuses. Zero
	// means the wall clock.
	AsOf time.Time
}

// NewEngine creates an aggregation engine with the default UK calendar
// and fail-fast semantics.
func NewEngine(bands domain.TaxBands, baseline decimal.Decimal) *Engine {
	return &Engine{
		Estimator:      NewProgressiveTaxEstimator(bands),
		Calendar:       fiscal.UK,
		BaselineIncome: baseline,
		Anchor:         AnchorWindow,
	}
}

func (en *Engine) now() time.Time {
	if en.AsOf.IsZero() {
		return time.Now()
	}
	return en.AsOf
}

// Aggregate computes the period summary for a window: revenue from paid
// in-window invoices, estimated tax from walking those invoices in issue
// order, recognized expenses, net profit, and the detail rows matching
// the text filter.
func (en *Engine) Aggregate(invoices []domain.Invoice, expenses []domain.Expense, window domain.FiscalWindow, filter string) (*domain.PeriodSummary, error) {
	summary := &domain.PeriodSummary{
		Window:     window,
		ByCategory: make(map[string]decimal.Decimal),
	}

	paid, err := en.filterPaid(invoices, window, summary)
	if err != nil {
		return nil, err
	}

	// Liability is order-dependent: later invoices sit higher in the
	// bands, so the walk must be chronological. The sort is stable so
	// same-day invoices keep their original order.
	sort.SliceStable(paid, func(i, j int) bool {
		return paid[i].IssueDate.Before(paid[j].IssueDate)
	})

	earned, err := en.alreadyEarned(invoices, window)
	if err != nil {
		return nil, err
	}
	for _, inv := range paid {
		summary.Revenue = summary.Revenue.Add(inv.Amount)
		est, err := en.Estimator.EstimateInvoiceTax(inv.Amount, en.BaselineIncome, earned)
		if err != nil {
			return nil, err
		}
		summary.Tax = summary.Tax.Add(est)
		earned = earned.Add(inv.Amount)
	}
	summary.EstimatedTax = summary.Tax.Total()

	now := en.now()
	needle := strings.ToLower(filter)
	for i := range expenses {
		exp := &expenses[i]
		recognized, err := RecognizeExpense(exp, window)
		if err != nil {
			if en.SkipInvalid {
				summary.SkippedRecords = append(summary.SkippedRecords, err.Error())
				continue
			}
			return nil, err
		}
		summary.RecognizedExpenses = summary.RecognizedExpenses.Add(recognized)
		if recognized.IsPositive() {
			summary.ByCategory[exp.Category] = summary.ByCategory[exp.Category].Add(recognized)
		}
		if window.OverlapsInterval(exp.StartDate, exp.EndDate) && matchesFilter(exp, needle) {
			summary.Expenses = append(summary.Expenses, domain.ExpenseRow{
				ID:         exp.ID,
				Name:       exp.DisplayName(),
				Category:   exp.Category,
				Type:       exp.Type,
				Recognized: recognized,
				Status:     DeriveStatus(exp, now),
			})
		}
	}

	summary.NetProfit = summary.Revenue.Sub(summary.RecognizedExpenses).Sub(summary.EstimatedTax)
	return summary, nil
}

// filterPaid returns the paid invoices issued inside the window,
// validating amounts along the way.
func (en *Engine) filterPaid(invoices []domain.Invoice, window domain.FiscalWindow, summary *domain.PeriodSummary) ([]domain.Invoice, error) {
	var paid []domain.Invoice
	for i := range invoices {
		inv := invoices[i]
		if err := inv.Validate(); err != nil {
			if en.SkipInvalid {
				summary.SkippedRecords = append(summary.SkippedRecords, err.Error())
				continue
			}
			return nil, err
		}
		if inv.Status == domain.InvoicePaid && window.Contains(inv.IssueDate) {
			paid = append(paid, inv)
		}
	}
	return paid, nil
}

// alreadyEarned computes the running-total seed for the tax walk.
func (en *Engine) alreadyEarned(invoices []domain.Invoice, window domain.FiscalWindow) (decimal.Decimal, error) {
	if en.Anchor != AnchorFiscalYear {
		return decimal.Zero, nil
	}
	fyStart := en.Calendar.ThisFiscalYear(window.Start).Start
	earned := decimal.Zero
	for i := range invoices {
		inv := invoices[i]
		if inv.Status != domain.InvoicePaid {
			continue
		}
		if inv.Amount.IsNegative() {
			if en.SkipInvalid {
				continue
			}
			return decimal.Zero, &domain.NegativeAmountError{RecordID: inv.ID, Field: "amount", Amount: inv.Amount}
		}
		if !inv.IssueDate.Before(fyStart) && inv.IssueDate.Before(window.Start) {
			earned = earned.Add(inv.Amount)
		}
	}
	return earned, nil
}

func matchesFilter(e *domain.Expense, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Name), needle) ||
		strings.Contains(strings.ToLower(e.Description), needle) ||
		strings.Contains(strings.ToLower(e.Category), needle)
}
