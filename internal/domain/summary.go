package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxEstimate is the liability attributable to one invoice (or, summed,
// to a whole window), split into its two components.
type TaxEstimate struct {
	IncomeTax          decimal.Decimal `json:"incomeTax"`
	SocialContribution decimal.Decimal `json:"socialContribution"`
}

// Total returns income tax plus contributions.
func (t TaxEstimate) Total() decimal.Decimal {
	return t.IncomeTax.Add(t.SocialContribution)
}

// Add returns the component-wise sum of two estimates.
func (t TaxEstimate) Add(other TaxEstimate) TaxEstimate {
	return TaxEstimate{
		IncomeTax:          t.IncomeTax.Add(other.IncomeTax),
		SocialContribution: t.SocialContribution.Add(other.SocialContribution),
	}
}

// ExpenseRow is one detail line of a period summary: an expense whose
// active interval overlaps the window, with its recognized amount and
// derived display status.
type ExpenseRow struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Type       ExpenseType     `json:"type"`
	Recognized decimal.Decimal `json:"recognized"`
	Status     ExpenseStatus   `json:"status"`
}

// PeriodSummary is the result of aggregating a window: the three headline
// figures, their derivatives, and the matching detail rows. It is
// recomputed fresh for every window/filter change and never cached.
type PeriodSummary struct {
	Window             FiscalWindow               `json:"window"`
	Revenue            decimal.Decimal            `json:"revenue"`
	RecognizedExpenses decimal.Decimal            `json:"recognizedExpenses"`
	Tax                TaxEstimate                `json:"tax"`
	EstimatedTax       decimal.Decimal            `json:"estimatedTax"`
	NetProfit          decimal.Decimal            `json:"netProfit"`
	ByCategory         map[string]decimal.Decimal `json:"byCategory"`
	Expenses           []ExpenseRow               `json:"expenses"`
	SkippedRecords     []string                   `json:"skippedRecords,omitempty"`
}
