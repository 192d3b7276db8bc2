package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/hmillward/taxfolio/internal/domain"
)

// ProgressiveTaxEstimator estimates the income-tax and social-contribution
// liability attributable to one additional invoice, given how much income
// already sits in the band structure.
//
// The model taxes each whole currency unit of the invoice at the rate of
// the band containing the cumulative income after that unit: for unit i of
// the invoice, cumulative = baseline + alreadyEarned + i, and a band
// {floor, ceiling, rate} applies when floor < cumulative <= ceiling.
// Rather than looping unit by unit, the estimator counts the units landing
// in each band and multiplies; the result is identical to the per-unit
// walk to the penny (the tests cross-check both). Fractional remainders
// below one unit are not taxed.
type ProgressiveTaxEstimator struct {
	Bands domain.TaxBands
}

// NewProgressiveTaxEstimator creates an estimator over the given tables.
func NewProgressiveTaxEstimator(bands domain.TaxBands) *ProgressiveTaxEstimator {
	return &ProgressiveTaxEstimator{Bands: bands}
}

// EstimateInvoiceTax returns the marginal liability of an invoice on top
// of baseline (non-freelance income for the year) plus alreadyEarned
// (freelance income recognised earlier in the year).
func (pte *ProgressiveTaxEstimator) EstimateInvoiceTax(invoiceAmount, baseline, alreadyEarned decimal.Decimal) (domain.TaxEstimate, error) {
	if invoiceAmount.IsNegative() {
		return domain.TaxEstimate{}, &domain.NegativeAmountError{Field: "invoice amount", Amount: invoiceAmount}
	}
	if baseline.IsNegative() {
		return domain.TaxEstimate{}, &domain.NegativeAmountError{Field: "baseline income", Amount: baseline}
	}
	if alreadyEarned.IsNegative() {
		return domain.TaxEstimate{}, &domain.NegativeAmountError{Field: "already earned", Amount: alreadyEarned}
	}

	start := baseline.Add(alreadyEarned)
	units := invoiceAmount.Floor().IntPart()

	return domain.TaxEstimate{
		IncomeTax:          integrateBands(pte.Bands.IncomeTax, start, units),
		SocialContribution: integrateBands(pte.Bands.SocialContribution, start, units),
	}, nil
}

// integrateBands sums rate * (number of units i in [1, units] whose
// cumulative position start+i lands in the band).
func integrateBands(bands []domain.RateBand, start decimal.Decimal, units int64) decimal.Decimal {
	total := decimal.Zero
	for _, band := range bands {
		if band.Rate.IsZero() {
			continue
		}
		n := unitsInBand(band, start, units)
		if n > 0 {
			total = total.Add(band.Rate.Mul(decimal.NewFromInt(n)))
		}
	}
	return total
}

// unitsInBand counts integers i in [1, units] with
// band.Floor < start+i <= band.Ceiling.
func unitsInBand(band domain.RateBand, start decimal.Decimal, units int64) int64 {
	// Smallest i with start+i strictly above the floor.
	lo := band.Floor.Sub(start).Floor().IntPart() + 1
	if lo < 1 {
		lo = 1
	}
	// Largest i with start+i at or below the ceiling.
	hi := band.Ceiling.Sub(start).Floor().IntPart()
	if hi > units {
		hi = units
	}
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}
