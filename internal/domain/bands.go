package domain

import (
	"github.com/shopspring/decimal"
)

// RateBand is one slice of a progressive rate table. A unit of cumulative
// income belongs to the band when Floor < income <= Ceiling.
type RateBand struct {
	Floor   decimal.Decimal `yaml:"floor" json:"floor"`
	Ceiling decimal.Decimal `yaml:"ceiling" json:"ceiling"`
	Rate    decimal.Decimal `yaml:"rate" json:"rate"`
}

// TaxBands holds the two independent progressive tables used by the
// estimator: income tax and social contributions. Both are ordered by
// ascending floor and cover income from zero upward with no gaps.
type TaxBands struct {
	IncomeTax          []RateBand `yaml:"income_tax" json:"incomeTax"`
	SocialContribution []RateBand `yaml:"social_contribution" json:"socialContribution"`
}

// bandCeilingOpen stands in for "no upper limit" on the top band.
var bandCeilingOpen = decimal.NewFromInt(999999999)

// DefaultUKTaxBands returns the 2024/25 UK rate tables: personal
// allowance, basic, higher and additional rate for income tax; Class 4
// style lower/upper thresholds for contributions.
func DefaultUKTaxBands() TaxBands {
	return TaxBands{
		IncomeTax: []RateBand{
			{Floor: decimal.Zero, Ceiling: decimal.NewFromInt(12570), Rate: decimal.Zero},
			{Floor: decimal.NewFromInt(12570), Ceiling: decimal.NewFromInt(50270), Rate: decimal.NewFromFloat(0.20)},
			{Floor: decimal.NewFromInt(50270), Ceiling: decimal.NewFromInt(125140), Rate: decimal.NewFromFloat(0.40)},
			{Floor: decimal.NewFromInt(125140), Ceiling: bandCeilingOpen, Rate: decimal.NewFromFloat(0.45)},
		},
		SocialContribution: []RateBand{
			{Floor: decimal.Zero, Ceiling: decimal.NewFromInt(12570), Rate: decimal.Zero},
			{Floor: decimal.NewFromInt(12570), Ceiling: decimal.NewFromInt(50270), Rate: decimal.NewFromFloat(0.06)},
			{Floor: decimal.NewFromInt(50270), Ceiling: bandCeilingOpen, Rate: decimal.NewFromFloat(0.02)},
		},
	}
}
