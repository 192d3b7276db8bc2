package config

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmillward/taxfolio/internal/domain"
)

const validBooks = `
baseline_income: 20000
invoices:
  - reference: INV-001
    issue_date: 2023-05-01
    amount: 1000
    status: paid
  - reference: INV-002
    issue_date: 2023-06-01
    amount: 250.50
    status: sent
expenses:
  - name: Laptop
    category: Equipment
    amount: 1200
    amount_gbp: 1200
    currency: GBP
    start_date: 2023-05-10
    type: manual
  - name: Editor licence
    category: Software
    amount: 12
    amount_gbp: 12
    currency: GBP
    start_date: 2023-01-15
    type: subscription
    billing_cycle: monthly
`

func TestParseValidBooks(t *testing.T) {
	books, err := NewInputParser().Parse([]byte(validBooks))
	require.NoError(t, err)

	assert.True(t, books.BaselineIncome.Equal(decimal.NewFromInt(20000)))
	require.Len(t, books.Invoices, 2)
	require.Len(t, books.Expenses, 2)

	assert.Equal(t, domain.InvoicePaid, books.Invoices[0].Status)
	assert.True(t, books.Invoices[1].Amount.Equal(decimal.NewFromFloat(250.50)))
	assert.Equal(t, 2023, books.Invoices[0].IssueDate.Year())

	// IDs are assigned when absent from the file.
	assert.NotEqual(t, uuid.Nil, books.Invoices[0].ID)
	assert.NotEqual(t, uuid.Nil, books.Expenses[0].ID)

	assert.Equal(t, domain.BillingMonthly, books.Expenses[1].BillingCycle)
	assert.Nil(t, books.Expenses[1].EndDate)
}

func TestParseDefaultsToUKBands(t *testing.T) {
	books, err := NewInputParser().Parse([]byte("baseline_income: 0\n"))
	require.NoError(t, err)

	bands := books.Bands()
	require.NotEmpty(t, bands.IncomeTax)
	assert.True(t, bands.IncomeTax[0].Rate.IsZero())
}

func TestParseBandOverrides(t *testing.T) {
	doc := `
baseline_income: 0
tax_bands:
  income_tax:
    - {floor: 0, ceiling: 10000, rate: 0}
    - {floor: 10000, ceiling: 999999999, rate: 0.25}
  social_contribution:
    - {floor: 0, ceiling: 999999999, rate: 0.05}
`
	books, err := NewInputParser().Parse([]byte(doc))
	require.NoError(t, err)

	bands := books.Bands()
	require.Len(t, bands.IncomeTax, 2)
	assert.True(t, bands.IncomeTax[1].Rate.Equal(decimal.NewFromFloat(0.25)))
	require.Len(t, bands.SocialContribution, 1)
}

func TestParseRejectsBadRecords(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"negative invoice amount", `
invoices:
  - reference: INV-001
    issue_date: 2023-05-01
    amount: -10
    status: paid
`},
		{"unknown invoice status", `
invoices:
  - reference: INV-001
    issue_date: 2023-05-01
    amount: 10
    status: pending
`},
		{"subscription without cycle", `
expenses:
  - name: Editor
    amount: 12
    amount_gbp: 12
    start_date: 2023-01-15
    type: subscription
`},
		{"expense without name or description", `
expenses:
  - category: Misc
    amount: 12
    amount_gbp: 12
    start_date: 2023-01-15
    type: manual
`},
		{"gapped band table", `
tax_bands:
  income_tax:
    - {floor: 0, ceiling: 10000, rate: 0}
    - {floor: 20000, ceiling: 999999999, rate: 0.25}
  social_contribution:
    - {floor: 0, ceiling: 999999999, rate: 0.05}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}
