package compare

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmillward/taxfolio/internal/calculation"
	"github.com/hmillward/taxfolio/internal/domain"
	"github.com/hmillward/taxfolio/internal/fiscal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCompareAcrossFiscalYears(t *testing.T) {
	engine := calculation.NewEngine(domain.DefaultUKTaxBands(), decimal.Zero)
	engine.AsOf = date(2024, time.January, 1)
	ce := NewCompareEngine(engine)

	invoices := []domain.Invoice{
		{ID: uuid.New(), IssueDate: date(2022, time.June, 1), Amount: decimal.NewFromInt(5000), Status: domain.InvoicePaid},
		{ID: uuid.New(), IssueDate: date(2023, time.June, 1), Amount: decimal.NewFromInt(8000), Status: domain.InvoicePaid},
	}

	fy2022, err := fiscal.UK.BoundsOf("2022/2023")
	require.NoError(t, err)
	fy2023, err := fiscal.UK.BoundsOf("2023/2024")
	require.NoError(t, err)

	results := ce.Compare(invoices, nil, []WindowSpec{
		{Name: "FY 2022/2023", Window: fy2022},
		{Name: "FY 2023/2024", Window: fy2023},
	}, "")

	require.Len(t, results, 2)
	require.NoError(t, results[0].Err)
	require.NoError(t, results[1].Err)
	assert.True(t, results[0].Summary.Revenue.Equal(decimal.NewFromInt(5000)))
	assert.True(t, results[1].Summary.Revenue.Equal(decimal.NewFromInt(8000)))

	table := (&TableFormatter{}).Format(results)
	assert.Contains(t, table, "FY 2022/2023")
	assert.Contains(t, table, "£8000.00")
}

func TestResolveWindowSpec(t *testing.T) {
	now := date(2024, time.June, 15)

	tests := []struct {
		arg       string
		wantName  string
		wantStart time.Time
		wantErr   bool
	}{
		{arg: "this-fy", wantName: "FY 2024/2025", wantStart: date(2024, time.April, 6)},
		{arg: "last-fy", wantName: "FY 2023/2024", wantStart: date(2023, time.April, 6)},
		{arg: "mtd", wantName: "Month to date", wantStart: date(2024, time.June, 1)},
		{arg: "trailing:7", wantName: "Trailing 7 days", wantStart: date(2024, time.June, 9)},
		{arg: "2022/2023", wantName: "FY 2022/2023", wantStart: date(2022, time.April, 6)},
		{arg: "trailing:zero", wantErr: true},
		{arg: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			spec, err := ResolveWindowSpec(fiscal.UK, tt.arg, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, spec.Name)
			assert.Equal(t, tt.wantStart, spec.Window.Start)
		})
	}
}
