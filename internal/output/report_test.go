package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmillward/taxfolio/internal/domain"
)

func sampleSummary() *domain.PeriodSummary {
	return &domain.PeriodSummary{
		Revenue:            decimal.NewFromInt(1000),
		RecognizedExpenses: decimal.NewFromInt(200),
		Tax: domain.TaxEstimate{
			IncomeTax:          decimal.NewFromInt(200),
			SocialContribution: decimal.NewFromInt(60),
		},
		EstimatedTax: decimal.NewFromInt(260),
		NetProfit:    decimal.NewFromInt(540),
		ByCategory:   map[string]decimal.Decimal{"Travel": decimal.NewFromInt(200)},
		Expenses: []domain.ExpenseRow{
			{
				ID:         uuid.New(),
				Name:       "train tickets",
				Category:   "Travel",
				Type:       domain.ExpenseManual,
				Recognized: decimal.NewFromInt(200),
				Status:     domain.ExpenseCompleted,
			},
		},
	}
}

func TestGenerateConsoleReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GenerateReport(&buf, sampleSummary(), "console"))

	out := buf.String()
	assert.Contains(t, out, "£1000.00")
	assert.Contains(t, out, "£540.00")
	assert.Contains(t, out, "train tickets")
	assert.Contains(t, out, "Travel")
}

func TestGenerateJSONReportRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GenerateReport(&buf, sampleSummary(), "json"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "1000", decoded["revenue"])
	assert.Equal(t, "540", decoded["netProfit"])
}

func TestGenerateCSVReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GenerateReport(&buf, sampleSummary(), "csv"))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	// header + 1 expense + 4 totals
	require.Len(t, records, 6)
	assert.Equal(t, "train tickets", records[1][1])
	assert.Equal(t, "540.00", records[5][5])
}

func TestGenerateReportUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, GenerateReport(&buf, sampleSummary(), "xml"))
}
