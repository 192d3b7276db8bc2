package output

import (
	"encoding/csv"
	"io"

	"github.com/hmillward/taxfolio/internal/domain"
)

// GenerateCSVReport writes the detail rows as CSV, one row per matching
// expense, with the headline totals appended as pseudo-rows at the end.
func (rg *ReportGenerator) GenerateCSVReport(w io.Writer, summary *domain.PeriodSummary) error {
	cw := csv.NewWriter(w)
	header := []string{"ID", "Name", "Category", "Type", "Status", "Recognized"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range summary.Expenses {
		record := []string{
			row.ID.String(),
			row.Name,
			row.Category,
			string(row.Type),
			string(row.Status),
			row.Recognized.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	totals := [][]string{
		{"", "Revenue", "", "", "", summary.Revenue.StringFixed(2)},
		{"", "RecognizedExpenses", "", "", "", summary.RecognizedExpenses.StringFixed(2)},
		{"", "EstimatedTax", "", "", "", summary.EstimatedTax.StringFixed(2)},
		{"", "NetProfit", "", "", "", summary.NetProfit.StringFixed(2)},
	}
	for _, record := range totals {
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
