package compare

import (
	"fmt"
	"strings"

	"github.com/hmillward/taxfolio/internal/output"
)

// TableFormatter formats comparison results as a console table.
type TableFormatter struct{}

// Format generates a formatted table, one row per window.
func (tf *TableFormatter) Format(results []Result) string {
	var sb strings.Builder

	nameWidth := 22
	numWidth := 14

	sb.WriteString("WINDOW COMPARISON\n")
	sb.WriteString(strings.Repeat("=", nameWidth+4*numWidth+4) + "\n")
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Window",
		numWidth, "Revenue",
		numWidth, "Expenses",
		numWidth, "Est. Tax",
		numWidth, "Net Profit"))
	sb.WriteString(strings.Repeat("-", nameWidth+4*numWidth+4) + "\n")

	for _, res := range results {
		if res.Err != nil {
			sb.WriteString(fmt.Sprintf("%-*s error: %v\n", nameWidth, res.Name, res.Err))
			continue
		}
		s := res.Summary
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
			nameWidth, res.Name,
			numWidth, output.FormatCurrency(s.Revenue),
			numWidth, output.FormatCurrency(s.RecognizedExpenses),
			numWidth, output.FormatCurrency(s.EstimatedTax),
			numWidth, output.FormatCurrency(s.NetProfit)))
	}
	sb.WriteString(strings.Repeat("=", nameWidth+4*numWidth+4) + "\n")
	return sb.String()
}
