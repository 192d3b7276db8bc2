package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hmillward/taxfolio/internal/domain"
)

// ReportGenerator renders a period summary in various formats.
type ReportGenerator struct{}

// NewReportGenerator creates a new report generator.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// GenerateReport writes the summary to w in the requested format.
func GenerateReport(w io.Writer, summary *domain.PeriodSummary, format string) error {
	generator := NewReportGenerator()

	switch format {
	case "console":
		return generator.GenerateConsoleReport(w, summary)
	case "json":
		return generator.GenerateJSONReport(w, summary)
	case "csv":
		return generator.GenerateCSVReport(w, summary)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// GenerateConsoleReport renders a human-readable summary.
func (rg *ReportGenerator) GenerateConsoleReport(w io.Writer, summary *domain.PeriodSummary) error {
	fmt.Fprintln(w, strings.Repeat("=", 64))
	fmt.Fprintf(w, "PERIOD SUMMARY  %s\n", summary.Window)
	fmt.Fprintln(w, strings.Repeat("=", 64))
	fmt.Fprintf(w, "Revenue:              %s\n", FormatCurrency(summary.Revenue))
	fmt.Fprintf(w, "Recognized expenses:  %s\n", FormatCurrency(summary.RecognizedExpenses))
	fmt.Fprintf(w, "Estimated tax:        %s\n", FormatCurrency(summary.EstimatedTax))
	fmt.Fprintf(w, "  Income tax:         %s\n", FormatCurrency(summary.Tax.IncomeTax))
	fmt.Fprintf(w, "  Contributions:      %s\n", FormatCurrency(summary.Tax.SocialContribution))
	fmt.Fprintf(w, "Net profit:           %s\n", FormatCurrency(summary.NetProfit))

	if len(summary.ByCategory) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "EXPENSES BY CATEGORY")
		fmt.Fprintln(w, strings.Repeat("-", 64))
		for _, cat := range sortedCategories(summary.ByCategory) {
			fmt.Fprintf(w, "%-32s %s\n", cat, FormatCurrency(summary.ByCategory[cat]))
		}
	}

	if len(summary.Expenses) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "MATCHING EXPENSES")
		fmt.Fprintln(w, strings.Repeat("-", 64))
		fmt.Fprintf(w, "%-24s %-16s %-10s %12s\n", "Name", "Category", "Status", "Recognized")
		for _, row := range summary.Expenses {
			fmt.Fprintf(w, "%-24s %-16s %-10s %12s\n",
				truncate(row.Name, 24), truncate(row.Category, 16), row.Status, FormatCurrency(row.Recognized))
		}
	}

	for _, skipped := range summary.SkippedRecords {
		fmt.Fprintf(w, "skipped: %s\n", skipped)
	}
	return nil
}

// GenerateJSONReport renders the summary as indented JSON.
func (rg *ReportGenerator) GenerateJSONReport(w io.Writer, summary *domain.PeriodSummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

func sortedCategories(byCategory map[string]decimal.Decimal) []string {
	cats := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
