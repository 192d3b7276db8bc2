package tui

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hmillward/taxfolio/internal/output"
)

// View renders the dashboard.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("taxfolio"))
	sb.WriteString("  ")
	sb.WriteString(frameStyle.Render("◀ " + m.frameName() + " ▶"))
	sb.WriteString("\n\n")

	if m.err != nil {
		sb.WriteString(errorStyle.Render(m.err.Error()))
		sb.WriteString("\n\n")
		sb.WriteString(helpStyle.Render("q quit"))
		return appStyle.Render(sb.String())
	}

	s := m.summary
	sb.WriteString(metricRow("Revenue", s.Revenue))
	sb.WriteString(metricRow("Recognized expenses", s.RecognizedExpenses))
	sb.WriteString(metricRow("Estimated tax", s.EstimatedTax))
	sb.WriteString(metricRow("  income tax", s.Tax.IncomeTax))
	sb.WriteString(metricRow("  contributions", s.Tax.SocialContribution))

	profit := metricValueStyle
	if s.NetProfit.IsNegative() {
		profit = lossStyle
	} else if s.NetProfit.IsPositive() {
		profit = profitStyle
	}
	sb.WriteString(metricLabelStyle.Render("Net profit"))
	sb.WriteString(profit.Render(output.FormatCurrency(s.NetProfit)))
	sb.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		sb.WriteString(m.filter.View())
		sb.WriteString("\n\n")
	}

	if len(s.Expenses) > 0 {
		sb.WriteString(tableHeaderStyle.Render(fmt.Sprintf("%-24s %-14s %-10s %12s",
			"Expense", "Category", "Status", "Recognized")))
		sb.WriteString("\n")
		rows := s.Expenses
		if max := m.visibleRows(); len(rows) > max {
			rows = rows[:max]
		}
		for _, row := range rows {
			sb.WriteString(fmt.Sprintf("%-24s %-14s %-10s %12s\n",
				clip(row.Name, 24), clip(row.Category, 14), row.Status,
				output.FormatCurrency(row.Recognized)))
		}
		if len(s.Expenses) > len(rows) {
			sb.WriteString(helpStyle.Render(fmt.Sprintf("… %d more", len(s.Expenses)-len(rows))))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("tab/←→ timeframe · / filter · esc clear · q quit"))
	return appStyle.Render(sb.String())
}

func metricRow(label string, amount decimal.Decimal) string {
	return metricLabelStyle.Render(label) +
		metricValueStyle.Render(output.FormatCurrency(amount)) + "\n"
}

func (m Model) visibleRows() int {
	// Leave room for the header block and help line.
	rows := m.height - 16
	if rows < 5 {
		rows = 5
	}
	return rows
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
