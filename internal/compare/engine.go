package compare

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hmillward/taxfolio/internal/calculation"
	"github.com/hmillward/taxfolio/internal/domain"
	"github.com/hmillward/taxfolio/internal/fiscal"
)

// WindowSpec names a reporting window for comparison output.
type WindowSpec struct {
	Name   string
	Window domain.FiscalWindow
}

// Result pairs a window with its computed summary.
type Result struct {
	Name    string
	Summary *domain.PeriodSummary
	Err     error
}

// CompareEngine aggregates the same record snapshot over several windows.
type CompareEngine struct {
	Engine *calculation.Engine
}

// NewCompareEngine creates a comparison engine around an aggregator.
func NewCompareEngine(engine *calculation.Engine) *CompareEngine {
	return &CompareEngine{Engine: engine}
}

// Compare aggregates every window. The windows are computed concurrently:
// the aggregation engine is a pure function of its inputs, so no
// coordination beyond the WaitGroup is needed. Results come back in
// argument order.
func (ce *CompareEngine) Compare(invoices []domain.Invoice, expenses []domain.Expense, specs []WindowSpec, filter string) []Result {
	results := make([]Result, len(specs))
	var wg sync.WaitGroup
	for i, spec := range specs {
		wg.Add(1)
		go func(i int, spec WindowSpec) {
			defer wg.Done()
			summary, err := ce.Engine.Aggregate(invoices, expenses, spec.Window, filter)
			results[i] = Result{Name: spec.Name, Summary: summary, Err: err}
		}(i, spec)
	}
	wg.Wait()
	return results
}

// ResolveWindowSpec parses a window argument into a spec. Accepted forms:
// a fiscal-year label ("2023/2024"), "this-fy", "last-fy", "mtd", or
// "trailing:N" for the last N days.
func ResolveWindowSpec(cal fiscal.Calendar, arg string, now time.Time) (WindowSpec, error) {
	switch {
	case arg == "this-fy":
		return WindowSpec{Name: "FY " + cal.FiscalYearOf(now), Window: cal.ThisFiscalYear(now)}, nil
	case arg == "last-fy":
		w := cal.LastFiscalYear(now)
		return WindowSpec{Name: "FY " + cal.FiscalYearOf(w.Start), Window: w}, nil
	case arg == "mtd":
		return WindowSpec{Name: "Month to date", Window: fiscal.MonthToDate(now)}, nil
	case strings.HasPrefix(arg, "trailing:"):
		n, err := strconv.Atoi(strings.TrimPrefix(arg, "trailing:"))
		if err != nil || n < 1 {
			return WindowSpec{}, fmt.Errorf("invalid trailing window %q", arg)
		}
		return WindowSpec{Name: fmt.Sprintf("Trailing %d days", n), Window: fiscal.TrailingDays(now, n)}, nil
	default:
		w, err := cal.BoundsOf(arg)
		if err != nil {
			return WindowSpec{}, err
		}
		return WindowSpec{Name: "FY " + arg, Window: w}, nil
	}
}
