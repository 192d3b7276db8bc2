package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hmillward/taxfolio/internal/calculation"
	"github.com/hmillward/taxfolio/internal/compare"
	"github.com/hmillward/taxfolio/internal/config"
	"github.com/hmillward/taxfolio/internal/domain"
	"github.com/hmillward/taxfolio/internal/fiscal"
)

// timeframe is one of the preset reporting windows the dashboard cycles
// through.
type timeframe int

const (
	timeframeThisFY timeframe = iota
	timeframeLastFY
	timeframeMonthToDate
	timeframeTrailing30
	timeframeTrailing7
	timeframeCount
)

func (tf timeframe) spec(cal fiscal.Calendar, now time.Time) compare.WindowSpec {
	switch tf {
	case timeframeLastFY:
		w := cal.LastFiscalYear(now)
		return compare.WindowSpec{Name: "FY " + cal.FiscalYearOf(w.Start), Window: w}
	case timeframeMonthToDate:
		return compare.WindowSpec{Name: "Month to date", Window: fiscal.MonthToDate(now)}
	case timeframeTrailing30:
		return compare.WindowSpec{Name: "Trailing 30 days", Window: fiscal.TrailingDays(now, 30)}
	case timeframeTrailing7:
		return compare.WindowSpec{Name: "Trailing 7 days", Window: fiscal.TrailingDays(now, 7)}
	default:
		return compare.WindowSpec{Name: "FY " + cal.FiscalYearOf(now), Window: cal.ThisFiscalYear(now)}
	}
}

// Model is the dashboard state: the record snapshot, the selected
// timeframe and filter, and the summary recomputed from them. Everything
// on screen derives from a single Aggregate call; nothing is cached
// across changes.
type Model struct {
	width  int
	height int

	books  *config.Books
	engine *calculation.Engine
	now    time.Time

	frame     timeframe
	filter    textinput.Model
	filtering bool

	summary *domain.PeriodSummary
	err     error
}

// NewModel creates the dashboard model around a loaded books file.
func NewModel(books *config.Books, opts config.Options) Model {
	engine := calculation.NewEngine(books.Bands(), books.BaselineIncome)
	engine.Anchor = calculation.TaxAnchor(opts.TaxAnchor)
	engine.SkipInvalid = opts.SkipInvalid

	filter := textinput.New()
	filter.Placeholder = "filter expenses"
	filter.CharLimit = 48
	filter.Width = 24
	filter.Prompt = "/ "

	m := Model{
		books:  books,
		engine: engine,
		now:    time.Now(),
		filter: filter,
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) recompute() {
	spec := m.frame.spec(m.engine.Calendar, m.now)
	summary, err := m.engine.Aggregate(m.books.Invoices, m.books.Expenses, spec.Window, m.filter.Value())
	m.summary = summary
	m.err = err
}

func (m Model) frameName() string {
	return m.frame.spec(m.engine.Calendar, m.now).Name
}
