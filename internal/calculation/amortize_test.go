package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hmillward/taxfolio/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func window(start, end time.Time) domain.FiscalWindow {
	return domain.FiscalWindow{Start: start, End: end}
}

func TestAmortizeSubscription(t *testing.T) {
	amount := decimal.NewFromInt(10)
	end := date(2023, time.June, 15)

	tests := []struct {
		name     string
		start    time.Time
		end      *time.Time
		cycle    domain.BillingCycle
		window   domain.FiscalWindow
		expected int64
	}{
		{
			name:     "monthly open-ended over a quarter",
			start:    date(2023, time.January, 15),
			cycle:    domain.BillingMonthly,
			window:   window(date(2023, time.January, 1), date(2023, time.March, 31)),
			expected: 30, // Jan 15, Feb 15, Mar 15
		},
		{
			name:     "monthly open-ended over one month",
			start:    date(2023, time.January, 15),
			cycle:    domain.BillingMonthly,
			window:   window(date(2023, time.February, 1), date(2023, time.February, 28)),
			expected: 10,
		},
		{
			name:     "window starts mid-cycle",
			start:    date(2023, time.January, 15),
			cycle:    domain.BillingMonthly,
			window:   window(date(2023, time.January, 16), date(2023, time.February, 28)),
			expected: 10, // only Feb 15
		},
		{
			name:     "end date truncates occurrences",
			start:    date(2023, time.January, 15),
			end:      &end,
			cycle:    domain.BillingMonthly,
			window:   window(date(2023, time.January, 1), date(2023, time.December, 31)),
			expected: 60, // Jan through Jun
		},
		{
			name:     "annual cycle",
			start:    date(2021, time.March, 1),
			cycle:    domain.BillingAnnually,
			window:   window(date(2021, time.January, 1), date(2023, time.December, 31)),
			expected: 30, // 2021, 2022, 2023
		},
		{
			name:     "annual cycle window between occurrences",
			start:    date(2021, time.March, 1),
			cycle:    domain.BillingAnnually,
			window:   window(date(2022, time.April, 1), date(2023, time.February, 28)),
			expected: 0,
		},
		{
			name:     "subscription starts after window",
			start:    date(2024, time.January, 1),
			cycle:    domain.BillingMonthly,
			window:   window(date(2023, time.January, 1), date(2023, time.December, 31)),
			expected: 0,
		},
		{
			name:     "subscription ended before window",
			start:    date(2022, time.January, 1),
			end:      timePtr(date(2022, time.June, 1)),
			cycle:    domain.BillingMonthly,
			window:   window(date(2023, time.January, 1), date(2023, time.December, 31)),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AmortizeSubscription(tt.start, tt.end, tt.cycle, amount, tt.window)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.expected)),
				"expected %d, got %s", tt.expected, got)
		})
	}
}

func TestAmortizeBillingDayAnchored(t *testing.T) {
	// A subscription billed on the 31st keeps its anchor through shorter
	// months instead of drifting: the February occurrence normalises
	// forward but March is back on the 31st.
	amount := decimal.NewFromInt(5)
	w := window(date(2023, time.March, 30), date(2023, time.March, 31))
	got := AmortizeSubscription(date(2023, time.January, 31), nil, domain.BillingMonthly, amount, w)
	assert.True(t, got.Equal(amount), "March occurrence should land on the 31st, got %s", got)
}

func TestAmortizeOpenEndedIsBounded(t *testing.T) {
	// A subscription running since 1990 with no end date must terminate
	// as soon as occurrences pass the window end.
	amount := decimal.NewFromInt(1)
	w := window(date(2023, time.January, 1), date(2023, time.January, 31))
	got := AmortizeSubscription(date(1990, time.January, 10), nil, domain.BillingMonthly, amount, w)
	assert.True(t, got.Equal(decimal.NewFromInt(1)))
}

func timePtr(t time.Time) *time.Time { return &t }
