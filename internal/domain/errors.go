package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvalidPeriodLabelError indicates a fiscal-year label that does not
// parse as "Y/Y+1". Labels are internally generated, so this normally
// points at a caller bug rather than user input.
type InvalidPeriodLabelError struct {
	Label string
}

func (e *InvalidPeriodLabelError) Error() string {
	return fmt.Sprintf("invalid fiscal period label %q", e.Label)
}

// InconsistentExpenseError indicates an expense record that breaks a
// structural invariant (missing billing cycle, missing name/description,
// missing required dates). Such records should be rejected at
// construction time; the engine refuses to compute on them.
type InconsistentExpenseError struct {
	RecordID uuid.UUID
	Reason   string
}

func (e *InconsistentExpenseError) Error() string {
	return fmt.Sprintf("inconsistent expense %s: %s", e.RecordID, e.Reason)
}

// NegativeAmountError indicates a negative value on a monetary field.
type NegativeAmountError struct {
	RecordID uuid.UUID
	Field    string
	Amount   decimal.Decimal
}

func (e *NegativeAmountError) Error() string {
	return fmt.Sprintf("record %s: negative %s %s", e.RecordID, e.Field, e.Amount)
}
