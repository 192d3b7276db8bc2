package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle state of an invoice. Status
// transitions happen outside this engine; only paid invoices count
// toward revenue and tax.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// Invoice is a read-only revenue record. Amount is in the base currency.
type Invoice struct {
	ID        uuid.UUID       `yaml:"id" json:"id"`
	Reference string          `yaml:"reference" json:"reference"`
	IssueDate time.Time       `yaml:"issue_date" json:"issueDate"`
	Amount    decimal.Decimal `yaml:"amount" json:"amount"`
	Status    InvoiceStatus   `yaml:"status" json:"status"`
}

// Validate checks the monetary invariants of an invoice.
func (inv *Invoice) Validate() error {
	if inv.Amount.IsNegative() {
		return &NegativeAmountError{RecordID: inv.ID, Field: "amount", Amount: inv.Amount}
	}
	return nil
}

// ExpenseType distinguishes one-off expenses from recurring subscriptions.
type ExpenseType string

const (
	ExpenseManual       ExpenseType = "manual"
	ExpenseSubscription ExpenseType = "subscription"
)

// BillingCycle is the recurrence interval of a subscription expense.
type BillingCycle string

const (
	BillingMonthly  BillingCycle = "monthly"
	BillingAnnually BillingCycle = "annually"
)

// ExpenseStatus is the derived display state of an expense. It is a pure
// function of the record's dates and type (see calculation.DeriveStatus)
// and is never used in financial math.
type ExpenseStatus string

const (
	ExpenseUpcoming  ExpenseStatus = "upcoming"
	ExpenseCompleted ExpenseStatus = "completed"
	ExpenseActive    ExpenseStatus = "active"
	ExpenseInactive  ExpenseStatus = "inactive"
)

// Expense is a cost record. AmountBase is the amount in the base currency
// and is the only amount the engine sums; Amount/Currency are kept for
// display. For manual expenses StartDate is the expense date; for
// subscriptions it is the first billing date and EndDate, when present,
// is the last date on which an occurrence may bill.
type Expense struct {
	ID           uuid.UUID       `yaml:"id" json:"id"`
	Name         string          `yaml:"name" json:"name"`
	Description  string          `yaml:"description" json:"description"`
	Category     string          `yaml:"category" json:"category"`
	Amount       decimal.Decimal `yaml:"amount" json:"amount"`
	AmountBase   decimal.Decimal `yaml:"amount_gbp" json:"amountGbp"`
	Currency     string          `yaml:"currency" json:"currency"`
	StartDate    time.Time       `yaml:"start_date" json:"startDate"`
	EndDate      *time.Time      `yaml:"end_date,omitempty" json:"endDate,omitempty"`
	Type         ExpenseType     `yaml:"type" json:"type"`
	BillingCycle BillingCycle    `yaml:"billing_cycle,omitempty" json:"billingCycle,omitempty"`
}

// DisplayName returns the name, falling back to the description.
func (e *Expense) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Description
}

// Validate checks the structural invariants of an expense record. These
// should hold by construction; the engine still refuses to compute on
// records that break them rather than producing silently wrong totals.
func (e *Expense) Validate() error {
	if strings.TrimSpace(e.Name) == "" && strings.TrimSpace(e.Description) == "" {
		return &InconsistentExpenseError{RecordID: e.ID, Reason: "neither name nor description present"}
	}
	if e.StartDate.IsZero() {
		return &InconsistentExpenseError{RecordID: e.ID, Reason: "start date is required"}
	}
	switch e.Type {
	case ExpenseManual:
		if e.BillingCycle != "" {
			return &InconsistentExpenseError{RecordID: e.ID, Reason: "billing cycle set on manual expense"}
		}
	case ExpenseSubscription:
		if e.BillingCycle != BillingMonthly && e.BillingCycle != BillingAnnually {
			return &InconsistentExpenseError{RecordID: e.ID, Reason: "subscription missing billing cycle"}
		}
	default:
		return &InconsistentExpenseError{RecordID: e.ID, Reason: "unknown expense type " + string(e.Type)}
	}
	if e.Amount.IsNegative() {
		return &NegativeAmountError{RecordID: e.ID, Field: "amount", Amount: e.Amount}
	}
	if e.AmountBase.IsNegative() {
		return &NegativeAmountError{RecordID: e.ID, Field: "amount_gbp", Amount: e.AmountBase}
	}
	return nil
}
