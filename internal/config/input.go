package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/hmillward/taxfolio/internal/domain"
)

// Books is the parsed contents of a books file: the record snapshot the
// engine aggregates plus the assumptions it needs. The engine itself
// never reads files; everything is loaded up front here.
type Books struct {
	// BaselineIncome is yearly non-freelance income (salary etc.) that
	// already occupies the lower tax bands.
	BaselineIncome decimal.Decimal `yaml:"baseline_income"`

	// TaxBands overrides the default UK tables when present.
	TaxBands *domain.TaxBands `yaml:"tax_bands,omitempty"`

	Invoices []domain.Invoice `yaml:"invoices"`
	Expenses []domain.Expense `yaml:"expenses"`
}

// Bands returns the configured band tables, falling back to the UK
// defaults.
func (b *Books) Bands() domain.TaxBands {
	if b.TaxBands != nil {
		return *b.TaxBands
	}
	return domain.DefaultUKTaxBands()
}

// InputParser handles parsing of books files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a books file.
func (ip *InputParser) LoadFromFile(filename string) (*Books, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse unmarshals and validates a books document.
func (ip *InputParser) Parse(data []byte) (*Books, error) {
	var books Books
	if err := yaml.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.validate(&books); err != nil {
		return nil, fmt.Errorf("books validation failed: %w", err)
	}
	return &books, nil
}

func (ip *InputParser) validate(books *Books) error {
	if books.BaselineIncome.IsNegative() {
		return &domain.NegativeAmountError{Field: "baseline_income", Amount: books.BaselineIncome}
	}
	for i := range books.Invoices {
		inv := &books.Invoices[i]
		if inv.ID == uuid.Nil {
			inv.ID = uuid.New()
		}
		if err := ip.validateInvoice(inv); err != nil {
			return fmt.Errorf("invoice %d: %w", i, err)
		}
	}
	for i := range books.Expenses {
		exp := &books.Expenses[i]
		if exp.ID == uuid.Nil {
			exp.ID = uuid.New()
		}
		if err := exp.Validate(); err != nil {
			return fmt.Errorf("expense %d: %w", i, err)
		}
	}
	if books.TaxBands != nil {
		if err := ip.validateBands("income_tax", books.TaxBands.IncomeTax); err != nil {
			return err
		}
		if err := ip.validateBands("social_contribution", books.TaxBands.SocialContribution); err != nil {
			return err
		}
	}
	return nil
}

func (ip *InputParser) validateInvoice(inv *domain.Invoice) error {
	if err := inv.Validate(); err != nil {
		return err
	}
	if inv.IssueDate.IsZero() {
		return fmt.Errorf("issue date is required")
	}
	switch inv.Status {
	case domain.InvoiceDraft, domain.InvoiceSent, domain.InvoicePaid, domain.InvoiceOverdue:
		return nil
	default:
		return fmt.Errorf("unknown invoice status %q", inv.Status)
	}
}

func (ip *InputParser) validateBands(table string, bands []domain.RateBand) error {
	if len(bands) == 0 {
		return fmt.Errorf("%s: at least one band is required", table)
	}
	for i, band := range bands {
		if band.Rate.IsNegative() {
			return fmt.Errorf("%s band %d: negative rate", table, i)
		}
		if band.Ceiling.LessThanOrEqual(band.Floor) {
			return fmt.Errorf("%s band %d: ceiling must exceed floor", table, i)
		}
		if i > 0 && !band.Floor.Equal(bands[i-1].Ceiling) {
			return fmt.Errorf("%s band %d: floor must meet previous ceiling", table, i)
		}
	}
	return nil
}
