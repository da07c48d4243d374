package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Default invoice terms applied when no option overrides them.
const (
	DefaultTaxRate          = 13
	DefaultPaymentTermsDays = 30
)

var oneHundred = decimal.NewFromInt(100)

// Invoice composes a supplier, a customer and an ordered sequence of line
// items. Subtotal, TaxTotal and Total are derived atomically at construction
// from the line items and tax rate; no derived field is ever set on its own.
//
// The invoice owns its line items and references the supplier and customer;
// Company values may be reused across many invoices. A supplier may equal the
// customer; the model does not forbid it.
type Invoice struct {
	Number    string
	IssueDate time.Time
	DueDate   time.Time
	Supplier  Company
	Customer  Company
	LineItems []LineItem
	TaxRate   int
	Currency  Currency

	Subtotal decimal.Decimal
	TaxTotal decimal.Decimal
	Total    decimal.Decimal
}

// InvoiceOption overrides an invoice default.
type InvoiceOption func(*invoiceSettings)

type invoiceSettings struct {
	taxRate          int
	currency         Currency
	issueDate        time.Time
	dueDate          time.Time
	paymentTermsDays int
}

// WithTaxRate sets the tax rate as an integer percentage.
func WithTaxRate(rate int) InvoiceOption {
	return func(s *invoiceSettings) { s.taxRate = rate }
}

// WithCurrency sets the invoice currency.
func WithCurrency(currency Currency) InvoiceOption {
	return func(s *invoiceSettings) { s.currency = currency }
}

// WithIssueDate sets the issue date instead of the construction time.
func WithIssueDate(t time.Time) InvoiceOption {
	return func(s *invoiceSettings) { s.issueDate = t }
}

// WithDueDate sets an explicit due date, bypassing the payment terms.
func WithDueDate(t time.Time) InvoiceOption {
	return func(s *invoiceSettings) { s.dueDate = t }
}

// WithPaymentTerms sets the number of days after the issue date at which the
// invoice falls due.
func WithPaymentTerms(days int) InvoiceOption {
	return func(s *invoiceSettings) { s.paymentTermsDays = days }
}

// NewInvoice validates the inputs and constructs an Invoice with its derived
// monetary fields. The supplier, customer and line items must already be
// valid; construction is single-phase and an invoice is never partially
// built. Defaults: tax rate 13%, currency CAD, issue date now, due date
// issue date + 30 days.
func NewInvoice(number string, supplier, customer Company, items []LineItem, opts ...InvoiceOption) (Invoice, error) {
	if number == "" {
		return Invoice{}, NewValidationError("invoice_number", number, "invoice number is required")
	}

	settings := invoiceSettings{
		taxRate:          DefaultTaxRate,
		currency:         CurrencyCAD,
		paymentTermsDays: DefaultPaymentTermsDays,
	}
	for _, opt := range opts {
		opt(&settings)
	}

	if settings.taxRate < 0 {
		return Invoice{}, NewValidationError("tax_rate", settings.taxRate, "must be non-negative")
	}
	if _, err := NewCurrency(string(settings.currency)); err != nil {
		return Invoice{}, err
	}
	if settings.issueDate.IsZero() {
		settings.issueDate = time.Now()
	}
	if settings.dueDate.IsZero() {
		settings.dueDate = settings.issueDate.AddDate(0, 0, settings.paymentTermsDays)
	}

	// The invoice owns its items; copy so later caller mutations of the
	// slice cannot desync the derived fields.
	lineItems := make([]LineItem, len(items))
	copy(lineItems, items)

	subtotal, taxTotal, total := deriveTotals(lineItems, settings.taxRate)

	return Invoice{
		Number:    number,
		IssueDate: settings.issueDate,
		DueDate:   settings.dueDate,
		Supplier:  supplier,
		Customer:  customer,
		LineItems: lineItems,
		TaxRate:   settings.taxRate,
		Currency:  settings.currency,
		Subtotal:  subtotal,
		TaxTotal:  taxTotal,
		Total:     total,
	}, nil
}

// deriveTotals computes the three derived monetary fields as one unit:
// subtotal is the sum of the item totals, tax is subtotal * rate / 100, and
// total is their sum.
func deriveTotals(items []LineItem, taxRate int) (subtotal, taxTotal, total decimal.Decimal) {
	for _, item := range items {
		subtotal = subtotal.Add(item.TotalPrice)
	}
	taxTotal = subtotal.Mul(decimal.NewFromInt(int64(taxRate))).Div(oneHundred)
	total = subtotal.Add(taxTotal)
	return subtotal, taxTotal, total
}

// SubtotalFormatted renders the subtotal with the currency code appended.
func (inv Invoice) SubtotalFormatted() string {
	return FormatAmountCurrency(inv.Subtotal, inv.Currency)
}

// TaxTotalFormatted renders the tax total with the currency code appended.
func (inv Invoice) TaxTotalFormatted() string {
	return FormatAmountCurrency(inv.TaxTotal, inv.Currency)
}

// TotalFormatted renders the grand total with the currency code appended.
func (inv Invoice) TotalFormatted() string {
	return FormatAmountCurrency(inv.Total, inv.Currency)
}
