package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is the invoice currency code.
type Currency string

const (
	CurrencyCAD Currency = "CAD"
	CurrencyUSD Currency = "USD"
)

// NewCurrency validates a currency code.
func NewCurrency(code string) (Currency, error) {
	switch Currency(code) {
	case CurrencyCAD, CurrencyUSD:
		return Currency(code), nil
	}
	return "", NewValidationError("currency", code, "must be CAD or USD")
}

// FormatAmount renders a monetary amount as "$X,XXX.XX" with a comma
// thousands separator and exactly two decimal places.
func FormatAmount(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	var b strings.Builder
	if strings.HasPrefix(fixed, "-") {
		b.WriteByte('-')
		fixed = fixed[1:]
	}
	b.WriteByte('$')

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// FormatAmountCurrency renders an amount with its currency code appended,
// e.g. "$1,234.56 CAD".
func FormatAmountCurrency(amount decimal.Decimal, currency Currency) string {
	return FormatAmount(amount) + " " + string(currency)
}
