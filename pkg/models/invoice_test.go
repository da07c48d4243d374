package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCompany(t *testing.T, id, name string) Company {
	t.Helper()
	billing, err := NewAddress("789 Elm St", "Apt 5B", "Toronto", "ON", "M5A 1A1", "Canada")
	require.NoError(t, err)
	company, err := NewCompany(id, name, billing, nil, "+1-555-123-4567", "billing@"+name+".com", "https://"+name+".com")
	require.NoError(t, err)
	return company
}

func testLineItem(t *testing.T, sku string, qty int, price string) LineItem {
	t.Helper()
	item, err := NewLineItem(sku, "item "+sku, qty, decimal.RequireFromString(price))
	require.NoError(t, err)
	return item
}

func TestNewInvoiceTwoItemScenario(t *testing.T) {
	supplier := testCompany(t, "SUPL1", "supplier")
	customer := testCompany(t, "CUST1", "customer")
	items := []LineItem{
		testLineItem(t, "AAAA1", 2, "100.00"),
		testLineItem(t, "BBBB2", 1, "50.00"),
	}

	inv, err := NewInvoice("INV-1001", supplier, customer, items, WithTaxRate(13))
	require.NoError(t, err)

	assert.True(t, inv.Subtotal.Equal(decimal.RequireFromString("250.00")), "subtotal %s", inv.Subtotal)
	assert.True(t, inv.TaxTotal.Equal(decimal.RequireFromString("32.50")), "tax %s", inv.TaxTotal)
	assert.True(t, inv.Total.Equal(decimal.RequireFromString("282.50")), "total %s", inv.Total)

	assert.Equal(t, "$250.00 CAD", inv.SubtotalFormatted())
	assert.Equal(t, "$32.50 CAD", inv.TaxTotalFormatted())
	assert.Equal(t, "$282.50 CAD", inv.TotalFormatted())
}

func TestNewInvoiceEmptyLineItems(t *testing.T) {
	inv, err := NewInvoice("INV-1002", testCompany(t, "SUPL1", "s"), testCompany(t, "CUST1", "c"), nil)
	require.NoError(t, err)

	assert.True(t, inv.Subtotal.IsZero())
	assert.True(t, inv.TaxTotal.IsZero())
	assert.True(t, inv.Total.IsZero())
}

// total == subtotal + tax and tax == subtotal * rate / 100 must hold for any
// item set and rate.
func TestInvoiceDerivationIdentities(t *testing.T) {
	supplier := testCompany(t, "SUPL1", "s")
	customer := testCompany(t, "CUST1", "c")

	itemSets := [][]LineItem{
		nil,
		{testLineItem(t, "AAAA1", 1, "0.01")},
		{testLineItem(t, "AAAA1", 7, "19.99"), testLineItem(t, "BBBB2", 3, "0.10")},
		{
			testLineItem(t, "AAAA1", 99, "1234.56"),
			testLineItem(t, "BBBB2", 1, "0.01"),
			testLineItem(t, "CCCC3", 10, "10.00"),
		},
	}

	for _, items := range itemSets {
		for _, rate := range []int{0, 5, 13, 15, 100} {
			inv, err := NewInvoice("INV-2000", supplier, customer, items, WithTaxRate(rate))
			require.NoError(t, err)

			wantTax := inv.Subtotal.Mul(decimal.NewFromInt(int64(rate))).Div(decimal.NewFromInt(100))
			assert.True(t, inv.TaxTotal.Equal(wantTax), "rate=%d tax %s want %s", rate, inv.TaxTotal, wantTax)
			assert.True(t, inv.Total.Equal(inv.Subtotal.Add(inv.TaxTotal)),
				"rate=%d total %s != %s + %s", rate, inv.Total, inv.Subtotal, inv.TaxTotal)
		}
	}
}

func TestNewInvoiceIdempotentDerivation(t *testing.T) {
	supplier := testCompany(t, "SUPL1", "s")
	customer := testCompany(t, "CUST1", "c")
	items := []LineItem{testLineItem(t, "AAAA1", 4, "25.25")}
	issued := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	first, err := NewInvoice("INV-3000", supplier, customer, items, WithIssueDate(issued))
	require.NoError(t, err)
	second, err := NewInvoice("INV-3000", supplier, customer, items, WithIssueDate(issued))
	require.NoError(t, err)

	assert.Equal(t, first.Subtotal.String(), second.Subtotal.String())
	assert.Equal(t, first.TaxTotal.String(), second.TaxTotal.String())
	assert.Equal(t, first.Total.String(), second.Total.String())
	assert.Equal(t, first.DueDate, second.DueDate)
}

func TestNewInvoiceDefaults(t *testing.T) {
	before := time.Now()
	inv, err := NewInvoice("INV-4000", testCompany(t, "SUPL1", "s"), testCompany(t, "CUST1", "c"), nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultTaxRate, inv.TaxRate)
	assert.Equal(t, CurrencyCAD, inv.Currency)
	assert.False(t, inv.IssueDate.Before(before))
	assert.Equal(t, inv.IssueDate.AddDate(0, 0, DefaultPaymentTermsDays), inv.DueDate)
}

func TestNewInvoiceExplicitDueDateWins(t *testing.T) {
	issued := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	inv, err := NewInvoice("INV-4100", testCompany(t, "SUPL1", "s"), testCompany(t, "CUST1", "c"), nil,
		WithIssueDate(issued), WithDueDate(due), WithPaymentTerms(60))
	require.NoError(t, err)
	assert.Equal(t, due, inv.DueDate)
}

func TestNewInvoiceAllowsSupplierEqualsCustomer(t *testing.T) {
	// Not forbidden by the model; see DESIGN.md.
	company := testCompany(t, "SAME1", "self")
	_, err := NewInvoice("INV-4200", company, company, nil)
	assert.NoError(t, err)
}

func TestNewInvoiceRejectsBadInput(t *testing.T) {
	supplier := testCompany(t, "SUPL1", "s")
	customer := testCompany(t, "CUST1", "c")

	_, err := NewInvoice("", supplier, customer, nil)
	assert.Error(t, err)

	_, err = NewInvoice("INV-1", supplier, customer, nil, WithTaxRate(-1))
	assert.Error(t, err)

	_, err = NewInvoice("INV-1", supplier, customer, nil, WithCurrency("EUR"))
	assert.Error(t, err)
}

func TestInvoiceOwnsItsLineItems(t *testing.T) {
	items := []LineItem{testLineItem(t, "AAAA1", 2, "100.00")}
	inv, err := NewInvoice("INV-5000", testCompany(t, "SUPL1", "s"), testCompany(t, "CUST1", "c"), items)
	require.NoError(t, err)

	items[0] = testLineItem(t, "ZZZZ9", 1, "1.00")
	assert.Equal(t, "AAAA1", inv.LineItems[0].SKU.String())
	assert.True(t, inv.Subtotal.Equal(decimal.RequireFromString("200.00")))
}
