package render_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoiceforge/internal/render"
	"invoiceforge/pkg/models"
)

func sampleInvoice(t *testing.T, withShipping bool) models.Invoice {
	t.Helper()

	billing, err := models.NewAddress("789 Elm St", "Apt 5B", "Toronto", "ON", "M5A 1A1", "Canada")
	require.NoError(t, err)

	var shipping *models.Address
	if withShipping {
		addr, err := models.NewAddress("12 Dock Rd", "", "Mississauga", "ON", "L5B 3C2", "Canada")
		require.NoError(t, err)
		shipping = &addr
	}

	supplier, err := models.NewCompany("SUPL1", "Northern Components Ltd", billing, nil,
		"+1-416-555-0100", "billing@northern.example", "https://northern.example")
	require.NoError(t, err)

	customer, err := models.NewCompany("CUST1", "Lakeside Retail Inc", billing, shipping,
		"+1-905-555-0170", "ap@lakeside.example", "https://lakeside.example")
	require.NoError(t, err)

	items := []models.LineItem{}
	for _, tc := range []struct {
		sku   string
		qty   int
		price string
	}{
		{"AAAA1", 2, "100.00"},
		{"BBBB2", 1, "50.00"},
	} {
		item, err := models.NewLineItem(tc.sku, "item "+tc.sku, tc.qty, decimal.RequireFromString(tc.price))
		require.NoError(t, err)
		items = append(items, item)
	}

	inv, err := models.NewInvoice("INV-7777", supplier, customer, items,
		WithFixedDates()...)
	require.NoError(t, err)
	return inv
}

// WithFixedDates pins the invoice dates so document output is deterministic.
func WithFixedDates() []models.InvoiceOption {
	issued := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	return []models.InvoiceOption{models.WithIssueDate(issued)}
}

func TestProject(t *testing.T) {
	doc := render.Project(sampleInvoice(t, true))

	assert.Equal(t, "INV-7777", doc.InvoiceNumber)
	assert.Equal(t, "2025-07-15", doc.IssueDate)
	assert.Equal(t, "2025-08-14", doc.DueDate)
	assert.Equal(t, "$250.00 CAD", doc.Subtotal)
	assert.Equal(t, "$32.50 CAD", doc.TaxTotal)
	assert.Equal(t, "$282.50 CAD", doc.Total)
	assert.Equal(t, 13, doc.TaxRate)

	require.Len(t, doc.Items, 2)
	assert.Equal(t, "AAAA1", doc.Items[0].SKU)
	assert.Equal(t, "$100.00", doc.Items[0].UnitPrice)
	assert.Equal(t, "$200.00", doc.Items[0].TotalPrice)

	assert.Contains(t, doc.Customer.BillingLines, "Toronto, ON  M5A 1A1")
	assert.Contains(t, doc.Customer.ShippingLines, "12 Dock Rd")
}

func TestProjectOmitsAbsentShippingAddress(t *testing.T) {
	doc := render.Project(sampleInvoice(t, false))

	assert.Empty(t, doc.Customer.ShippingLines)
	assert.Empty(t, doc.Supplier.ShippingLines)
}

func TestHTML(t *testing.T) {
	out, err := render.HTML(sampleInvoice(t, true))
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "INV-7777")
	assert.Contains(t, html, "$282.50 CAD")
	assert.Contains(t, html, "Ship To")
	assert.Contains(t, html, "Northern Components Ltd")
}

func TestHTMLWithoutShippingOmitsShipTo(t *testing.T) {
	out, err := render.HTML(sampleInvoice(t, false))
	require.NoError(t, err)
	assert.NotContains(t, string(out), "Ship To")
}

func TestPDF(t *testing.T) {
	out, err := render.PDF(sampleInvoice(t, true))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"), "output is not a PDF")
	assert.Greater(t, len(out), 1000)
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	inv := sampleInvoice(t, true)

	paths, err := render.WriteFiles(inv, dir, render.FormatBoth)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	assert.Equal(t, filepath.Join(dir, "INV-7777.pdf"), paths[0])
	assert.Equal(t, filepath.Join(dir, "INV-7777.html"), paths[1])
	for _, path := range paths {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestParseFormat(t *testing.T) {
	for _, ok := range []string{"pdf", "html", "both"} {
		_, err := render.ParseFormat(ok)
		assert.NoError(t, err)
	}
	_, err := render.ParseFormat("docx")
	assert.Error(t, err)
}
