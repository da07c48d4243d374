// Package render projects a validated invoice into presentation documents.
//
// Projection is read-only: the invoice aggregate is never mutated and all
// business values reach the templates pre-formatted (dates as YYYY-MM-DD,
// money through the models formatting helpers). An absent shipping address
// is omitted from the output, never fabricated from the billing address.
package render

import "invoiceforge/pkg/models"

// dateLayout is the document date format.
const dateLayout = "2006-01-02"

// Document is the flat, template-ready projection of an invoice.
type Document struct {
	InvoiceNumber string
	IssueDate     string
	DueDate       string
	Supplier      PartyBlock
	Customer      PartyBlock
	Items         []ItemRow
	TaxRate       int
	Currency      string
	Subtotal      string
	TaxTotal      string
	Total         string
}

// PartyBlock is the rendered view of a company on the document.
type PartyBlock struct {
	CompanyID     string
	Name          string
	BillingLines  []string
	ShippingLines []string // empty when the company has no shipping address
	Phone         string
	Email         string
	Website       string
}

// ItemRow is the rendered view of one line item.
type ItemRow struct {
	SKU        string
	Info       string
	Quantity   int
	UnitPrice  string
	TotalPrice string
}

// Project maps an invoice and its nested parties and items into a Document.
func Project(inv models.Invoice) Document {
	items := make([]ItemRow, 0, len(inv.LineItems))
	for _, item := range inv.LineItems {
		items = append(items, ItemRow{
			SKU:        item.SKU.String(),
			Info:       item.Info,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPriceFormatted(),
			TotalPrice: item.TotalPriceFormatted(),
		})
	}

	return Document{
		InvoiceNumber: inv.Number,
		IssueDate:     inv.IssueDate.Format(dateLayout),
		DueDate:       inv.DueDate.Format(dateLayout),
		Supplier:      projectParty(inv.Supplier),
		Customer:      projectParty(inv.Customer),
		Items:         items,
		TaxRate:       inv.TaxRate,
		Currency:      string(inv.Currency),
		Subtotal:      inv.SubtotalFormatted(),
		TaxTotal:      inv.TaxTotalFormatted(),
		Total:         inv.TotalFormatted(),
	}
}

func projectParty(company models.Company) PartyBlock {
	block := PartyBlock{
		CompanyID:    company.ID.String(),
		Name:         company.Name,
		BillingLines: addressLines(company.BillingAddress),
		Phone:        company.PhoneNumber,
		Email:        company.Email,
		Website:      company.Website,
	}
	if company.ShippingAddress != nil {
		block.ShippingLines = addressLines(*company.ShippingAddress)
	}
	return block
}

func addressLines(addr models.Address) []string {
	lines := []string{addr.Line1}
	if addr.Line2 != "" {
		lines = append(lines, addr.Line2)
	}
	lines = append(lines, addr.City+", "+addr.Province+"  "+addr.PostalCode, addr.Country)
	return lines
}
