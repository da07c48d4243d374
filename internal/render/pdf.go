package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"invoiceforge/pkg/models"
)

// PDF renders the invoice as an A4 portrait PDF document.
func PDF(inv models.Invoice) ([]byte, error) {
	doc := Project(inv)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(190, 10, "INVOICE "+doc.InvoiceNumber, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(190, 6, "Issue date: "+doc.IssueDate, "", 1, "L", false, 0, "")
	pdf.CellFormat(190, 6, "Due date: "+doc.DueDate, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Party blocks side by side
	top := pdf.GetY()
	writeParty(pdf, 10, top, "Supplier", doc.Supplier)
	supplierBottom := pdf.GetY()
	writeParty(pdf, 110, top, "Bill To", doc.Customer)
	if supplierBottom > pdf.GetY() {
		pdf.SetY(supplierBottom)
	}
	pdf.Ln(6)

	// Item table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(25, 7, "SKU", "1", 0, "C", true, 0, "")
	pdf.CellFormat(85, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(15, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(32, 7, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(33, 7, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range doc.Items {
		info := item.Info
		if len(info) > 48 {
			info = info[:45] + "..."
		}
		pdf.CellFormat(25, 6, item.SKU, "1", 0, "C", false, 0, "")
		pdf.CellFormat(85, 6, info, "1", 0, "L", false, 0, "")
		pdf.CellFormat(15, 6, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(32, 6, item.UnitPrice, "1", 0, "R", false, 0, "")
		pdf.CellFormat(33, 6, item.TotalPrice, "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Totals block
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(125, 7, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(32, 7, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(33, 7, doc.Subtotal, "", 1, "R", false, 0, "")
	pdf.CellFormat(125, 7, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(32, 7, fmt.Sprintf("Tax (%d%%)", doc.TaxRate), "", 0, "R", false, 0, "")
	pdf.CellFormat(33, 7, doc.TaxTotal, "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(125, 8, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(32, 8, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(33, 8, doc.Total, "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, newRenderError("PDF", err)
	}
	return buf.Bytes(), nil
}

func writeParty(pdf *gofpdf.Fpdf, left, top float64, title string, party PartyBlock) {
	pdf.SetXY(left, top)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 6, title, "", 2, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(90, 5, fmt.Sprintf("%s (%s)", party.Name, party.CompanyID), "", 2, "L", false, 0, "")
	for _, line := range party.BillingLines {
		pdf.CellFormat(90, 5, line, "", 2, "L", false, 0, "")
	}
	if len(party.ShippingLines) > 0 {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(90, 5, "Ship to:", "", 2, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, line := range party.ShippingLines {
			pdf.CellFormat(90, 5, line, "", 2, "L", false, 0, "")
		}
	}
	for _, line := range []string{party.Phone, party.Email, party.Website} {
		if line != "" {
			pdf.CellFormat(90, 5, line, "", 2, "L", false, 0, "")
		}
	}
}
