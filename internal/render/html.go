package render

import (
	"bytes"
	"embed"
	"html/template"

	"invoiceforge/pkg/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// HTML renders the invoice as a standalone HTML document.
func HTML(inv models.Invoice) ([]byte, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/invoice.html.tmpl")
	if err != nil {
		return nil, newRenderError("HTML", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, Project(inv)); err != nil {
		return nil, newRenderError("HTML", err)
	}
	return buf.Bytes(), nil
}
