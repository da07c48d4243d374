package render

import (
	"fmt"
	"os"
	"path/filepath"

	"invoiceforge/pkg/models"
)

// Format selects the document file types WriteFiles produces.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
	FormatBoth Format = "both"
)

// ParseFormat validates a format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPDF, FormatHTML, FormatBoth:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q (expected pdf, html or both)", s)
}

// WriteFiles renders the invoice and writes the documents into dir, named
// deterministically from the invoice number. It returns the written paths.
func WriteFiles(inv models.Invoice, dir string, format Format) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var paths []string

	if format == FormatPDF || format == FormatBoth {
		data, err := PDF(inv)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, inv.Number+".pdf")
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	if format == FormatHTML || format == FormatBoth {
		data, err := HTML(inv)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, inv.Number+".html")
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}
