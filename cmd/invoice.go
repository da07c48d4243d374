package cmd

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"invoiceforge/internal/config"
	"invoiceforge/internal/logger"
	"invoiceforge/internal/render"
	"invoiceforge/internal/store"
	"invoiceforge/pkg/models"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Assemble stored records into invoices and render them to files",
	Long: `Generate synthetic invoice documents from companies and line items
already stored in Postgres.

For each invoice, two companies are picked at random as supplier and
customer, together with 1-10 random line items. The invoice totals are
derived from the items and the documents are written into the output
directory, named after the invoice number.

Individual failures are logged and the batch continues; the command fails
only when every invoice fails.`,
	Example: `  # Generate one invoice PDF into ./data
  invoiceforge invoice

  # Generate 25 invoices as both PDF and HTML
  invoiceforge invoice -n 25 -o ./out --format both`,
	RunE: runInvoice,
}

func init() {
	rootCmd.AddCommand(invoiceCmd)

	invoiceCmd.Flags().IntP("num-invoices", "n", 1, "Number of invoices to generate")
	invoiceCmd.Flags().StringP("output-dir", "o", "", "Output directory for document files (default: OUTPUT_DIR or ./data)")
	invoiceCmd.Flags().String("format", "pdf", "Document format: pdf, html or both")
	invoiceCmd.Flags().Int("timeout", 300, "Overall timeout in seconds")
}

func runInvoice(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("invoice")

	count, _ := cmd.Flags().GetInt("num-invoices")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	formatFlag, _ := cmd.Flags().GetString("format")
	timeoutSecs, _ := cmd.Flags().GetInt("timeout")

	format, err := render.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	cfg := config.Load()
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	log.Info().
		Int("count", count).
		Str("output_dir", outputDir).
		Str("format", string(format)).
		Msg("Starting invoice generation")

	ctx, cancel := commandContext(timeoutSecs, log)
	defer cancel()

	s, err := connectStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer s.Close()

	succeeded := 0
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Int("completed", succeeded).Msg("Stopping invoice batch early")
			break
		}

		paths, err := buildAndRenderInvoice(ctx, s, outputDir, format)
		if err != nil {
			log.Error().
				Err(err).
				Int("invoice", i+1).
				Int("total", count).
				Msg("Failed to generate invoice")
			continue
		}

		succeeded++
		for _, path := range paths {
			log.Info().Str("path", path).Msg("Generated invoice document")
		}
	}

	log.Info().
		Int("succeeded", succeeded).
		Int("requested", count).
		Msg("Invoice generation finished")

	return batchOutcome(cmd, succeeded, count, "invoices")
}

func buildAndRenderInvoice(ctx context.Context, s *store.Store, outputDir string, format render.Format) ([]string, error) {
	companies, err := s.RandomCompanies(ctx, 2)
	if err != nil {
		return nil, err
	}
	if len(companies) < 2 {
		return nil, fmt.Errorf("need at least 2 stored companies, have %d (run 'invoiceforge company' first)", len(companies))
	}

	items, err := s.RandomItems(ctx, 1+rand.Intn(10))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no stored invoice items (run 'invoiceforge invoice-item' first)")
	}

	number := fmt.Sprintf("INV-%04d", 1000+rand.Intn(9000))
	invoice, err := models.NewInvoice(number, companies[0], companies[1], items)
	if err != nil {
		return nil, err
	}

	return render.WriteFiles(invoice, outputDir, format)
}
