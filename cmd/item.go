package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"invoiceforge/internal/config"
	"invoiceforge/internal/logger"
	"invoiceforge/internal/store"
)

var itemCmd = &cobra.Command{
	Use:     "invoice-item",
	Aliases: []string{"item"},
	Short:   "Create synthetic invoice line items and store them in Postgres",
	Long: `Generate synthetic computer equipment line items with an OpenAI
completion model and insert them into the store.

Existing SKUs are passed to the model as an advisory exclusion list; a
generated SKU that still collides is reported as a conflict and skipped.
Individual failures are logged and the batch continues.`,
	Example: `  # Create five invoice items
  invoiceforge invoice-item

  # Create twenty invoice items
  invoiceforge invoice-item -n 20`,
	RunE: runItem,
}

func init() {
	rootCmd.AddCommand(itemCmd)

	itemCmd.Flags().IntP("num-items", "n", 5, "Number of invoice items to create")
	itemCmd.Flags().Int("timeout", 300, "Overall timeout in seconds")
}

func runItem(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("invoice-item")

	count, _ := cmd.Flags().GetInt("num-items")
	timeoutSecs, _ := cmd.Flags().GetInt("timeout")

	cfg := config.Load()

	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(timeoutSecs, log)
	defer cancel()

	s, err := connectStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer s.Close()

	exclude, err := s.ItemSKUs(ctx)
	if err != nil {
		return err
	}

	log.Info().
		Int("count", count).
		Int("existing", len(exclude)).
		Msg("Starting invoice item generation")

	items, err := gen.LineItems(ctx, count, exclude)
	if err != nil {
		log.Error().Err(err).Msg("Invoice item generation failed")
		return err
	}

	succeeded := 0
	for _, item := range items {
		if _, err := s.InsertItem(ctx, item); err != nil {
			if errors.Is(err, store.ErrConflict) {
				log.Warn().
					Str("item_sku", item.SKU.String()).
					Msg("Skipping duplicate invoice item")
			} else {
				log.Error().
					Err(err).
					Str("item_sku", item.SKU.String()).
					Msg("Failed to store invoice item")
			}
			continue
		}
		succeeded++
	}

	log.Info().
		Int("stored", succeeded).
		Int("generated", len(items)).
		Int("requested", count).
		Msg("Invoice item generation finished")

	return batchOutcome(cmd, succeeded, len(items), "invoice items")
}
