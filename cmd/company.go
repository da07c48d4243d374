package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"invoiceforge/internal/config"
	"invoiceforge/internal/logger"
	"invoiceforge/internal/store"
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Create synthetic companies and store them in Postgres",
	Long: `Generate synthetic companies with an OpenAI completion model and
insert them into the store.

Existing company IDs are passed to the model as an advisory exclusion list;
a generated ID that still collides is reported as a conflict and skipped.
Individual failures are logged and the batch continues.`,
	Example: `  # Create one company
  invoiceforge company

  # Create ten companies
  invoiceforge company -n 10`,
	RunE: runCompany,
}

func init() {
	rootCmd.AddCommand(companyCmd)

	companyCmd.Flags().IntP("num-companies", "n", 1, "Number of companies to create")
	companyCmd.Flags().Int("timeout", 300, "Overall timeout in seconds")
}

func runCompany(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("company")

	count, _ := cmd.Flags().GetInt("num-companies")
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

	exclude, err := s.CompanyIDs(ctx)
	if err != nil {
		return err
	}

	log.Info().
		Int("count", count).
		Int("existing", len(exclude)).
		Msg("Starting company generation")

	companies, err := gen.Companies(ctx, count, exclude)
	if err != nil {
		log.Error().Err(err).Msg("Company generation failed")
		return err
	}

	succeeded := 0
	for _, company := range companies {
		if _, err := s.InsertCompany(ctx, company); err != nil {
			if errors.Is(err, store.ErrConflict) {
				log.Warn().
					Str("company_id", company.ID.String()).
					Msg("Skipping duplicate company")
			} else {
				log.Error().
					Err(err).
					Str("company_id", company.ID.String()).
					Msg("Failed to store company")
			}
			continue
		}
		succeeded++
	}

	log.Info().
		Int("stored", succeeded).
		Int("generated", len(companies)).
		Int("requested", count).
		Msg("Company generation finished")

	return batchOutcome(cmd, succeeded, len(companies), "companies")
}
