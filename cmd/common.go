package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"

	"invoiceforge/internal/config"
	"invoiceforge/internal/generate"
	"invoiceforge/internal/store"
)

// commandContext creates a context with a timeout that is also canceled on
// SIGINT/SIGTERM so a batch can stop cleanly mid-run.
func commandContext(timeoutSecs int, log zerolog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSecs)*time.Second)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			log.Info().
				Str("signal", sig.String()).
				Msg("Received interrupt signal, canceling")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// connectStore opens the Postgres pool and ensures the schema exists.
func connectStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*store.Store, error) {
	s, err := store.Connect(ctx, cfg.StoreConfig())
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to Postgres")
		return nil, fmt.Errorf("failed to connect to Postgres (check POSTGRES_* environment variables): %w", err)
	}
	if err := s.EnsureSchema(ctx); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// newGenerator builds the generation service, requiring an API key.
func newGenerator(cfg *config.Config) (*generate.Service, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required for generation commands")
	}
	client := openai.NewClient(cfg.OpenAIAPIKey)
	return generate.New(client, cfg.OpenAIModel), nil
}

// batchOutcome applies best-effort batch semantics: individual failures are
// logged and skipped, and the command fails only when nothing succeeded.
func batchOutcome(cmd *cobra.Command, succeeded, attempted int, what string) error {
	if succeeded == 0 && attempted > 0 {
		return fmt.Errorf("all %d %s failed", attempted, what)
	}
	if succeeded < attempted {
		fmt.Fprintf(cmd.OutOrStdout(), "Completed %d/%d %s (failures logged above)\n", succeeded, attempted, what)
	}
	return nil
}
