package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"invoiceforge/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "invoiceforge",
	Short: "invoiceforge - generate synthetic companies, invoice items and invoice documents",
	Long: `invoiceforge builds a corpus of synthetic business documents.

Companies and invoice line items are generated with an OpenAI completion
model, validated, and stored in Postgres. The invoice command assembles
stored records into invoices and renders them to PDF and HTML files.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
