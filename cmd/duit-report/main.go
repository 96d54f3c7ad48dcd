package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"duit/internal/cli"
	"duit/internal/core"
	"duit/internal/export"
	"duit/internal/report"
)

var (
	flagMonth    string
	flagCategory string
	flagCSV      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duit-report",
	Short: "Render the duit ledger as terminal tables or CSV",
	Long: `duit-report loads the persisted ledger through the configured backend
(DATA_BACKEND=file|sqlite) and prints the transaction history, totals,
category breakdown and monthly trend without starting the web server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagMonth, "month", "", `filter by two-digit month ("01".."12"), any year`)
	rootCmd.Flags().StringVar(&flagCategory, "category", "", "filter by exact category")
	rootCmd.Flags().BoolVar(&flagCSV, "csv", false, "write the full ledger as CSV to stdout instead of tables")
}

func run(ctx context.Context) error {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	store := cli.OpenStore(ctx, logger, cfg)
	defer store.Close()

	ledger := store.All()

	if flagCSV {
		fmt.Print(export.CSV(ledger))
		return nil
	}

	filter := core.Filter{Month: flagMonth, Category: flagCategory}
	filtered := filter.Apply(ledger)

	report.PrintTransactions(os.Stdout, filtered)
	fmt.Println()
	report.PrintSummary(os.Stdout, core.Summarize(filtered))

	fmt.Println()
	report.PrintCategoryTotals(os.Stdout, core.CategoryTotals(ledger))

	fmt.Println()
	now := time.Now()
	anchor := core.NewDate(now.Year(), int(now.Month()), now.Day())
	report.PrintTrend(os.Stdout, core.MonthlySeries(ledger, anchor, cfg.TrendMonths))
	return nil
}
