package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/codesagesllc/my-budget-planner-sub002/internal/cli"
	"github.com/codesagesllc/my-budget-planner-sub002/internal/plaid"
)

func syncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync transactions from your bank via Plaid",
		Long: `Fetch transactions from connected bank accounts through the Plaid API
and store them locally.

Requires plaid.client_id, plaid.secret, plaid.environment, and
plaid.access_token in your config (or PLANNER_* environment variables).`,
		RunE: runSync,
	}

	cmd.Flags().String("start", "", "Start date (YYYY-MM-DD, default: one year ago)")
	cmd.Flags().String("end", "", "End date (YYYY-MM-DD, default: today)")

	return cmd
}

func runSync(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	startStr, _ := cmd.Flags().GetString("start")
	endStr, _ := cmd.Flags().GetString("end")
	start, end, err := parseDateRange(startStr, endStr)
	if err != nil {
		return err
	}

	client, err := plaid.NewClient(plaid.Config{
		ClientID:    viper.GetString("plaid.client_id"),
		Secret:      viper.GetString("plaid.secret"),
		Environment: viper.GetString("plaid.environment"),
		AccessToken: viper.GetString("plaid.access_token"),
	}, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to create Plaid client: %w", err)
	}

	transactions, err := client.GetTransactions(ctx, start, end)
	if err != nil {
		return fmt.Errorf("failed to fetch transactions: %w", err)
	}

	if len(transactions) == 0 {
		slog.Warn("No transactions returned for date range",
			"start", start.Format("2006-01-02"),
			"end", end.Format("2006-01-02"))
		return nil
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.SaveTransactions(ctx, transactions); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Synced %d transactions", len(transactions))))
	return nil
}
