package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/codesagesllc/my-budget-planner-sub002/internal/cli"
	"github.com/codesagesllc/my-budget-planner-sub002/internal/detect"
	"github.com/codesagesllc/my-budget-planner-sub002/internal/enrich"
	"github.com/codesagesllc/my-budget-planner-sub002/internal/model"
	"github.com/codesagesllc/my-budget-planner-sub002/internal/service"
)

func detectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect recurring bill and income patterns",
		Long: `Analyze stored transactions for recurring patterns: subscriptions,
bills, payroll deposits, and other regular cash flows. Patterns that
match an existing bill or income record are suppressed.`,
		RunE: runDetect,
	}

	cmd.Flags().String("strategy", "name", "grouping strategy (name, amount)")
	cmd.Flags().String("start", "", "Start date (YYYY-MM-DD, default: one year ago)")
	cmd.Flags().String("end", "", "End date (YYYY-MM-DD, default: today)")
	cmd.Flags().Bool("enrich", false, "refine names and categories with the configured LLM")
	cmd.Flags().Bool("save", false, "persist detected patterns for later review")

	return cmd
}

func runDetect(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	strategy, _ := cmd.Flags().GetString("strategy")
	startStr, _ := cmd.Flags().GetString("start")
	endStr, _ := cmd.Flags().GetString("end")
	enrichFlag, _ := cmd.Flags().GetBool("enrich")
	save, _ := cmd.Flags().GetBool("save")

	start, end, err := parseDateRange(startStr, endStr)
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	transactions, err := store.GetTransactions(ctx, service.TransactionFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	if len(transactions) == 0 {
		fmt.Println(cli.FormatWarning("No transactions in range; run import or sync first"))
		return nil
	}

	existing, err := store.ListExistingRecords(ctx)
	if err != nil {
		return fmt.Errorf("failed to load existing records: %w", err)
	}

	detector, err := detect.NewDetector(detect.DefaultConfig(), nil, slog.Default())
	if err != nil {
		return err
	}

	opts := detect.Options{Strategy: detect.Strategy(strategy)}

	patterns, err := detector.Detect(ctx, transactions, existing, opts)
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	if enrichFlag && len(patterns) > 0 {
		patterns, err = enrichPatterns(cmd, detector, transactions, existing, opts, patterns)
		if err != nil {
			return err
		}
	}

	fmt.Println(cli.RenderPatterns(patterns))

	if save && len(patterns) > 0 {
		if err := store.SavePatterns(ctx, patterns); err != nil {
			return fmt.Errorf("failed to save patterns: %w", err)
		}
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Saved %d patterns", len(patterns))))
	}

	return nil
}

// enrichPatterns asks the configured hint provider for suggestions and
// re-runs detection with the hints applied. Enrichment failures degrade to
// the unenriched result.
func enrichPatterns(cmd *cobra.Command, detector *detect.Detector, transactions []model.Transaction, existing []model.ExistingRecord, opts detect.Options, patterns []model.DetectedPattern) ([]model.DetectedPattern, error) {
	ctx := cmd.Context()

	provider, err := enrich.NewAnthropicProvider(enrich.Config{
		APIKey: viper.GetString("anthropic.api_key"),
		Model:  viper.GetString("anthropic.model"),
	}, slog.Default())
	if err != nil {
		return nil, fmt.Errorf("enrichment unavailable: %w", err)
	}

	hints, err := provider.SuggestHints(ctx, patterns)
	if err != nil {
		slog.Warn("Enrichment failed, using local results", "error", err)
		return patterns, nil
	}

	opts.Hints = hints
	enriched, err := detector.Detect(ctx, transactions, existing, opts)
	if err != nil {
		return nil, fmt.Errorf("detection failed: %w", err)
	}

	return enriched, nil
}
