package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/codesagesllc/my-budget-planner-sub002/internal/cli"
	"github.com/codesagesllc/my-budget-planner-sub002/internal/common"
)

func patternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Review and accept detected patterns",
	}

	cmd.AddCommand(patternsListCmd())
	cmd.AddCommand(patternsAcceptCmd())

	return cmd
}

func patternsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved detected patterns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			patterns, err := store.ListPatterns(ctx)
			if err != nil {
				return fmt.Errorf("failed to list patterns: %w", err)
			}

			fmt.Println(cli.RenderPatterns(patterns))
			return nil
		},
	}
}

func patternsAcceptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accept [pattern-id]",
		Short: "Accept a pattern as a bill or income source",
		Long: `Promote a detected pattern into your budget: income patterns become
income sources, everything else becomes a bill. Accepted patterns
suppress matching suggestions in future detection runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			patternID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pattern ID %q", args[0])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.AcceptPattern(ctx, patternID); err != nil {
				switch {
				case errors.Is(err, common.ErrNotFound):
					return fmt.Errorf("no pattern with ID %d", patternID)
				case errors.Is(err, common.ErrDuplicateEntry):
					return fmt.Errorf("pattern %d has already been accepted", patternID)
				default:
					return fmt.Errorf("failed to accept pattern: %w", err)
				}
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Accepted pattern %d", patternID)))
			return nil
		},
	}
}
