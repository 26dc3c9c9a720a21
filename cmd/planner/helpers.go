package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/codesagesllc/my-budget-planner-sub002/internal/config"
	"github.com/codesagesllc/my-budget-planner-sub002/internal/service"
	"github.com/codesagesllc/my-budget-planner-sub002/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/planner/planner.db"
	}

	dbPath = config.ExpandPath(dbPath)

	store, err := storage.Open(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return store, nil
}

// parseDateRange parses --start and --end flag values, defaulting to the
// trailing twelve months.
func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	end := time.Now()
	start := end.AddDate(-1, 0, 0)

	if startStr != "" {
		parsed, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %w", startStr, err)
		}
		start = parsed
	}
	if endStr != "" {
		parsed, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %w", endStr, err)
		}
		end = parsed
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("start date must be before end date")
	}

	return start, end, nil
}
