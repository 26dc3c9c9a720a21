// Package service defines the interfaces shared by the application's services.
package service

import (
	"context"
	"time"

	"github.com/codesagesllc/my-budget-planner-sub002/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Transaction operations
	SaveTransactions(ctx context.Context, transactions []model.Transaction) error
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)

	// Existing bill/income records used to suppress duplicate suggestions
	ListExistingRecords(ctx context.Context) ([]model.ExistingRecord, error)

	// Detected pattern operations
	SavePatterns(ctx context.Context, patterns []model.DetectedPattern) error
	ListPatterns(ctx context.Context) ([]model.DetectedPattern, error)
	AcceptPattern(ctx context.Context, patternID int64) error

	Close() error
}

// TransactionFetcher defines the contract for fetching transaction data
// from a banking-data aggregator. It allows for easy mocking in tests and
// swapping data sources.
type TransactionFetcher interface {
	GetTransactions(ctx context.Context, startDate, endDate time.Time) ([]model.Transaction, error)
	GetAccounts(ctx context.Context) ([]string, error)
}

// HintProvider resolves enrichment hints for detected patterns from an
// external classification service. Failures are expected and non-fatal;
// callers fall back to purely local detection.
type HintProvider interface {
	SuggestHints(ctx context.Context, patterns []model.DetectedPattern) ([]model.EnrichmentHint, error)
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
