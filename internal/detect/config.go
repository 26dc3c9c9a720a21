// Package detect implements the transaction pattern detection and
// classification engine. It takes a bounded snapshot of raw transactions
// and produces a ranked list of recurring and one-time financial patterns,
// each with an inferred frequency, a confidence score, and category tags.
package detect

import "fmt"

// Strategy selects how transactions are clustered into candidate groups.
type Strategy string

const (
	// StrategyName clusters transactions by normalized-description similarity.
	StrategyName Strategy = "name"
	// StrategyAmount clusters transactions into amount-tolerance buckets.
	StrategyAmount Strategy = "amount"
)

// Config holds the tunable thresholds for a detection run. The defaults
// reflect the product's shipped heuristics; deployments may tune them.
type Config struct {
	// AmountTolerance is the relative tolerance for joining an amount
	// bucket under StrategyAmount.
	AmountTolerance float64
	// DedupeTolerance is the relative amount tolerance used when matching
	// patterns against existing records and enrichment hints.
	DedupeTolerance float64
	// SimilarityThreshold is the minimum normalized edit-distance
	// similarity for two keys to share a group under StrategyName.
	SimilarityThreshold float64
	// AmountConsistencyLimit is the maximum stddev/mean ratio of a group's
	// amounts that still earns the amount-consistency confidence boost.
	AmountConsistencyLimit float64
	// RecurringFloor is the confidence a pattern must exceed, together
	// with a known cadence, to be marked recurring.
	RecurringFloor int
	// RetentionFloor is the confidence a non-recurring pattern must exceed
	// to be kept in the output at all.
	RetentionFloor int
	// OneTimeBase is the base confidence for groups whose cadence cannot
	// be inferred (fewer than two dates, or a gap outside every band).
	OneTimeBase int
	// SmallAmountLimit is the ceiling under which a pattern always gets
	// the generic subscription tag.
	SmallAmountLimit float64
	// LargeAmountLimit is the floor above which an uncategorized pattern
	// is tagged as a large payment instead of generic services.
	LargeAmountLimit float64
}

// DefaultConfig returns the shipped detection thresholds.
func DefaultConfig() Config {
	return Config{
		AmountTolerance:        0.05,
		DedupeTolerance:        0.10,
		SimilarityThreshold:    0.8,
		AmountConsistencyLimit: 0.10,
		RecurringFloor:         60,
		RetentionFloor:         40,
		OneTimeBase:            30,
		SmallAmountLimit:       25,
		LargeAmountLimit:       200,
	}
}

// Validate ensures the configuration is internally consistent.
func (c Config) Validate() error {
	if c.AmountTolerance <= 0 || c.AmountTolerance >= 1 {
		return fmt.Errorf("amount tolerance must be in (0, 1), got %v", c.AmountTolerance)
	}
	if c.DedupeTolerance <= 0 || c.DedupeTolerance >= 1 {
		return fmt.Errorf("dedupe tolerance must be in (0, 1), got %v", c.DedupeTolerance)
	}
	if c.SimilarityThreshold <= 0 || c.SimilarityThreshold >= 1 {
		return fmt.Errorf("similarity threshold must be in (0, 1), got %v", c.SimilarityThreshold)
	}
	if c.AmountConsistencyLimit <= 0 || c.AmountConsistencyLimit >= 1 {
		return fmt.Errorf("amount consistency limit must be in (0, 1), got %v", c.AmountConsistencyLimit)
	}
	if c.RecurringFloor < 0 || c.RecurringFloor > 100 {
		return fmt.Errorf("recurring floor must be in [0, 100], got %d", c.RecurringFloor)
	}
	if c.RetentionFloor < 0 || c.RetentionFloor > 100 {
		return fmt.Errorf("retention floor must be in [0, 100], got %d", c.RetentionFloor)
	}
	if c.RetentionFloor > c.RecurringFloor {
		return fmt.Errorf("retention floor %d must not exceed recurring floor %d", c.RetentionFloor, c.RecurringFloor)
	}
	return nil
}
