package detect

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/codesagesllc/my-budget-planner-sub002/internal/model"
)

// Options selects per-run behavior for a detection call.
type Options struct {
	// Strategy picks the clustering strategy; defaults to StrategyName.
	Strategy Strategy
	// Hints are already-resolved enrichment suggestions merged into
	// matching patterns after local detection. Optional.
	Hints []model.EnrichmentHint
}

// Detector is the pattern detection engine. It holds no mutable state
// across runs, so a single instance is safe to share between goroutines
// operating on independent batches.
type Detector struct {
	logger      *slog.Logger
	categorizer *Categorizer
	cfg         Config
}

// NewDetector creates a detection engine. A nil rule table uses
// DefaultCategoryRules; a nil logger uses the process default.
func NewDetector(cfg Config, rules []CategoryRule, logger *slog.Logger) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid detector config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Detector{
		cfg:         cfg,
		categorizer: NewCategorizer(cfg, rules),
		logger:      logger,
	}, nil
}

// Detect runs the full pipeline over a caller-supplied snapshot of
// transactions and returns the ranked pattern list. Malformed individual
// transactions are skipped rather than aborting the batch; an empty input
// yields an empty result, never an error. The context is only consulted
// between pipeline stages.
func (d *Detector) Detect(ctx context.Context, txns []model.Transaction, existing []model.ExistingRecord, opts Options) ([]model.DetectedPattern, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	valid := d.validTransactions(txns)
	if len(valid) == 0 {
		return []model.DetectedPattern{}, nil
	}

	var arena *groupArena
	switch opts.Strategy {
	case StrategyAmount:
		arena = groupByAmount(d.cfg, valid)
	case StrategyName, "":
		arena = groupByName(d.cfg, valid)
	default:
		return nil, fmt.Errorf("unknown cluster strategy: %q", opts.Strategy)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	patterns := make([]model.DetectedPattern, 0, len(arena.groups))
	for _, group := range arena.groups {
		if pattern, ok := d.assess(group); ok {
			patterns = append(patterns, pattern)
		}
	}

	patterns = d.deduplicate(patterns, existing)
	d.mergeHints(patterns, opts.Hints)

	sort.SliceStable(patterns, func(i, j int) bool {
		if patterns[i].IsRecurring != patterns[j].IsRecurring {
			return patterns[i].IsRecurring
		}
		if patterns[i].Confidence != patterns[j].Confidence {
			return patterns[i].Confidence > patterns[j].Confidence
		}
		return patterns[i].Name < patterns[j].Name
	})

	d.logger.Debug("detection run complete",
		"input", len(txns),
		"valid", len(valid),
		"groups", len(arena.groups),
		"patterns", len(patterns))

	return patterns, nil
}

// validTransactions drops records missing a description, amount, or date.
// One bad record must not block detection for the rest of the history.
func (d *Detector) validTransactions(txns []model.Transaction) []model.Transaction {
	valid := make([]model.Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.Description == "" || txn.Amount == 0 || txn.Date.IsZero() {
			d.logger.Debug("skipping malformed transaction", "id", txn.ID)
			continue
		}
		valid = append(valid, txn)
	}
	return valid
}

// assess derives a pattern from a candidate group, or rejects it when the
// evidence does not clear the retention floor.
func (d *Detector) assess(group *candidateGroup) (model.DetectedPattern, bool) {
	dates := group.sortedDates()
	freq, base := classifyCadence(dates)
	confidence, recurring := scoreGroup(d.cfg, freq, base, group.amounts)

	if !recurring && confidence <= d.cfg.RetentionFloor {
		return model.DetectedPattern{}, false
	}

	var sum float64
	for _, a := range group.amounts {
		sum += a
	}
	mean := sum / float64(len(group.amounts))

	return model.DetectedPattern{
		Name:                 group.display,
		RepresentativeAmount: math.Round(mean*100) / 100,
		Frequency:            freq,
		Confidence:           confidence,
		Categories:           d.categorizer.Categorize(group.display, mean),
		OccurrenceCount:      len(group.memberIDs),
		FirstSeen:            dates[0],
		LastSeen:             dates[len(dates)-1],
		SourceTransactionIDs: group.memberIDs,
		IsRecurring:          recurring,
	}, true
}

// deduplicate suppresses patterns that match an existing persisted record
// on amount (within tolerance) and identical frequency.
func (d *Detector) deduplicate(patterns []model.DetectedPattern, existing []model.ExistingRecord) []model.DetectedPattern {
	if len(existing) == 0 {
		return patterns
	}

	kept := make([]model.DetectedPattern, 0, len(patterns))
	for _, p := range patterns {
		suppressed := false
		for _, rec := range existing {
			if rec.Frequency == p.Frequency && amountsClose(p.RepresentativeAmount, rec.Amount, d.cfg.DedupeTolerance) {
				suppressed = true
				break
			}
		}
		if suppressed {
			d.logger.Debug("suppressing duplicate pattern", "name", p.Name)
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// mergeHints overwrites local fields with enrichment data where a hint
// matches a pattern on amount tolerance and frequency. Missing or
// malformed hints leave local detection untouched; this step never fails.
func (d *Detector) mergeHints(patterns []model.DetectedPattern, hints []model.EnrichmentHint) {
	if len(hints) == 0 {
		return
	}

	for i := range patterns {
		for _, hint := range hints {
			if hint.Frequency != patterns[i].Frequency ||
				!amountsClose(patterns[i].RepresentativeAmount, hint.Amount, d.cfg.DedupeTolerance) {
				continue
			}
			if hint.Name != "" {
				patterns[i].Name = hint.Name
			}
			if hint.Category != "" {
				patterns[i].Categories = []string{hint.Category}
			}
			if hint.Confidence > 0 {
				patterns[i].Confidence = clamp(hint.Confidence, 0, 100)
			}
			break
		}
	}
}

// amountsClose reports whether two amounts are within a relative
// tolerance of the reference amount.
func amountsClose(amount, reference, tolerance float64) bool {
	if reference == 0 {
		return amount == 0
	}
	return math.Abs(amount-reference) <= math.Abs(reference)*tolerance
}
