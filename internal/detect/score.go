package detect

import "github.com/codesagesllc/my-budget-planner-sub002/internal/model"

// scoreGroup combines the cadence base confidence, the amount-consistency
// boost, and the occurrence-count boosts into one clamped [0,100] score,
// and decides the recurring verdict. A group is recurring only when a real
// cadence was found and the final confidence clears the recurring floor.
func scoreGroup(cfg Config, freq model.Frequency, base int, amounts []float64) (int, bool) {
	confidence := base
	if !freq.IsCadence() {
		confidence = cfg.OneTimeBase
	}

	// Amount consistency needs at least two samples to mean anything.
	if len(amounts) >= 2 {
		stats := summarize(amounts)
		if stats.mean > 0 && stats.stddev < stats.mean*cfg.AmountConsistencyLimit {
			confidence += 20
		}
	}

	if len(amounts) >= 3 {
		confidence += 5
	}
	if len(amounts) >= 6 {
		confidence += 5
	}

	confidence = clamp(confidence, 0, 100)
	recurring := freq.IsCadence() && confidence > cfg.RecurringFloor

	return confidence, recurring
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
