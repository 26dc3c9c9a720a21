package detect

import (
	"math"
	"time"

	"github.com/codesagesllc/my-budget-planner-sub002/internal/model"
)

// frequencyBand maps a mean day-gap range to a cadence. Bands whose gap
// variance stays under the tight threshold earn the higher base confidence.
type frequencyBand struct {
	frequency   model.Frequency
	minGap      float64
	maxGap      float64
	tightStddev float64
	baseTight   int
	baseLoose   int
}

var frequencyBands = []frequencyBand{
	{model.FrequencyWeekly, 5, 9, 2, 85, 65},
	{model.FrequencyBiweekly, 12, 16, 2, 85, 65},
	{model.FrequencyMonthly, 28, 32, 3, 85, 65},
	{model.FrequencyQuarterly, 84, 96, 5, 80, 60},
	{model.FrequencyAnnual, 350, 380, 10, 80, 60},
}

// intervalStats summarizes a sequence of values.
type intervalStats struct {
	mean   float64
	stddev float64
}

// summarize computes mean and population standard deviation.
func summarize(values []float64) intervalStats {
	if len(values) == 0 {
		return intervalStats{}
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sumSq float64
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}

	return intervalStats{
		mean:   mean,
		stddev: math.Sqrt(sumSq / float64(len(values))),
	}
}

// dayGaps returns the consecutive day gaps of ascending-sorted dates.
func dayGaps(dates []time.Time) []float64 {
	if len(dates) < 2 {
		return nil
	}
	gaps := make([]float64, 0, len(dates)-1)
	for i := 1; i < len(dates); i++ {
		gaps = append(gaps, dates[i].Sub(dates[i-1]).Hours()/24)
	}
	return gaps
}

// classifyCadence consumes a group's chronologically sorted dates and
// classifies the implied payment cadence, returning the matched frequency
// and its base confidence. Fewer than two dates, or a mean gap outside
// every band, yields an unclassifiable result with zero base confidence;
// the scorer substitutes its one-time baseline in that case.
func classifyCadence(dates []time.Time) (model.Frequency, int) {
	gaps := dayGaps(dates)
	if len(gaps) == 0 {
		return model.FrequencyOneTime, 0
	}

	stats := summarize(gaps)
	for _, band := range frequencyBands {
		if stats.mean >= band.minGap && stats.mean <= band.maxGap {
			if stats.stddev < band.tightStddev {
				return band.frequency, band.baseTight
			}
			return band.frequency, band.baseLoose
		}
	}

	return model.FrequencyUnknown, 0
}
