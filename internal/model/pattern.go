package model

import "time"

// Frequency classifies the payment cadence inferred for a pattern.
type Frequency string

// Frequency band constants.
const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyAnnual    Frequency = "annual"
	FrequencyOneTime   Frequency = "one-time"
	FrequencyUnknown   Frequency = "unknown"
)

// IsCadence reports whether the frequency is a real recurring cadence
// rather than a one-time or unclassifiable result.
func (f Frequency) IsCadence() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyQuarterly, FrequencyAnnual:
		return true
	}
	return false
}

// DetectedPattern is a recurring or one-time financial pattern inferred
// from grouped transactions.
type DetectedPattern struct {
	FirstSeen            time.Time
	LastSeen             time.Time
	Name                 string
	Frequency            Frequency
	Categories           []string
	SourceTransactionIDs []string
	RepresentativeAmount float64
	Confidence           int
	OccurrenceCount      int
	IsRecurring          bool
}

// ExistingRecord is a previously persisted bill or income source, supplied
// by the caller solely to suppress duplicate suggestions.
type ExistingRecord struct {
	Name      string
	Frequency Frequency
	Amount    float64
}

// EnrichmentHint is an already-resolved suggestion from an external
// classification service, merged into matching patterns after detection.
// Zero-valued fields are treated as absent.
type EnrichmentHint struct {
	Name       string
	Category   string
	Frequency  Frequency
	Amount     float64
	Confidence int
}
