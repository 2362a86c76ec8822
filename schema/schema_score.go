package schema

import "time"

// ScoreResult is the outcome of one weighted scorer for one keyword.
type ScoreResult struct {
	// Score is the final weighted score, rounded and clamped to [0, 100].
	Score int `json:"score"`

	// Breakdown holds the weighted contribution of each sub-score, so that
	// summing the values reproduces the unrounded score.
	Breakdown map[BreakdownKey]float64 `json:"breakdown"`

	// InsufficientData is set when the normalized series was empty. The
	// score is 0 in that case and the breakdown contributions are all zero.
	InsufficientData bool `json:"insufficient_data"`
}

// PeakForecast predicts the next seasonal peak relative to the last
// observed period.
type PeakForecast struct {
	Month       time.Month `json:"month"`
	MonthsUntil int        `json:"months_until"` // always within [1, 12]
}

// SeasonalityProfile describes recurring intra-year demand patterns.
type SeasonalityProfile struct {
	IsSeasonal bool          `json:"is_seasonal"`
	PeakMonths []time.Month  `json:"peak_months"` // ascending calendar order
	Amplitude  float64       `json:"amplitude"`   // peak month mean over trough month mean
	NextPeak   *PeakForecast `json:"next_peak,omitempty"`
}
