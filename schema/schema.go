// Package schema has configs, models and global variables for all parts of trendscope.
package schema

import "time"

// TimePoint is a single observation of search interest for a keyword.
// Values are expected on a normalized 0-100 interest scale, but the engine
// tolerates any non-negative finite value.
type TimePoint struct {
	Timestamp time.Time // Period start for the observation
	Value     float64   // Search interest for the period
}

// Series is a chronologically ordered sequence of time points.
// Gaps between periods are tolerated; duplicates and non-finite values
// are removed by normalization before scoring.
type Series []TimePoint

// AuxiliarySignals carries optional demand signals collected alongside the
// interest series. All fields default to zero when the upstream collector
// fails, which degrades the affected sub-scores instead of erroring.
type AuxiliarySignals struct {
	RisingQueries    int     `json:"rising_queries"`     // Count of related queries with rising interest
	RelatedGrowthPct float64 `json:"related_growth_pct"` // Max growth percentage among related queries
	NewsVolume       int     `json:"news_volume"`        // Recent news article count for the keyword
	BreakoutQueries  int     `json:"breakout_queries"`   // Count of related queries flagged as breakout
}

// KeywordInput bundles everything the engine needs to score one keyword.
type KeywordInput struct {
	Keyword string           `json:"keyword"`
	Points  Series           `json:"points"`
	Signals AuxiliarySignals `json:"signals"`
}

// KeywordReport is the full scoring outcome for a single keyword.
type KeywordReport struct {
	Keyword     string             `json:"keyword"`
	Trend       ScoreResult        `json:"trend"`
	Potential   ScoreResult        `json:"potential"`
	Opportunity OpportunityLabel   `json:"opportunity"`
	Lifecycle   LifecycleStage     `json:"lifecycle"`
	Seasonality SeasonalityProfile `json:"seasonality"`
	Combined    float64            `json:"combined"` // Weighted blend of trend and potential
	Tier        TierLabel          `json:"tier"`     // Tier for the combined score
}
