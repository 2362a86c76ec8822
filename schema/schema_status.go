package schema

import "time"

// CacheStatus represents the status of the cache store.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// HistoryStatus represents the status of the run-history store.
type HistoryStatus struct {
	Backend             string           `json:"backend"`
	Connected           bool             `json:"connected"`
	TotalRuns           int              `json:"total_runs"`
	LastRunID           int64            `json:"last_run_id"`
	LastRunTime         time.Time        `json:"last_run_time"`
	OldestRunTime       time.Time        `json:"oldest_run_time"`
	TotalKeywordsScored int              `json:"total_keywords_scored"`
	TableSizes          map[string]int64 `json:"table_sizes"`
}

// GateViolation is one keyword score that fell below a gate threshold.
type GateViolation struct {
	Keyword   string  `json:"keyword"`
	Gate      string  `json:"gate"`
	Score     float64 `json:"score"`
	Threshold float64 `json:"threshold"`
}

// GateResult holds the outcome of a gate check over a scored keyword set.
type GateResult struct {
	Passed        bool               `json:"passed"`
	TotalKeywords int                `json:"total_keywords"`
	Thresholds    map[string]float64 `json:"thresholds"`
	Violations    []GateViolation    `json:"violations"`
}

// RunRecord represents a row from the trendscope_run_history table.
type RunRecord struct {
	RunID         int64
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	TotalKeywords int32
	ConfigParams  *string
}

// KeywordScoreRecord represents a row from the trendscope_keyword_scores table.
type KeywordScoreRecord struct {
	RunID          int64
	Keyword        string
	ScoredAt       time.Time
	TrendScore     int32
	PotentialScore int32
	Combined       float64
	Opportunity    string
	Lifecycle      string
	IsSeasonal     bool
	Tier           string
}
