// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"trendscope/schema"
)

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetReportStore() CacheStore
	GetHistoryStore() HistoryStore
}

// CacheStore defines the interface for cache data storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// HistoryStore defines the interface for tracking scoring runs and storing results.
type HistoryStore interface {
	// BeginRun creates a new scoring run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the scoring run with completion data
	EndRun(runID int64, endTime time.Time, totalKeywords int) error

	// RecordKeywordReport stores the final report for one keyword
	RecordKeywordReport(runID int64, report schema.KeywordReport) error

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllRuns retrieves every scoring run, oldest first
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllKeywordScores retrieves every stored keyword report row
	GetAllKeywordScores() ([]schema.KeywordScoreRecord, error)

	// Close closes the underlying connection
	Close() error
}
