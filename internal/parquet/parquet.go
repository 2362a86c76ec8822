// Package parquet provides data structures and functions for exporting scoring
// history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"trendscope/schema"
)

// ScoringRun represents a single scoring run with metadata.
// This struct maps to the trendscope_run_history database table.
type ScoringRun struct {
	// RunID is the unique identifier for this scoring run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the scoring run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalKeywords is the number of keywords scored in this run
	TotalKeywords int32 `parquet:"total_keywords,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// KeywordScore represents the stored report for a single keyword in a run.
// This struct maps to the trendscope_keyword_scores database table.
type KeywordScore struct {
	// RunID references the parent scoring run
	RunID int64 `parquet:"run_id,snappy"`

	// Keyword is the search term that was scored
	Keyword string `parquet:"keyword,snappy"`

	// ScoredAt is when this keyword was scored (stored as TIMESTAMP with nanosecond precision)
	ScoredAt time.Time `parquet:"scored_at,snappy"`

	// TrendScore is the 0-100 trend score
	TrendScore int32 `parquet:"trend_score,snappy"`

	// PotentialScore is the 0-100 potential score
	PotentialScore int32 `parquet:"potential_score,snappy"`

	// Combined is the blended trend/potential score
	Combined float64 `parquet:"combined,snappy"`

	// Opportunity is the quadrant label (Star, Emerging, Established, Niche)
	Opportunity string `parquet:"opportunity,snappy"`

	// Lifecycle is the stage label (Introduction, Growth, Maturity, Decline)
	Lifecycle string `parquet:"lifecycle,snappy"`

	// IsSeasonal indicates whether a recurring seasonal pattern was detected
	IsSeasonal bool `parquet:"is_seasonal,snappy"`

	// Tier is the combined-score tier label
	Tier string `parquet:"tier,snappy"`
}

// WriteScoringRunsParquet writes a slice of ScoringRun structs to a Parquet file.
func WriteScoringRunsParquet(data []ScoringRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the ScoringRun struct tags
	writer := parquet.NewGenericWriter[ScoringRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteKeywordScoresParquet writes a slice of KeywordScore structs to a Parquet file.
func WriteKeywordScoresParquet(data []KeywordScore, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the KeywordScore struct tags
	writer := parquet.NewGenericWriter[KeywordScore](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRunRecords converts schema.RunRecord to ScoringRun for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []ScoringRun {
	result := make([]ScoringRun, len(records))
	for i, record := range records {
		result[i] = ScoringRun{
			RunID:         record.RunID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			TotalKeywords: record.TotalKeywords,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertKeywordScoreRecords converts schema.KeywordScoreRecord to KeywordScore for Parquet export.
func ConvertKeywordScoreRecords(records []schema.KeywordScoreRecord) []KeywordScore {
	result := make([]KeywordScore, len(records))
	for i, record := range records {
		result[i] = KeywordScore{
			RunID:          record.RunID,
			Keyword:        record.Keyword,
			ScoredAt:       record.ScoredAt,
			TrendScore:     record.TrendScore,
			PotentialScore: record.PotentialScore,
			Combined:       record.Combined,
			Opportunity:    record.Opportunity,
			Lifecycle:      record.Lifecycle,
			IsSeasonal:     record.IsSeasonal,
			Tier:           record.Tier,
		}
	}
	return result
}
