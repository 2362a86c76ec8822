package iocache

import (
	"errors"
	"fmt"

	"trendscope/internal/parquet"
)

// ExecuteHistoryExport performs the actual export of run-history data to Parquet files.
func ExecuteHistoryExport(outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetHistoryStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no scoring history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total scoring runs: %d\n", status.TotalRuns)
	fmt.Printf("Total keyword records: %d\n", status.TableSizes[keywordScoresTable])

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve scoring runs: %w", err)
	}

	scores, err := store.GetAllKeywordScores()
	if err != nil {
		return fmt.Errorf("failed to retrieve keyword scores: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetScores := parquet.ConvertKeywordScoreRecords(scores)

	// Write scoring runs to Parquet
	runsFile := outputFile + ".scoring_runs.parquet"
	if err := parquet.WriteScoringRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write scoring runs: %w", err)
	}
	fmt.Printf("Exported %d scoring runs to: %s\n", len(parquetRuns), runsFile)

	// Write keyword scores to Parquet
	scoresFile := outputFile + ".keyword_scores.parquet"
	if err := parquet.WriteKeywordScoresParquet(parquetScores, scoresFile); err != nil {
		return fmt.Errorf("failed to write keyword scores: %w", err)
	}
	fmt.Printf("Exported %d keyword score records to: %s\n", len(parquetScores), scoresFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
