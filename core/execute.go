package core

import (
	"context"
	"errors"
	"sync"
	"time"

	"trendscope/internal/contract"
	"trendscope/internal/loader"
	"trendscope/internal/outwriter"
	"trendscope/schema"
)

// ExecutorFunc defines the function signature for executing different scoring modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error

// GetKeywordReports runs the full scoring pipeline and returns the ranked
// keyword reports along with the scoring duration. This is the shared entry
// point for the CLI executors and the MCP tool handlers.
func GetKeywordReports(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) ([]schema.KeywordReport, time.Duration, error) {
	start := time.Now()
	reports, err := runScoringCore(ctx, cfg, mgr)
	if err != nil {
		return nil, 0, err
	}
	ranked := RankReports(reports, cfg.ResultLimit)
	return ranked, time.Since(start), nil
}

// ExecuteScore runs the full scoring pipeline and prints ranked keyword
// reports. It serves as the main entry point for the 'score' command.
func ExecuteScore(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	ranked, duration, err := GetKeywordReports(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintKeywordReports(ranked, cfg, duration)
}

// ExecuteSeasonality runs the scoring pipeline and prints the seasonality
// profile for each keyword. It serves as the main entry point for the
// 'seasonality' command.
func ExecuteSeasonality(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	ranked, duration, err := GetKeywordReports(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintSeasonalityResults(ranked, cfg, duration)
}

// ExecuteMatrix runs the scoring pipeline and prints keywords grouped into
// opportunity quadrants. It serves as the main entry point for the 'matrix'
// command.
func ExecuteMatrix(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	ranked, duration, err := GetKeywordReports(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintMatrixResults(ranked, cfg, duration)
}

// ExecuteMetrics displays the formal definitions of both scorers.
// This is a static display that does not require any input data.
func ExecuteMetrics(_ context.Context, cfg *contract.Config, _ contract.CacheManager) error {
	return outwriter.PrintMetricsDefinitions(cfg.CustomWeights, cfg)
}

// runScoringCore performs the common Load, Filter and Score steps shared by
// every scoring command.
func runScoringCore(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) ([]schema.KeywordReport, error) {
	// --- 1. Load and filter keyword inputs ---
	inputs, err := loader.LoadInputs(cfg.InputPath)
	if err != nil {
		return nil, err
	}

	filtered := make([]schema.KeywordInput, 0, len(inputs))
	for _, input := range inputs {
		if contract.MatchesKeywordFilter(input.Keyword, cfg.Keywords) {
			filtered = append(filtered, input)
		}
	}
	if len(filtered) == 0 {
		return nil, errors.New("no keywords matched the input filters")
	}

	// --- 2. Begin Run Tracking (if configured) ---
	var runID int64
	var history contract.HistoryStore
	if mgr != nil {
		history = mgr.GetHistoryStore()
	}
	if history != nil {
		configParams := map[string]any{
			"input_path":   cfg.InputPath,
			"workers":      cfg.Workers,
			"result_limit": cfg.ResultLimit,
			"output":       string(cfg.Output),
		}
		runID, err = history.BeginRun(time.Now(), configParams)
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
			runID = 0
		}
	}

	// --- 3. Core Scoring ---
	reports := scoreKeywords(ctx, cfg, filtered, mgr, history, runID)

	// --- 4. End Run Tracking ---
	if history != nil && runID > 0 {
		if err := history.EndRun(runID, time.Now(), len(reports)); err != nil {
			contract.LogWarn("Failed to finalize run tracking", err)
		}
	}

	return reports, nil
}

// scoreKeywords processes all keywords in parallel using a worker pool.
// It spawns cfg.Workers goroutines to score keywords concurrently and
// aggregates their reports into a single slice.
func scoreKeywords(ctx context.Context, cfg *contract.Config, inputs []schema.KeywordInput, mgr contract.CacheManager, history contract.HistoryStore, runID int64) []schema.KeywordReport {
	engine := NewEngine(cfg.Params)

	var store contract.CacheStore
	if mgr != nil {
		store = mgr.GetReportStore()
	}

	inputCh := make(chan schema.KeywordInput, len(inputs))
	reportCh := make(chan schema.KeywordReport, len(inputs))
	var wg sync.WaitGroup

	// Start worker pool
	for range cfg.Workers {
		wg.Go(func() {
			for input := range inputCh {
				select {
				case <-ctx.Done():
					return
				default:
				}

				report := cachedComputeReport(engine, input, store)

				// Record the report to the history store (if run tracking is enabled)
				if history != nil && runID > 0 {
					if err := history.RecordKeywordReport(runID, report); err != nil {
						contract.LogWarn("Run tracking failed for keyword "+report.Keyword, err)
					}
				}

				reportCh <- report
			}
		})
	}

	// Send keywords to worker channel
	for _, input := range inputs {
		inputCh <- input
	}
	close(inputCh)

	// Wait for all workers to finish processing
	wg.Wait()
	close(reportCh)

	reports := make([]schema.KeywordReport, 0, len(inputs))
	for r := range reportCh {
		reports = append(reports, r)
	}

	return reports
}
