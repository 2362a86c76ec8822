// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"trendscope/internal/contract"
	"trendscope/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReports prints ranked keyword reports using the configured output format.
func (ow *OutWriter) WriteReports(reports []schema.KeywordReport, cfg *contract.Config, duration time.Duration) error {
	return PrintKeywordReports(reports, cfg, duration)
}

// WriteSeasonality prints seasonality profiles using the configured output format.
func (ow *OutWriter) WriteSeasonality(reports []schema.KeywordReport, cfg *contract.Config, duration time.Duration) error {
	return PrintSeasonalityResults(reports, cfg, duration)
}

// WriteMatrix prints opportunity quadrants using the configured output format.
func (ow *OutWriter) WriteMatrix(reports []schema.KeywordReport, cfg *contract.Config, duration time.Duration) error {
	return PrintMatrixResults(reports, cfg, duration)
}

// WriteMetrics prints scorer definitions using the configured output format.
func (ow *OutWriter) WriteMetrics(activeWeights map[schema.ScorerKind]map[schema.BreakdownKey]float64, cfg *contract.Config) error {
	return PrintMetricsDefinitions(activeWeights, cfg)
}

// GetMaxTableKeywordWidth calculates the maximum width for keywords in table
// output based on terminal width and table configuration.
func GetMaxTableKeywordWidth(cfg *contract.Config) int {
	return getMaxTableKeywordWidth(cfg)
}
