package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendscope/internal/contract"
	"trendscope/schema"
)

// rankedReports builds a small ranked report set for writer tests.
func rankedReports() []schema.KeywordReport {
	return []schema.KeywordReport{
		{
			Keyword: "matcha",
			Trend: schema.ScoreResult{
				Score: 72,
				Breakdown: map[schema.BreakdownKey]float64{
					schema.BreakdownLevel:       18.0,
					schema.BreakdownGrowth:      24.0,
					schema.BreakdownMomentum:    16.0,
					schema.BreakdownConsistency: 14.0,
				},
			},
			Potential: schema.ScoreResult{
				Score: 81,
				Breakdown: map[schema.BreakdownKey]float64{
					schema.BreakdownAcceleration: 21.0,
					schema.BreakdownEarlyStage:   18.75,
					schema.BreakdownRising:       25.0,
					schema.BreakdownHeadroom:     16.0,
				},
			},
			Opportunity: schema.StarOpportunity,
			Lifecycle:   schema.GrowthStage,
			Seasonality: schema.SeasonalityProfile{
				IsSeasonal: true,
				PeakMonths: []time.Month{time.November, time.December},
				Amplitude:  2.4,
				NextPeak:   &schema.PeakForecast{Month: time.November, MonthsUntil: 3},
			},
			Combined: 77.4,
			Tier:     schema.HighTier,
		},
		{
			Keyword:     "fax machine",
			Trend:       schema.ScoreResult{Score: 30},
			Potential:   schema.ScoreResult{Score: 22},
			Opportunity: schema.NicheOpportunity,
			Lifecycle:   schema.DeclineStage,
			Combined:    25.2,
			Tier:        schema.VeryLowTier,
		},
	}
}

func TestWriteJSONResultsForReports(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSONResultsForReports(&buf, rankedReports())
	require.NoError(t, err)

	// Parse the JSON to verify structure
	var result []map[string]any
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, float64(1), result[0]["rank"])
	assert.Equal(t, "matcha", result[0]["keyword"])
	assert.Equal(t, 77.4, result[0]["combined"])
	assert.Equal(t, "Star", result[0]["opportunity"])
	assert.Equal(t, float64(2), result[1]["rank"])
	assert.Equal(t, "fax machine", result[1]["keyword"])
}

func TestWriteCSVResultsForReports(t *testing.T) {
	fmtFloat, _ := createFormatters(1)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForReports(w, rankedReports(), fmtFloat)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3) // header + 2 rows

	// Check header
	assert.Contains(t, lines[0], "rank")
	assert.Contains(t, lines[0], "keyword")
	assert.Contains(t, lines[0], "combined")
	assert.Contains(t, lines[0], "peak_months")

	// Check data rows
	assert.Contains(t, lines[1], "matcha")
	assert.Contains(t, lines[1], "77.4")
	assert.Contains(t, lines[1], "Star")
	assert.Contains(t, lines[1], "Growth")
	assert.Contains(t, lines[2], "fax machine")
	assert.Contains(t, lines[2], "Niche")
}

func TestWriteCSVResultsForReportsEmpty(t *testing.T) {
	fmtFloat, _ := createFormatters(1)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForReports(w, nil, fmtFloat)
	require.NoError(t, err)
	w.Flush()

	// Should only have header
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "rank")
}

func TestWriteReportTable(t *testing.T) {
	cfg := &contract.Config{
		Output:       schema.TextOut,
		Precision:    1,
		Workers:      4,
		Width:        200,
		CacheBackend: schema.SQLiteBackend,
		UseColors:    false,
	}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeReportTable(rankedReports(), cfg, fmtFloat, 100*time.Millisecond, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "matcha")
	assert.Contains(t, output, "77.4")
	assert.Contains(t, output, "Star")
	assert.Contains(t, output, "Growth")
	assert.Contains(t, output, "fax machine")
	assert.Contains(t, output, "Showing top 2 keywords (seasonal: 1, insufficient data: 0)")
	assert.Contains(t, output, "Scoring completed in 100ms with 4 workers. Cache backend: sqlite")
}

func TestWriteReportTableDetailAndExplain(t *testing.T) {
	cfg := &contract.Config{
		Output:       schema.TextOut,
		Precision:    1,
		Workers:      2,
		Width:        250,
		CacheBackend: schema.NoneBackend,
		Detail:       true,
		Explain:      true,
		UseColors:    false,
	}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeReportTable(rankedReports(), cfg, fmtFloat, 50*time.Millisecond, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Nov, Dec")
	assert.Contains(t, output, "2.4")
	assert.Contains(t, output, "Nov (in 3mo)")
	assert.Contains(t, output, "rising > growth > acceleration")
}

func TestWriteReportParquetResults(t *testing.T) {
	tmpFile := t.TempDir() + "/reports.parquet"
	cfg := &contract.Config{
		Output:     schema.ParquetOut,
		OutputFile: tmpFile,
	}

	err := writeReportParquetResults(rankedReports(), cfg)
	require.NoError(t, err)
	assert.FileExists(t, tmpFile)
}

func TestWriteReportParquetResultsRequiresFile(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut}

	err := writeReportParquetResults(rankedReports(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output-file")
}
