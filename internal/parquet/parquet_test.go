package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendscope/schema"
)

func sampleRuns() []ScoringRun {
	now := time.Now()
	endTime := now.Add(2 * time.Second)
	durationMs := int32(2000)
	config := `{"limit":25,"output":"text"}`

	return []ScoringRun{
		{
			RunID:         1,
			StartTime:     now,
			EndTime:       &endTime,
			RunDurationMs: &durationMs,
			TotalKeywords: 12,
			ConfigParams:  &config,
		},
		// Still running; nullable fields stay nil
		{
			RunID:         2,
			StartTime:     now.Add(time.Minute),
			EndTime:       nil,
			RunDurationMs: nil,
			TotalKeywords: 0,
			ConfigParams:  nil,
		},
	}
}

func sampleScores() []KeywordScore {
	now := time.Now()
	return []KeywordScore{
		{
			RunID:          1,
			Keyword:        "oat milk",
			ScoredAt:       now,
			TrendScore:     72,
			PotentialScore: 81,
			Combined:       77.4,
			Opportunity:    "Star",
			Lifecycle:      "Growth",
			IsSeasonal:     false,
			Tier:           "High",
		},
		{
			RunID:          1,
			Keyword:        "pumpkin spice",
			ScoredAt:       now,
			TrendScore:     40,
			PotentialScore: 35,
			Combined:       37.0,
			Opportunity:    "Niche",
			Lifecycle:      "Maturity",
			IsSeasonal:     true,
			Tier:           "Low",
		},
	}
}

func TestScoringRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	s := parquet.SchemaOf(new(ScoringRun))
	require.NotNil(t, s)

	expectedColumns := []string{
		"run_id",
		"start_time",
		"end_time",
		"run_duration_ms",
		"total_keywords",
		"config_params",
	}

	for _, colName := range expectedColumns {
		col, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestKeywordScoreStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(KeywordScore))
	require.NotNil(t, s)

	expectedColumns := []string{
		"run_id",
		"keyword",
		"scored_at",
		"trend_score",
		"potential_score",
		"combined",
		"opportunity",
		"lifecycle",
		"is_seasonal",
		"tier",
	}

	for _, colName := range expectedColumns {
		col, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteScoringRunsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "scoring_runs.parquet")

	data := sampleRuns()
	require.NoError(t, WriteScoringRunsParquet(data, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[ScoringRun](file)
	defer reader.Close()

	readData := make([]ScoringRun, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	assert.Equal(t, len(data), n)

	assert.Equal(t, data[0].RunID, readData[0].RunID)
	assert.Equal(t, data[0].TotalKeywords, readData[0].TotalKeywords)
	require.NotNil(t, readData[0].EndTime)
	assert.WithinDuration(t, *data[0].EndTime, *readData[0].EndTime, time.Nanosecond)
	require.NotNil(t, readData[0].ConfigParams)
	assert.Equal(t, *data[0].ConfigParams, *readData[0].ConfigParams)

	// Nullable fields round-trip as nil
	assert.Nil(t, readData[1].EndTime)
	assert.Nil(t, readData[1].RunDurationMs)
	assert.Nil(t, readData[1].ConfigParams)
}

func TestWriteKeywordScoresParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "keyword_scores.parquet")

	data := sampleScores()
	require.NoError(t, WriteKeywordScoresParquet(data, outputPath))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[KeywordScore](file)
	defer reader.Close()

	readData := make([]KeywordScore, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	assert.Equal(t, len(data), n)

	for i := range data {
		assert.Equal(t, data[i].Keyword, readData[i].Keyword)
		assert.Equal(t, data[i].TrendScore, readData[i].TrendScore)
		assert.Equal(t, data[i].PotentialScore, readData[i].PotentialScore)
		assert.InDelta(t, data[i].Combined, readData[i].Combined, 0.001)
		assert.Equal(t, data[i].Opportunity, readData[i].Opportunity)
		assert.Equal(t, data[i].IsSeasonal, readData[i].IsSeasonal)
		assert.Equal(t, data[i].Tier, readData[i].Tier)
	}
}

func TestWriteParquetEmptyData(t *testing.T) {
	tmpDir := t.TempDir()

	runsPath := filepath.Join(tmpDir, "empty_runs.parquet")
	require.NoError(t, WriteScoringRunsParquet([]ScoringRun{}, runsPath))
	info, err := os.Stat(runsPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0), "file should contain schema even if empty")

	scoresPath := filepath.Join(tmpDir, "empty_scores.parquet")
	require.NoError(t, WriteKeywordScoresParquet([]KeywordScore{}, scoresPath))
}

func TestWriteParquetInvalidPath(t *testing.T) {
	require.Error(t, WriteScoringRunsParquet(sampleRuns(), "/nonexistent/directory/output.parquet"))
	require.Error(t, WriteKeywordScoresParquet(sampleScores(), "/nonexistent/directory/output.parquet"))
}

func TestConvertRunRecords(t *testing.T) {
	now := time.Now()
	config := `{"limit":25}`
	records := []schema.RunRecord{
		{RunID: 7, StartTime: now, TotalKeywords: 3, ConfigParams: &config},
	}

	converted := ConvertRunRecords(records)
	require.Len(t, converted, 1)
	assert.Equal(t, int64(7), converted[0].RunID)
	assert.Equal(t, int32(3), converted[0].TotalKeywords)
	assert.Equal(t, &config, converted[0].ConfigParams)
	assert.Nil(t, converted[0].EndTime)
}

func TestConvertKeywordScoreRecords(t *testing.T) {
	now := time.Now()
	records := []schema.KeywordScoreRecord{
		{
			RunID:          7,
			Keyword:        "matcha",
			ScoredAt:       now,
			TrendScore:     55,
			PotentialScore: 62,
			Combined:       59.2,
			Opportunity:    "Emerging",
			Lifecycle:      "Introduction",
			IsSeasonal:     false,
			Tier:           "Medium",
		},
	}

	converted := ConvertKeywordScoreRecords(records)
	require.Len(t, converted, 1)
	assert.Equal(t, "matcha", converted[0].Keyword)
	assert.Equal(t, int32(62), converted[0].PotentialScore)
	assert.Equal(t, "Emerging", converted[0].Opportunity)
}
