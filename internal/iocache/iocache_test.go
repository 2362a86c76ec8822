package iocache

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendscope/schema"
)

func TestValidateTableName(t *testing.T) {
	assert.NoError(t, validateTableName("report_cache"))
	assert.NoError(t, validateTableName("_private"))
	assert.Error(t, validateTableName(""))
	assert.Error(t, validateTableName("1table"))
	assert.Error(t, validateTableName("drop table; --"))
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`cache`", quoteTableName("cache", schema.MySQLBackend))
	assert.Equal(t, `"cache"`, quoteTableName("cache", schema.PostgreSQLBackend))
	assert.Equal(t, `"cache"`, quoteTableName("cache", schema.SQLiteBackend))
}

func TestCacheStoreSQLiteRoundtrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore(reportTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ts := time.Now().Unix()
	require.NoError(t, store.Set("key1", []byte("payload"), 1, ts))

	value, version, gotTs, err := store.Get("key1")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), value)
	assert.Equal(t, 1, version)
	assert.Equal(t, ts, gotTs)

	// Overwrite replaces the existing row
	require.NoError(t, store.Set("key1", []byte("updated"), 2, ts+10))
	value, version, _, err = store.Get("key1")
	require.NoError(t, err)
	assert.Equal(t, []byte("updated"), value)
	assert.Equal(t, 2, version)

	_, _, _, err = store.Get("missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, string(schema.SQLiteBackend), status.Backend)
	assert.Equal(t, 1, status.TotalEntries)
	assert.Greater(t, status.TableSizeBytes, int64(0))
}

func TestCacheStoreNoneBackend(t *testing.T) {
	store, err := NewCacheStore(reportTable, schema.NoneBackend, "")
	require.NoError(t, err)

	// Set is a no-op and Get always misses
	require.NoError(t, store.Set("key1", []byte("payload"), 1, time.Now().Unix()))
	_, _, _, err = store.Get("key1")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)

	assert.NoError(t, store.Close())
}

func TestCacheStoreRejectsBadTableName(t *testing.T) {
	_, err := NewCacheStore("bad name!", schema.SQLiteBackend, filepath.Join(t.TempDir(), "x.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid table name")
}

func sampleReport(keyword string) schema.KeywordReport {
	return schema.KeywordReport{
		Keyword:     keyword,
		Trend:       schema.ScoreResult{Score: 72},
		Potential:   schema.ScoreResult{Score: 81},
		Opportunity: schema.StarOpportunity,
		Lifecycle:   schema.GrowthStage,
		Seasonality: schema.SeasonalityProfile{IsSeasonal: true},
		Combined:    77.4,
		Tier:        schema.HighTier,
	}
}

func TestHistoryStoreSQLiteLifecycle(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	store, err := NewHistoryStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	startTime := time.Now().UTC().Truncate(time.Second)
	runID, err := store.BeginRun(startTime, map[string]any{"limit": 25, "output": "text"})
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	require.NoError(t, store.RecordKeywordReport(runID, sampleReport("oat milk")))
	require.NoError(t, store.RecordKeywordReport(runID, sampleReport("matcha")))

	require.NoError(t, store.EndRun(runID, startTime.Add(3*time.Second), 2))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, 1, status.TotalRuns)
	assert.Equal(t, runID, status.LastRunID)
	assert.Equal(t, 2, status.TotalKeywordsScored)
	assert.Equal(t, int64(2), status.TableSizes[keywordScoresTable])

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].RunID)
	assert.Equal(t, int32(2), runs[0].TotalKeywords)
	require.NotNil(t, runs[0].EndTime)
	require.NotNil(t, runs[0].RunDurationMs)
	assert.Equal(t, int32(3000), *runs[0].RunDurationMs)
	require.NotNil(t, runs[0].ConfigParams)
	assert.Contains(t, *runs[0].ConfigParams, `"output":"text"`)

	scores, err := store.GetAllKeywordScores()
	require.NoError(t, err)
	require.Len(t, scores, 2)
	// Ordered by run_id, keyword
	assert.Equal(t, "matcha", scores[0].Keyword)
	assert.Equal(t, "oat milk", scores[1].Keyword)
	assert.Equal(t, int32(72), scores[0].TrendScore)
	assert.Equal(t, int32(81), scores[0].PotentialScore)
	assert.Equal(t, "Star", scores[0].Opportunity)
	assert.Equal(t, "Growth", scores[0].Lifecycle)
	assert.True(t, scores[0].IsSeasonal)
	assert.Equal(t, "High", scores[0].Tier)
}

func TestHistoryStoreNoneBackend(t *testing.T) {
	store, err := NewHistoryStore(schema.NoneBackend, "")
	require.NoError(t, err)

	runID, err := store.BeginRun(time.Now(), nil)
	require.NoError(t, err)
	assert.Zero(t, runID)

	require.NoError(t, store.RecordKeywordReport(runID, sampleReport("noop")))
	require.NoError(t, store.EndRun(runID, time.Now(), 0))

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	assert.Nil(t, runs)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)

	assert.NoError(t, store.Close())
}

func TestClearCacheSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore(reportTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set("key1", []byte("payload"), 1, time.Now().Unix()))
	require.NoError(t, store.Close())

	require.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))

	// Clearing again is fine when the file is already gone
	require.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))

	// Empty path is rejected for SQLite
	require.Error(t, ClearCache(schema.SQLiteBackend, "", ""))

	// NoneBackend clears nothing
	require.NoError(t, ClearCache(schema.NoneBackend, "", ""))
}

func TestClearHistorySQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	store, err := NewHistoryStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	require.NoError(t, ClearHistory(schema.SQLiteBackend, dbPath, ""))
	require.Error(t, ClearHistory(schema.SQLiteBackend, "", ""))
	require.NoError(t, ClearHistory(schema.NoneBackend, "", ""))
}

func TestMigrateHistorySQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")

	// Migrate up to the latest version
	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, -1))

	// The migrated tables accept writes through the store
	store, err := NewHistoryStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	runID, err := store.BeginRun(time.Now().UTC(), nil)
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))
	require.NoError(t, store.Close())

	// Roll all the way back down
	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, 0))

	// NoneBackend has nothing to migrate
	require.Error(t, MigrateHistory(schema.NoneBackend, "", -1))
}
