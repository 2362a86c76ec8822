package core

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"trendscope/internal/contract"
	"trendscope/schema"
)

// currentCacheVersion defines the version of the cache schema
const currentCacheVersion = 1

// cachedComputeReport computes a keyword report, using the report cache when
// one is configured. The engine is deterministic, so a cached report is valid
// as long as the series, signals and parameters are unchanged.
func cachedComputeReport(engine *Engine, input schema.KeywordInput, store contract.CacheStore) schema.KeywordReport {
	if store == nil {
		// Fallback to direct computation
		return engine.ComputeReport(input)
	}

	key := generateCacheKey(engine, input)

	// Check for cache hit
	if report := checkCacheHit(store, key); report != nil {
		return *report
	}

	// Cache miss: compute and store
	return computeAndStore(engine, input, store, key)
}

// checkCacheHit attempts to retrieve and validate a cached report
func checkCacheHit(store contract.CacheStore, key string) *schema.KeywordReport {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return nil // Cache miss
	}

	// Validate version and staleness
	if version == currentCacheVersion {
		entryTimestamp := time.Unix(ts, 0)
		if time.Since(entryTimestamp) <= 7*24*time.Hour {
			var report schema.KeywordReport
			if err := json.Unmarshal(data, &report); err == nil {
				return &report // Cache hit
			}
		}
	}

	return nil // Cache miss (stale or version mismatch)
}

// computeAndStore computes the report and stores it in cache
func computeAndStore(engine *Engine, input schema.KeywordInput, store contract.CacheStore, key string) schema.KeywordReport {
	report := engine.ComputeReport(input)

	// Store in cache
	if data, err := json.Marshal(report); err == nil {
		_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
	}

	return report
}

// generateCacheKey creates a unique key from the keyword, its series, its
// signals and the engine parameters. Any change to one of them invalidates
// the cached report.
func generateCacheKey(engine *Engine, input schema.KeywordInput) string {
	var sb strings.Builder
	sb.WriteString(input.Keyword)

	for _, p := range input.Points {
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatInt(p.Timestamp.Unix(), 10))
		sb.WriteByte('=')
		sb.WriteString(strconv.FormatFloat(p.Value, 'g', -1, 64))
	}

	sb.WriteString(fmt.Sprintf(":%d:%g:%d:%d", input.Signals.RisingQueries, input.Signals.RelatedGrowthPct, input.Signals.BreakoutQueries, input.Signals.NewsVolume))

	// JSON map keys are emitted in sorted order, so this fingerprint is stable
	if params, err := json.Marshal(engine.Params()); err == nil {
		sb.WriteByte(':')
		sb.Write(params)
	}

	return fmt.Sprintf("%x", sha256.Sum256([]byte(sb.String())))
}
