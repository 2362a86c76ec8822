// Package core has the scoring engine for keyword search-interest series.
// Everything in this package is pure and deterministic: identical inputs
// always produce identical reports, and nothing here touches the clock,
// the filesystem or the network.
package core

import (
	"math"

	"trendscope/schema"
)

// Engine evaluates keyword inputs against a fixed set of parameters.
// The params value is copied on construction and never mutated, so a
// single Engine is safe for concurrent use.
type Engine struct {
	params schema.EngineParams
}

// NewEngine returns an engine bound to the given parameters.
func NewEngine(params schema.EngineParams) *Engine {
	return &Engine{params: params}
}

// NewDefaultEngine returns an engine with default parameters.
func NewDefaultEngine() *Engine {
	return NewEngine(schema.DefaultEngineParams())
}

// Params returns a copy of the engine's parameters.
func (e *Engine) Params() schema.EngineParams {
	return e.params
}

// ComputeReport runs the full pipeline for one keyword: trend scoring,
// lifecycle classification, potential scoring, seasonality analysis and
// the opportunity matrix. The pipeline is a DAG: potential depends on
// lifecycle, lifecycle depends on the normalized series, and nothing
// feeds back.
func (e *Engine) ComputeReport(input schema.KeywordInput) schema.KeywordReport {
	series := NormalizeSeries(input.Points)

	trend := e.scoreTrend(series)
	stage := e.classifyLifecycle(series)
	potential := e.scorePotential(series, input.Signals, stage)
	seasonality := e.AnalyzeSeasonality(series)
	opportunity := e.classifyOpportunity(trend.Score, potential.Score)

	combined := e.params.TrendBlend*float64(trend.Score) + e.params.PotentialBlend*float64(potential.Score)

	return schema.KeywordReport{
		Keyword:     input.Keyword,
		Trend:       trend,
		Potential:   potential,
		Opportunity: opportunity,
		Lifecycle:   stage,
		Seasonality: seasonality,
		Combined:    combined,
		Tier:        schema.TierForScore(combined),
	}
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clamp100 clamps v to [0, 100].
func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// roundScore rounds a raw weighted score into the final [0, 100] integer.
func roundScore(raw float64) int {
	return int(math.Round(clamp100(raw)))
}
