package core

import "trendscope/schema"

// scoreTrend computes the trend score: how strong and steady current
// demand is relative to the keyword's own history.
func (e *Engine) scoreTrend(s schema.Series) schema.ScoreResult {
	weights := e.params.TrendWeights
	if len(s) == 0 {
		return insufficientResult(weights)
	}

	subs := map[schema.BreakdownKey]float64{
		schema.BreakdownLevel:       e.levelSubscore(s),
		schema.BreakdownGrowth:      growthSubscore(s),
		schema.BreakdownMomentum:    e.momentumSubscore(s),
		schema.BreakdownConsistency: consistencySubscore(s),
	}
	return weighted(subs, weights)
}

// weighted folds independent sub-scores into a final result. Each
// breakdown entry holds the weighted contribution, so summing the
// breakdown reproduces the unrounded score.
func weighted(subs, weights map[schema.BreakdownKey]float64) schema.ScoreResult {
	breakdown := make(map[schema.BreakdownKey]float64, len(weights))
	var raw float64
	for key, w := range weights {
		contribution := w * clamp100(subs[key])
		breakdown[key] = contribution
		raw += contribution
	}
	return schema.ScoreResult{
		Score:     roundScore(raw),
		Breakdown: breakdown,
	}
}

// insufficientResult is the degenerate result for an empty normalized
// series: zero score, zeroed breakdown, flag set.
func insufficientResult(weights map[schema.BreakdownKey]float64) schema.ScoreResult {
	breakdown := make(map[schema.BreakdownKey]float64, len(weights))
	for key := range weights {
		breakdown[key] = 0
	}
	return schema.ScoreResult{
		Breakdown:        breakdown,
		InsufficientData: true,
	}
}
