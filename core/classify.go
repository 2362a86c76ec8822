package core

import (
	"sort"

	"trendscope/schema"
)

// classifyOpportunity places a keyword in the 2x2 opportunity matrix.
func (e *Engine) classifyOpportunity(trendScore, potentialScore int) schema.OpportunityLabel {
	highTrend := float64(trendScore) >= e.params.MatrixThreshold
	highPotential := float64(potentialScore) >= e.params.MatrixThreshold
	switch {
	case highTrend && highPotential:
		return schema.StarOpportunity
	case highPotential:
		return schema.EmergingOpportunity
	case highTrend:
		return schema.EstablishedOpportunity
	default:
		return schema.NicheOpportunity
	}
}

// classifyLifecycle derives the demand-curve stage from the direction of
// the recent window and the current level. A flat window with low level is
// a tie, broken by comparing the latest value against the historical
// median: above it means the keyword has already had its run.
func (e *Engine) classifyLifecycle(s schema.Series) schema.LifecycleStage {
	if len(s) == 0 {
		return schema.IntroductionStage
	}

	direction := slope(momentumWindow(s))
	levelHigh := e.levelSubscore(s) >= 50

	switch {
	case direction > e.params.FlatSlopeEpsilon:
		if levelHigh {
			return schema.GrowthStage
		}
		return schema.IntroductionStage
	case direction < -e.params.FlatSlopeEpsilon:
		return schema.DeclineStage
	case levelHigh:
		return schema.MaturityStage
	default:
		if s[len(s)-1].Value > median(seriesValues(s)) {
			return schema.MaturityStage
		}
		return schema.IntroductionStage
	}
}

// median returns the middle value of the slice, or 0 when empty.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
