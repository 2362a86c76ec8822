package core

import "trendscope/schema"

// scorePotential computes the potential score: how much growth is likely
// still ahead. It consumes the lifecycle stage produced by the classifier,
// never the other way around.
func (e *Engine) scorePotential(s schema.Series, signals schema.AuxiliarySignals, stage schema.LifecycleStage) schema.ScoreResult {
	weights := e.params.PotentialWeights
	if len(s) == 0 {
		return insufficientResult(weights)
	}

	subs := map[schema.BreakdownKey]float64{
		schema.BreakdownAcceleration: e.accelerationSubscore(s),
		schema.BreakdownEarlyStage:   schema.EarlyStageBonus[stage],
		schema.BreakdownRising:       e.risingSubscore(signals),
		schema.BreakdownHeadroom:     100 - e.levelSubscore(s),
	}
	return weighted(subs, weights)
}

// risingSubscore saturates the rising-query count into [0, 100]. Breakout
// queries count several times over: a provider flagging a related query as
// breakout is a much stronger signal than ordinary rising interest.
func (e *Engine) risingSubscore(signals schema.AuxiliarySignals) float64 {
	if e.params.RisingSaturation <= 0 {
		return 0
	}
	effective := float64(signals.RisingQueries) + float64(signals.BreakoutQueries)*e.params.BreakoutWeight
	return clamp01(effective/e.params.RisingSaturation) * 100
}
