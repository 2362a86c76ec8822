package schema

// Engine tuning defaults. These are the knobs the scorers and the
// seasonality analyzer run with unless overridden through configuration.
const (
	// DefaultLevelFloor and DefaultLevelCeiling bound the saturating ramp
	// for the level sub-score: last/mean at or below the floor scores 0,
	// at or above the ceiling scores 100.
	DefaultLevelFloor   = 0.5
	DefaultLevelCeiling = 2.0

	// DefaultMomentumScale converts a time-normalized slope (interest
	// points per period) into sub-score points around the 50 midpoint.
	DefaultMomentumScale = 5.0

	// DefaultAccelerationScale converts a slope delta into sub-score
	// points around the 50 midpoint.
	DefaultAccelerationScale = 5.0

	// DefaultPeakThreshold marks a month as a peak when its mean exceeds
	// the overall mean by this factor.
	DefaultPeakThreshold = 1.3

	// DefaultMinAmplitude is the minimum peak/trough ratio for a series
	// to count as seasonal.
	DefaultMinAmplitude = 1.5

	// DefaultMatrixThreshold splits high from low on both axes of the
	// opportunity matrix.
	DefaultMatrixThreshold = 50.0

	// DefaultRisingSaturation is the rising-query count that saturates
	// the rising sub-score at 100.
	DefaultRisingSaturation = 10.0

	// DefaultBreakoutWeight counts one breakout query as this many
	// ordinary rising queries.
	DefaultBreakoutWeight = 3.0

	// DefaultFlatSlopeEpsilon is the absolute slope below which a recent
	// window is considered flat for lifecycle purposes.
	DefaultFlatSlopeEpsilon = 0.5

	// DefaultTrendBlend and DefaultPotentialBlend weight the combined
	// opportunity score. Potential is weighted heavier on purpose: the
	// tool exists to surface keywords before they top out.
	DefaultTrendBlend     = 0.4
	DefaultPotentialBlend = 0.6

	// BreakoutGrowthCeiling is the synthetic related-growth percentage
	// substituted for breakout sentinels by the loader.
	BreakoutGrowthCeiling = 5000.0
)

// Tier cutoffs for 0-100 scores.
const (
	HighTierCutoff   = 75.0
	MediumTierCutoff = 55.0
	LowTierCutoff    = 35.0
)

// EarlyStageBonus maps a lifecycle stage to its early-stage sub-score.
// Younger stages score higher because they leave more upside.
var EarlyStageBonus = map[LifecycleStage]float64{
	IntroductionStage: 100,
	GrowthStage:       75,
	MaturityStage:     35,
	DeclineStage:      10,
}

// EngineParams holds every tunable the engine consumes. A validated
// params value is immutable for the lifetime of an Engine.
type EngineParams struct {
	LevelFloor        float64
	LevelCeiling      float64
	MomentumScale     float64
	AccelerationScale float64
	PeakThreshold     float64
	MinAmplitude      float64
	MatrixThreshold   float64
	RisingSaturation  float64
	BreakoutWeight    float64
	FlatSlopeEpsilon  float64
	TrendBlend        float64
	PotentialBlend    float64

	TrendWeights     map[BreakdownKey]float64
	PotentialWeights map[BreakdownKey]float64
}

// DefaultEngineParams returns the engine defaults. Callers mutate the
// returned value freely before handing it to an Engine.
func DefaultEngineParams() EngineParams {
	return EngineParams{
		LevelFloor:        DefaultLevelFloor,
		LevelCeiling:      DefaultLevelCeiling,
		MomentumScale:     DefaultMomentumScale,
		AccelerationScale: DefaultAccelerationScale,
		PeakThreshold:     DefaultPeakThreshold,
		MinAmplitude:      DefaultMinAmplitude,
		MatrixThreshold:   DefaultMatrixThreshold,
		RisingSaturation:  DefaultRisingSaturation,
		BreakoutWeight:    DefaultBreakoutWeight,
		FlatSlopeEpsilon:  DefaultFlatSlopeEpsilon,
		TrendBlend:        DefaultTrendBlend,
		PotentialBlend:    DefaultPotentialBlend,
		TrendWeights:      GetDefaultWeights(TrendScorer),
		PotentialWeights:  GetDefaultWeights(PotentialScorer),
	}
}
