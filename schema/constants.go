package schema

// Custom string types for type safety.
type (
	// BreakdownKey represents keys used in scoring breakdowns.
	BreakdownKey string

	// OutputMode represents the format of the output.
	OutputMode string

	// ScorerKind represents one of the two weighted scorers.
	ScorerKind string

	// OpportunityLabel places a keyword in the trend/potential matrix.
	OpportunityLabel string

	// LifecycleStage represents where a keyword sits in its demand curve.
	LifecycleStage string

	// TierLabel buckets a 0-100 score into coarse priority tiers.
	TierLabel string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string
)

// Breakdown keys used in the scoring logic.
const (
	BreakdownLevel       BreakdownKey = "level"       // nLevel (current vs historical average)
	BreakdownGrowth      BreakdownKey = "growth"      // nGrowth (recent vs early window)
	BreakdownMomentum    BreakdownKey = "momentum"    // nMomentum (recent slope)
	BreakdownConsistency BreakdownKey = "consistency" // nConsistency (inverse volatility)

	BreakdownAcceleration BreakdownKey = "acceleration" // nAccel (momentum delta)
	BreakdownEarlyStage   BreakdownKey = "early_stage"  // nEarly (lifecycle bonus)
	BreakdownRising       BreakdownKey = "rising"       // nRising (rising/breakout queries)
	BreakdownHeadroom     BreakdownKey = "headroom"     // nHeadroom (room left to grow)
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// Both scorer kinds.
const (
	TrendScorer     ScorerKind = "trend"
	PotentialScorer ScorerKind = "potential"
)

// All opportunity labels.
const (
	EmergingOpportunity    OpportunityLabel = "Emerging"    // low trend, high potential
	StarOpportunity        OpportunityLabel = "Star"        // high trend, high potential
	EstablishedOpportunity OpportunityLabel = "Established" // high trend, low potential
	NicheOpportunity       OpportunityLabel = "Niche"       // low trend, low potential
)

// All lifecycle stages.
const (
	IntroductionStage LifecycleStage = "Introduction"
	GrowthStage       LifecycleStage = "Growth"
	MaturityStage     LifecycleStage = "Maturity"
	DeclineStage      LifecycleStage = "Decline"
)

// All tier labels.
const (
	HighTier    TierLabel = "High"
	MediumTier  TierLabel = "Medium"
	LowTier     TierLabel = "Low"
	VeryLowTier TierLabel = "VeryLow"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllScorerKinds returns a list of both scorer kinds.
var AllScorerKinds = []ScorerKind{TrendScorer, PotentialScorer}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidScorerKinds lists both valid scorer kinds.
var ValidScorerKinds = map[ScorerKind]struct{}{
	TrendScorer:     {},
	PotentialScorer: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidTierLabels lists all valid tier labels, ordered from best to worst.
var ValidTierLabels = []TierLabel{HighTier, MediumTier, LowTier, VeryLowTier}

// GetDefaultWeights returns the default weight map for a given scorer kind.
func GetDefaultWeights(kind ScorerKind) map[BreakdownKey]float64 {
	switch kind {
	case PotentialScorer:
		return map[BreakdownKey]float64{
			BreakdownAcceleration: 0.30,
			BreakdownEarlyStage:   0.25,
			BreakdownRising:       0.25,
			BreakdownHeadroom:     0.20,
		}
	default: // TrendScorer
		return map[BreakdownKey]float64{
			BreakdownLevel:       0.25,
			BreakdownGrowth:      0.30,
			BreakdownMomentum:    0.25,
			BreakdownConsistency: 0.20,
		}
	}
}
