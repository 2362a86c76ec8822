package schema

// MetricsScorer describes one scorer for the metrics display.
type MetricsScorer struct {
	Name       string   `json:"name"`
	Purpose    string   `json:"purpose"`
	Factors    []string `json:"factors"`
	FactorKeys []string `json:"factor_keys"`
}

// MetricsScorerWithData combines a scorer description with its active weights.
type MetricsScorerWithData struct {
	MetricsScorer
	Weights map[string]float64 `json:"weights"`
	Formula string             `json:"formula"`
}

// MetricsRenderModel is the complete render model for the metrics display.
type MetricsRenderModel struct {
	Title               string                  `json:"title"`
	Description         string                  `json:"description"`
	Scorers             []MetricsScorerWithData `json:"scorers"`
	SpecialRelationship map[string]string       `json:"special_relationship"`
}
