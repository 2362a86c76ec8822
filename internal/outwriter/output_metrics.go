package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"trendscope/internal/contract"
	"trendscope/schema"
)

// getDisplayNameForScorer returns the display name with emoji for a given scorer name.
func getDisplayNameForScorer(scorerName string) string {
	switch scorerName {
	case "trend":
		return "📈 TREND"
	case "potential":
		return "🚀 POTENTIAL"
	default:
		return strings.ToUpper(scorerName)
	}
}

// getDisplayWeightsForScorer returns the weights to display for a given scorer.
// Uses active weights if available, otherwise falls back to defaults.
func getDisplayWeightsForScorer(kind schema.ScorerKind, activeWeights map[schema.ScorerKind]map[schema.BreakdownKey]float64) map[string]float64 {
	// Start with default weights
	defaultWeights := schema.GetDefaultWeights(kind)

	weights := make(map[string]float64)
	for k, v := range defaultWeights {
		weights[string(k)] = v
	}

	// Override with active weights if provided
	if activeWeights != nil {
		if kindWeights, ok := activeWeights[kind]; ok {
			// Only override weights that are actually customized
			for k, v := range kindWeights {
				weights[string(k)] = v
			}
		}
	}

	return weights
}

// formatWeights formats weights for display in formulas.
func formatWeights(weights map[string]float64, factorKeys []string) string {
	var parts []string
	for _, key := range factorKeys {
		if weight, ok := weights[key]; ok && weight > 0 {
			parts = append(parts, fmt.Sprintf("%.2f*%s", weight, key))
		}
	}
	return strings.Join(parts, "+")
}

// PrintMetricsDefinitions displays the formal definitions of both scorers.
// This is a static display that does not require any input data.
func PrintMetricsDefinitions(activeWeights map[schema.ScorerKind]map[schema.BreakdownKey]float64, cfg *contract.Config) error {
	// Build the complete render model with all processed data
	renderModel := buildMetricsRenderModel(activeWeights)

	switch cfg.Output {
	case schema.JSONOut:
		return printMetricsJSON(renderModel, cfg)
	case schema.CSVOut:
		return printMetricsCSV(renderModel, cfg)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printMetricsText(w, renderModel, cfg)
		}, "Wrote text")
	}
}

// printMetricsText displays metrics in human-readable text format.
func printMetricsText(w io.Writer, renderModel *schema.MetricsRenderModel, _ *contract.Config) error {
	if _, err := fmt.Fprintf(w, "📊 Trendscope Scorers\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "=====================\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", renderModel.Description); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}

	for _, scorer := range renderModel.Scorers {
		// Add emoji prefix for display
		displayName := getDisplayNameForScorer(scorer.Name)
		if _, err := fmt.Fprintf(w, "%s: %s\n", displayName, scorer.Purpose); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Factors: %s\n", strings.Join(scorer.Factors, ", ")); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Formula: Score = %s\n", scorer.Formula); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\n"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "🔗 Special Relationship\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", renderModel.SpecialRelationship["description"]); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", renderModel.SpecialRelationship["note"]); err != nil {
		return err
	}

	return nil
}

// printMetricsJSON displays metrics in JSON format.
func printMetricsJSON(renderModel *schema.MetricsRenderModel, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, renderModel)
	}, "Wrote JSON")
}

// printMetricsCSV displays metrics in CSV format.
func printMetricsCSV(renderModel *schema.MetricsRenderModel, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"scorer", "purpose", "factors", "formula"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, scorer := range renderModel.Scorers {
				rec := []string{
					scorer.Name,
					scorer.Purpose,
					strings.Join(scorer.Factors, "|"),
					scorer.Formula,
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// buildMetricsRenderModel constructs the complete render model with all processed data.
func buildMetricsRenderModel(activeWeights map[schema.ScorerKind]map[schema.BreakdownKey]float64) *schema.MetricsRenderModel {
	scorers := []schema.MetricsScorer{
		{
			Name:       string(schema.TrendScorer),
			Purpose:    "Current strength - how established the demand is today",
			Factors:    []string{"Level", "Growth", "Momentum", "Consistency"},
			FactorKeys: []string{string(schema.BreakdownLevel), string(schema.BreakdownGrowth), string(schema.BreakdownMomentum), string(schema.BreakdownConsistency)},
		},
		{
			Name:       string(schema.PotentialScorer),
			Purpose:    "Future upside - how much room the keyword has left to grow",
			Factors:    []string{"Acceleration", "EarlyStage", "Rising", "Headroom"},
			FactorKeys: []string{string(schema.BreakdownAcceleration), string(schema.BreakdownEarlyStage), string(schema.BreakdownRising), string(schema.BreakdownHeadroom)},
		},
	}
	scorersWithData := make([]schema.MetricsScorerWithData, len(scorers))

	for i, scorer := range scorers {
		weights := getDisplayWeightsForScorer(schema.ScorerKind(scorer.Name), activeWeights)
		formula := formatWeights(weights, scorer.FactorKeys)

		scorersWithData[i] = schema.MetricsScorerWithData{
			MetricsScorer: scorer,
			Weights:       weights,
			Formula:       formula,
		}
	}

	return &schema.MetricsRenderModel{
		Title:       "Trendscope Scorers",
		Description: "All scores = weighted sum of normalized factors",
		Scorers:     scorersWithData,
		SpecialRelationship: map[string]string{
			"description": fmt.Sprintf("Combined Score = %.2f*Trend + %.2f*Potential", schema.DefaultTrendBlend, schema.DefaultPotentialBlend),
			"note":        "(Potential is weighted heavier to surface keywords before they top out)",
		},
	}
}
