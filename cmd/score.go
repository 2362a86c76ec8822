package cmd

import (
	"github.com/spf13/cobra"

	"trendscope/core"
	"trendscope/internal/contract"
)

// scoreCmd performs keyword-level trend scoring.
var scoreCmd = &cobra.Command{
	Use:   "score [input-path]",
	Short: "Show the top keywords ranked by combined trend and potential score.",
	Long: `Score keyword search-interest series and rank them by combined score.

Computes a Trend Score (current strength) and Potential Score (future upside)
for every keyword in the input, helping you:
- Spot keywords that are rising before they peak
- Separate durable demand from short-lived spikes
- Compare early-stage opportunities against established terms
- Understand exactly which factors drive each score

Keywords are ranked by the combined score, which blends trend and potential
with potential weighted heavier.

Examples:
  # Score every keyword in a directory of series files
  trendscope score ./data --limit 20

  # Focus on a few keywords
  trendscope score ./data -k "matcha,yerba mate"

  # Include seasonality columns and factor breakdowns
  trendscope score ./data --detail --explain

  # Export findings to CSV for tracking
  trendscope score ./data --output csv --output-file scores.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScore(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run keyword scoring", err)
		}
	},
}
