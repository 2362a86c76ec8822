package cmd

import (
	"github.com/spf13/cobra"

	"trendscope/core"
	"trendscope/internal/contract"
)

// seasonalityCmd surfaces recurring demand patterns per keyword.
var seasonalityCmd = &cobra.Command{
	Use:   "seasonality [input-path]",
	Short: "Detect recurring seasonal demand patterns and forecast the next peak.",
	Long: `Analyze each keyword's series for recurring seasonal demand patterns.

For keywords with at least a year of data, detects which months reliably
spike above baseline and reports:
- Whether the keyword is seasonal at all
- The months where demand peaks
- The amplitude of the seasonal swing (peak vs trough)
- A forecast of the next expected peak month

Use this to time campaigns, inventory, and content ahead of demand.

Examples:
  # Show seasonality for every keyword
  trendscope seasonality ./data

  # Check one keyword's seasonal profile
  trendscope seasonality ./data -k "pumpkin spice"

  # Export profiles for planning spreadsheets
  trendscope seasonality ./data --output csv --output-file seasons.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSeasonality(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run seasonality analysis", err)
		}
	},
}
