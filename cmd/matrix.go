package cmd

import (
	"github.com/spf13/cobra"

	"trendscope/core"
	"trendscope/internal/contract"
)

// matrixCmd groups scored keywords into opportunity quadrants.
var matrixCmd = &cobra.Command{
	Use:   "matrix [input-path]",
	Short: "Group keywords into opportunity quadrants (Star, Emerging, Established, Niche).",
	Long: `Place every scored keyword into an opportunity quadrant.

Keywords are split by whether their trend and potential scores clear the
matrix threshold (50 by default, tunable via the config file):
- Star        - high trend, high potential: ride the wave
- Emerging    - low trend, high potential: get in early
- Established - high trend, low potential: stable but crowded
- Niche       - low trend, low potential: small or fading

Examples:
  # Show the full opportunity matrix
  trendscope matrix ./data

  # Matrix for a subset of keywords
  trendscope matrix ./data -k "matcha,kombucha,cold brew"

  # Export quadrants as JSON for dashboards
  trendscope matrix ./data --output json --output-file matrix.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMatrix(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run matrix analysis", err)
		}
	},
}
