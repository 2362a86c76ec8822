package cmd

import (
	"github.com/spf13/cobra"

	"trendscope/core"
	"trendscope/internal/contract"
)

// metricsCmd displays the formal definitions of both scorers.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display mathematical formulas and definitions for both scorers",
	Long: `Show the formal definitions, formulas, and factor weights for both scorers.

Provides complete transparency into how keywords are ranked, including:
- Scorer purpose and focus
- Factor names and their contribution weights
- Mathematical formula for score calculation
- Custom weights if configured via .trendscope.yaml

No input data is read - this is purely informational.

Use this to:
- Understand what each scorer measures
- Explain scoring logic to your team
- Validate custom weight configurations
- Document scoring methodology

Examples:
  # Show default scoring formulas
  trendscope metrics

  # View with custom weights from config file
  trendscope metrics --config .trendscope.yaml`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMetrics(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
