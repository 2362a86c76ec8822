package cmd

import (
	"github.com/spf13/cobra"

	"trendscope/core"
	"trendscope/internal/contract"
)

// checkCmd focused on CI/CD policy enforcement.
var checkCmd = &cobra.Command{
	Use:   "check [input-path]",
	Short: "Enforce minimum score gates for automated pipelines (fails on violations)",
	Long: `Score all keywords and enforce minimum score thresholds.

Designed for automated pipelines - fails with non-zero exit code when any
keyword falls below the configured gates. Useful when a keyword portfolio
must stay above a quality bar before publishing or spending.

Default gates: combined score must reach the Low tier cutoff (35.0);
trend and potential gates are disabled until configured.

Use cases:
- Portfolio gates - block publishing lists with weak keywords
- Campaign validation - ensure targets still trend before spend
- Regression alerts - catch keywords decaying below the bar

Examples:
  # Check a keyword portfolio against the default combined gate
  trendscope check ./data

  # Custom thresholds per gate
  trendscope check ./data --gate-override "trend:40,potential:60,combined:55"

  # Gate only a subset of keywords
  trendscope check ./data -k "matcha,kombucha"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// Validation is done in ExecuteCheck
		if err := core.ExecuteCheck(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Policy check failed", err)
		}
	},
}
