package core

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"trendscope/internal/contract"
	"trendscope/schema"
)

// ExecuteCheck runs the check command for CI/CD gating.
// It scores all keywords, checks them against the configured gate thresholds,
// and exits non-zero if any keyword falls below a threshold.
func ExecuteCheck(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()

	reports, err := runScoringCore(ctx, cfg, mgr)
	if err != nil {
		return err
	}

	result := evaluateGates(reports, cfg.GateThresholds)
	printGateResult(&result, time.Since(start))

	if !result.Passed {
		fmt.Printf("%d violation(s) found\n", len(result.Violations))
		os.Exit(1)
	}
	return nil
}

// evaluateGates checks every report against the configured minimums.
// A threshold of zero disables that gate.
func evaluateGates(reports []schema.KeywordReport, thresholds map[string]float64) schema.GateResult {
	result := schema.GateResult{
		TotalKeywords: len(reports),
		Thresholds:    thresholds,
	}

	for _, report := range reports {
		gates := []struct {
			name  string
			score float64
		}{
			{contract.GateTrend, float64(report.Trend.Score)},
			{contract.GatePotential, float64(report.Potential.Score)},
			{contract.GateCombined, report.Combined},
		}
		for _, gate := range gates {
			threshold := thresholds[gate.name]
			if threshold <= 0 {
				continue
			}
			if gate.score < threshold {
				result.Violations = append(result.Violations, schema.GateViolation{
					Keyword:   report.Keyword,
					Gate:      gate.name,
					Score:     gate.score,
					Threshold: threshold,
				})
			}
		}
	}

	result.Passed = len(result.Violations) == 0
	return result
}

// printGateResult prints the gate result in a concise format suitable for CI/CD.
func printGateResult(result *schema.GateResult, duration time.Duration) {
	fmt.Println("Gate Check Results:")
	fmt.Printf("  Thresholds: trend=%.1f, potential=%.1f, combined=%.1f\n",
		result.Thresholds[contract.GateTrend],
		result.Thresholds[contract.GatePotential],
		result.Thresholds[contract.GateCombined])
	fmt.Printf("\nChecked %d keywords in %v\n\n", result.TotalKeywords, duration)

	if result.Passed {
		fmt.Printf("All keywords passed gate checks\n")
		return
	}

	printGateFailure(result)
}

// printGateFailure prints the failure case output, grouped by gate.
func printGateFailure(result *schema.GateResult) {
	fmt.Printf("Gate check failed: %d violation(s) found across %d keywords\n\n",
		len(result.Violations), result.TotalKeywords)

	gateGroups := make(map[string][]schema.GateViolation)
	for _, violation := range result.Violations {
		gateGroups[violation.Gate] = append(gateGroups[violation.Gate], violation)
	}

	for _, gate := range []string{contract.GateTrend, contract.GatePotential, contract.GateCombined} {
		violations := gateGroups[gate]
		if len(violations) == 0 {
			continue
		}

		// Sort by score ascending so the worst offenders come first
		sort.Slice(violations, func(i, j int) bool {
			return violations[i].Score < violations[j].Score
		})

		fmt.Printf("Gate: %s (%d violations)\n", gate, len(violations))

		// Show top 5 violations, with "+X more" if needed
		maxToShow := 5
		for i, v := range violations {
			if i >= maxToShow {
				fmt.Printf("  ... and %d more\n", len(violations)-i)
				break
			}
			fmt.Printf("  - %s (score: %.1f < threshold: %.1f)\n", v.Keyword, v.Score, v.Threshold)
		}
		fmt.Println()
	}
}
