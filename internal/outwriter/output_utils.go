package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"trendscope/internal/contract"
	"trendscope/schema"
	"golang.org/x/term"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// tierLabelFor returns the tier label for a score, colored when enabled.
func tierLabelFor(score float64, useColors bool) string {
	if useColors {
		return contract.GetColorLabel(score)
	}
	return contract.GetPlainLabel(score)
}

// opportunityLabelFor returns the opportunity label, colored when enabled.
func opportunityLabelFor(label schema.OpportunityLabel, useColors bool) string {
	if useColors {
		return contract.GetOpportunityColorLabel(label)
	}
	return string(label)
}

// formatNextPeak renders a peak forecast as "Nov (in 3mo)".
func formatNextPeak(forecast *schema.PeakForecast) string {
	if forecast == nil {
		return "-"
	}
	return fmt.Sprintf("%s (in %dmo)", forecast.Month.String()[:3], forecast.MonthsUntil)
}

// scoreBreakdown holds a key-value pair from a Breakdown map representing a factor's contribution.
type scoreBreakdown struct {
	Name  string  // e.g., "growth", "rising", "headroom"
	Value float64 // The weighted contribution to the score
}

const (
	factorContribMinimum = 0.5
	topNFactors          = 3
)

// formatTopBreakdown computes the top 3 factors that contribute to the
// keyword's scores, pooled across both scorers.
func formatTopBreakdown(r *schema.KeywordReport) string {
	var factors []scoreBreakdown

	// 1. Filter and Convert Maps to Slice. The two breakdown key sets are
	// disjoint, so pooling them is safe.
	for _, breakdown := range []map[schema.BreakdownKey]float64{r.Trend.Breakdown, r.Potential.Breakdown} {
		for k, v := range breakdown {
			// Only include meaningful factors
			if v >= factorContribMinimum {
				factors = append(factors, scoreBreakdown{
					Name:  string(k),
					Value: v,
				})
			}
		}
	}

	if len(factors) == 0 {
		return "Not applicable"
	}

	// 2. Sort the Slice by Value (Contribution) in Descending Order
	sort.Slice(factors, func(i, j int) bool {
		return math.Abs(factors[i].Value) > math.Abs(factors[j].Value)
	})

	// 3. Limit to Top 3 and Format the Output
	var parts []string
	limit := min(len(factors), topNFactors)

	for i := range limit {
		parts = append(parts, factors[i].Name)
	}

	return strings.Join(parts, " > ")
}

// getMaxTableKeywordWidth calculates the maximum width for keywords in table
// output based on terminal width and table configuration.
func getMaxTableKeywordWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 45 // Rank + Trend + Potential + Combined + Tier with borders/padding

	// Add opportunity and lifecycle columns with formatting
	baseWidth += 25

	// Add detail columns with formatting
	if cfg.Detail {
		baseWidth += 40 // Seasonal + Peaks + Amplitude + Next Peak with formatting
	}

	// Add explain column
	if cfg.Explain {
		baseWidth += 35 // Explain column with formatting
	}

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 10

	// Calculate available space for the keyword
	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable keyword width
		return 15
	}
	if available > 70 {
		// Maximum keyword width to prevent overly long cells
		return 70
	}
	return available
}
