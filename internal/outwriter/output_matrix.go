package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"trendscope/internal/contract"
	"trendscope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// quadrantOrder fixes the display order of the opportunity quadrants,
// most actionable first.
var quadrantOrder = []schema.OpportunityLabel{
	schema.StarOpportunity,
	schema.EmergingOpportunity,
	schema.EstablishedOpportunity,
	schema.NicheOpportunity,
}

// quadrantHints maps each quadrant to a short action hint.
var quadrantHints = map[schema.OpportunityLabel]string{
	schema.StarOpportunity:        "strong now and still growing",
	schema.EmergingOpportunity:    "early signal, watch closely",
	schema.EstablishedOpportunity: "proven demand, limited upside",
	schema.NicheOpportunity:       "low priority",
}

// PrintMatrixResults outputs keywords grouped into opportunity quadrants,
// dispatching based on the output format configured.
func PrintMatrixResults(reports []schema.KeywordReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeMatrixJSONResults(reports, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeMatrixCSVResults(reports, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMatrixTable(reports, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// groupByQuadrant buckets reports by their opportunity label, preserving
// the incoming rank order inside each bucket.
func groupByQuadrant(reports []schema.KeywordReport) map[schema.OpportunityLabel][]schema.KeywordReport {
	quadrants := make(map[schema.OpportunityLabel][]schema.KeywordReport)
	for _, r := range reports {
		quadrants[r.Opportunity] = append(quadrants[r.Opportunity], r)
	}
	return quadrants
}

// writeMatrixJSONResults handles opening the file and calling the JSON writer.
func writeMatrixJSONResults(reports []schema.KeywordReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForMatrix(w, reports, cfg)
	}, "Wrote JSON")
}

// writeMatrixCSVResults handles opening the file and calling the CSV writer.
func writeMatrixCSVResults(reports []schema.KeywordReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"quadrant", "keyword", "trend_score", "potential_score", "combined", "lifecycle"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			quadrants := groupByQuadrant(reports)
			for _, label := range quadrantOrder {
				for _, r := range quadrants[label] {
					rec := []string{
						string(label),
						r.Keyword,
						strconv.Itoa(r.Trend.Score),
						strconv.Itoa(r.Potential.Score),
						fmtFloat(r.Combined),
						string(r.Lifecycle),
					}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeMatrixTable generates and writes one table per non-empty quadrant.
func writeMatrixTable(reports []schema.KeywordReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	quadrants := groupByQuadrant(reports)

	if _, err := fmt.Fprintf(writer, "Opportunity Matrix (threshold: %.0f)\n\n", cfg.Params.MatrixThreshold); err != nil {
		return err
	}

	for _, label := range quadrantOrder {
		group := quadrants[label]
		if len(group) == 0 {
			continue
		}

		name := opportunityLabelFor(label, cfg.UseColors)
		if _, err := fmt.Fprintf(writer, "%s (%d): %s\n", name, len(group), quadrantHints[label]); err != nil {
			return err
		}

		table := tablewriter.NewWriter(writer)
		table.Header([]string{"Keyword", "Trend", "Potential", "Combined", "Lifecycle"})
		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})

		var data [][]string
		for _, r := range group {
			row := []string{
				contract.TruncateKeyword(r.Keyword, getMaxTableKeywordWidth(cfg)),
				strconv.Itoa(r.Trend.Score),
				strconv.Itoa(r.Potential.Score),
				fmtFloat(r.Combined),
				string(r.Lifecycle),
			}
			data = append(data, row)
		}

		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(writer, "\n"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "Scoring completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeJSONResultsForMatrix writes the quadrant groupings in JSON format.
func writeJSONResultsForMatrix(w io.Writer, reports []schema.KeywordReport, cfg *contract.Config) error {
	type JSONMatrixEntry struct {
		Keyword        string  `json:"keyword"`
		TrendScore     int     `json:"trend_score"`
		PotentialScore int     `json:"potential_score"`
		Combined       float64 `json:"combined"`
		Lifecycle      string  `json:"lifecycle"`
	}
	type JSONMatrixQuadrant struct {
		Quadrant string            `json:"quadrant"`
		Hint     string            `json:"hint"`
		Count    int               `json:"count"`
		Keywords []JSONMatrixEntry `json:"keywords"`
	}
	type JSONMatrixResult struct {
		Threshold float64              `json:"threshold"`
		Quadrants []JSONMatrixQuadrant `json:"quadrants"`
	}

	quadrants := groupByQuadrant(reports)
	output := JSONMatrixResult{Threshold: cfg.Params.MatrixThreshold}
	for _, label := range quadrantOrder {
		group := quadrants[label]
		entries := make([]JSONMatrixEntry, len(group))
		for i, r := range group {
			entries[i] = JSONMatrixEntry{
				Keyword:        r.Keyword,
				TrendScore:     r.Trend.Score,
				PotentialScore: r.Potential.Score,
				Combined:       r.Combined,
				Lifecycle:      string(r.Lifecycle),
			}
		}
		output.Quadrants = append(output.Quadrants, JSONMatrixQuadrant{
			Quadrant: string(label),
			Hint:     quadrantHints[label],
			Count:    len(group),
			Keywords: entries,
		})
	}

	return writeJSON(w, output)
}
