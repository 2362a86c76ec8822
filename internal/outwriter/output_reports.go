package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"trendscope/internal/contract"
	"trendscope/internal/parquet"
	"trendscope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintKeywordReports outputs the ranked keyword reports, dispatching based on
// the output format configured.
func PrintKeywordReports(reports []schema.KeywordReport, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeReportJSONResults(reports, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeReportCSVResults(reports, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeReportParquetResults(reports, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(reports, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeReportJSONResults handles opening the file and calling the JSON writer.
func writeReportJSONResults(reports []schema.KeywordReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForReports(w, reports)
	}, "Wrote JSON")
}

// writeReportCSVResults handles opening the file and calling the CSV writer.
func writeReportCSVResults(reports []schema.KeywordReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForReports(csvWriter, reports, fmtFloat)
	}, "Wrote CSV")
}

// writeReportParquetResults writes the reports as a Parquet file. Parquet is
// a binary columnar format, so a concrete output file is required.
func writeReportParquetResults(reports []schema.KeywordReport, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("parquet output requires --output-file")
	}

	scoredAt := time.Now().UTC()
	scores := make([]parquet.KeywordScore, len(reports))
	for i, r := range reports {
		scores[i] = parquet.KeywordScore{
			Keyword:        r.Keyword,
			ScoredAt:       scoredAt,
			TrendScore:     int32(r.Trend.Score),
			PotentialScore: int32(r.Potential.Score),
			Combined:       r.Combined,
			Opportunity:    string(r.Opportunity),
			Lifecycle:      string(r.Lifecycle),
			IsSeasonal:     r.Seasonality.IsSeasonal,
			Tier:           string(r.Tier),
		}
	}

	if err := parquet.WriteKeywordScoresParquet(scores, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}

// writeReportTable generates and writes the human-readable table.
func writeReportTable(reports []schema.KeywordReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Keyword", "Trend", "Potential", "Combined", "Tier", "Opportunity", "Lifecycle"}
	if cfg.Detail {
		headers = append(headers, "Seasonal", "Peaks", "Amplitude", "Next Peak")
	}
	if cfg.Explain {
		headers = append(headers, "Explain")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for i, r := range reports {
		// Prepare the row data as a slice of strings
		row := []string{
			strconv.Itoa(i + 1), // Rank
			contract.TruncateKeyword(r.Keyword, getMaxTableKeywordWidth(cfg)), // Keyword
			strconv.Itoa(r.Trend.Score),                        // Trend
			strconv.Itoa(r.Potential.Score),                    // Potential
			fmtFloat(r.Combined),                               // Combined
			tierLabelFor(r.Combined, cfg.UseColors),            // Tier
			opportunityLabelFor(r.Opportunity, cfg.UseColors),  // Opportunity
			string(r.Lifecycle),                                // Lifecycle
		}
		if cfg.Detail {
			row = append(
				row,
				formatSeasonalFlag(r.Seasonality.IsSeasonal),    // Seasonal
				schema.FormatMonths(r.Seasonality.PeakMonths),   // Peaks
				formatAmplitude(r.Seasonality, fmtFloat),        // Amplitude
				formatNextPeak(r.Seasonality.NextPeak),          // Next Peak
			)
		}
		if cfg.Explain {
			topOnes := formatTopBreakdown(&r)
			row = append(row, topOnes) // Breakdown explanation
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	// Compute summary stats
	numKeywords := len(reports)
	seasonal := 0
	insufficient := 0
	for _, r := range reports {
		if r.Seasonality.IsSeasonal {
			seasonal++
		}
		if r.Trend.InsufficientData {
			insufficient++
		}
	}
	if _, err := fmt.Fprintf(writer, "Showing top %d keywords (seasonal: %d, insufficient data: %d)\n", numKeywords, seasonal, insufficient); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scoring completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForReports writes the keyword reports in CSV format.
func writeCSVResultsForReports(w *csv.Writer, reports []schema.KeywordReport, fmtFloat func(float64) string) error {
	// CSV header
	header := []string{
		"rank",
		"keyword",
		"trend_score",
		"potential_score",
		"combined",
		"tier",
		"opportunity",
		"lifecycle",
		"is_seasonal",
		"peak_months",
		"amplitude",
		"next_peak",
		"insufficient_data",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, r := range reports {
		rec := []string{
			strconv.Itoa(i + 1),                               // Rank
			r.Keyword,                                         // Keyword
			strconv.Itoa(r.Trend.Score),                       // Trend Score
			strconv.Itoa(r.Potential.Score),                   // Potential Score
			fmtFloat(r.Combined),                              // Combined Score
			string(r.Tier),                                    // Tier
			string(r.Opportunity),                             // Opportunity Quadrant
			string(r.Lifecycle),                               // Lifecycle Stage
			strconv.FormatBool(r.Seasonality.IsSeasonal),      // Seasonal Flag
			schema.FormatMonths(r.Seasonality.PeakMonths),     // Peak Months
			formatAmplitude(r.Seasonality, fmtFloat),          // Amplitude
			formatNextPeak(r.Seasonality.NextPeak),            // Next Peak
			strconv.FormatBool(r.Trend.InsufficientData),      // Insufficient Data
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForReports writes the keyword reports in JSON format.
func writeJSONResultsForReports(w io.Writer, reports []schema.KeywordReport) error {
	// 1. Prepare the data structure for JSON with rank added
	type JSONKeywordReport struct {
		Rank int `json:"rank"`
		schema.KeywordReport
	}

	output := make([]JSONKeywordReport, len(reports))
	for i, r := range reports {
		output[i] = JSONKeywordReport{
			Rank:          i + 1,
			KeywordReport: r,
		}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}

// formatSeasonalFlag renders the seasonal flag for table output.
func formatSeasonalFlag(isSeasonal bool) string {
	if isSeasonal {
		return "Yes"
	}
	return "No"
}

// formatAmplitude renders the seasonal amplitude, "-" for non-seasonal series.
func formatAmplitude(profile schema.SeasonalityProfile, fmtFloat func(float64) string) string {
	if !profile.IsSeasonal {
		return "-"
	}
	return fmtFloat(profile.Amplitude)
}
