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

// PrintSeasonalityResults outputs the seasonality profile for each keyword,
// dispatching based on the output format configured.
func PrintSeasonalityResults(reports []schema.KeywordReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeSeasonalityJSONResults(reports, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeSeasonalityCSVResults(reports, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSeasonalityTable(reports, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeSeasonalityJSONResults handles opening the file and calling the JSON writer.
func writeSeasonalityJSONResults(reports []schema.KeywordReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForSeasonality(w, reports)
	}, "Wrote JSON")
}

// writeSeasonalityCSVResults handles opening the file and calling the CSV writer.
func writeSeasonalityCSVResults(reports []schema.KeywordReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"rank", "keyword", "is_seasonal", "peak_months", "amplitude", "next_peak_month", "next_peak_months_until"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for i, r := range reports {
				nextPeakMonth := ""
				nextPeakUntil := ""
				if r.Seasonality.NextPeak != nil {
					nextPeakMonth = r.Seasonality.NextPeak.Month.String()
					nextPeakUntil = strconv.Itoa(r.Seasonality.NextPeak.MonthsUntil)
				}
				rec := []string{
					strconv.Itoa(i + 1),
					r.Keyword,
					strconv.FormatBool(r.Seasonality.IsSeasonal),
					schema.FormatMonths(r.Seasonality.PeakMonths),
					formatAmplitude(r.Seasonality, fmtFloat),
					nextPeakMonth,
					nextPeakUntil,
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeSeasonalityTable generates and writes the human-readable table.
func writeSeasonalityTable(reports []schema.KeywordReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"Rank", "Keyword", "Seasonal", "Peaks", "Amplitude", "Next Peak"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, r := range reports {
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncateKeyword(r.Keyword, getMaxTableKeywordWidth(cfg)),
			formatSeasonalFlag(r.Seasonality.IsSeasonal),
			schema.FormatMonths(r.Seasonality.PeakMonths),
			formatAmplitude(r.Seasonality, fmtFloat),
			formatNextPeak(r.Seasonality.NextPeak),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	seasonal := 0
	for _, r := range reports {
		if r.Seasonality.IsSeasonal {
			seasonal++
		}
	}
	if _, err := fmt.Fprintf(writer, "Showing %d keywords (%d with seasonal patterns)\n", len(reports), seasonal); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scoring completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeJSONResultsForSeasonality writes the seasonality profiles in JSON format.
func writeJSONResultsForSeasonality(w io.Writer, reports []schema.KeywordReport) error {
	type JSONSeasonalityResult struct {
		Rank    int    `json:"rank"`
		Keyword string `json:"keyword"`
		schema.SeasonalityProfile
	}

	output := make([]JSONSeasonalityResult, len(reports))
	for i, r := range reports {
		output[i] = JSONSeasonalityResult{
			Rank:               i + 1,
			Keyword:            r.Keyword,
			SeasonalityProfile: r.Seasonality,
		}
	}

	return writeJSON(w, output)
}
