// Package loader reads keyword series files and sanitizes provider quirks
// before anything reaches the scoring engine. This is the only place where
// "Breakout" sentinels, percent strings and junk rows are handled; the
// engine itself only ever sees numeric series.
package loader

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"trendscope/schema"
)

// breakoutSentinel is the growth value some providers emit instead of a
// percentage when a related query grows too fast to measure.
const breakoutSentinel = "breakout"

// Date layouts accepted in input files, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"Jan 2006",
	"Jan 2, 2006",
}

// risingQueryRaw is one entry of a raw rising-query list.
type risingQueryRaw struct {
	Query  string `json:"query"`
	Growth any    `json:"growth"`
}

// pointRaw is one raw observation before date/value parsing.
type pointRaw struct {
	Date  string `json:"date"`
	Value any    `json:"value"`
}

// keywordRaw mirrors the JSON document for one keyword. Signals may be
// given pre-aggregated, or derived from the rising-query list.
type keywordRaw struct {
	Keyword       string                   `json:"keyword"`
	Points        []pointRaw               `json:"points"`
	Signals       *schema.AuxiliarySignals `json:"signals"`
	RisingQueries []risingQueryRaw         `json:"rising_queries"`
	NewsVolume    int                      `json:"news_volume"`
}

// LoadInputs reads keyword inputs from a file or from every supported file
// in a directory. JSON files may hold one keyword document or an array of
// them; CSV files hold a single keyword's date,value rows named after the
// file.
func LoadInputs(path string) ([]schema.KeywordInput, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read input path: %w", err)
	}

	if !info.IsDir() {
		return loadFile(path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("cannot list input directory: %w", err)
	}

	var inputs []schema.KeywordInput
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".json", ".csv":
			fileInputs, err := loadFile(filepath.Join(path, entry.Name()))
			if err != nil {
				return nil, err
			}
			inputs = append(inputs, fileInputs...)
		}
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no keyword files found in %s", path)
	}

	// Directory listings are OS-dependent; sort for deterministic runs.
	sort.SliceStable(inputs, func(i, j int) bool {
		return inputs[i].Keyword < inputs[j].Keyword
	})
	return inputs, nil
}

// loadFile dispatches on the file extension.
func loadFile(path string) ([]schema.KeywordInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(f)
	case ".csv":
		keyword := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		input, err := ParseCSV(f, keyword)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return []schema.KeywordInput{input}, nil
	default:
		return nil, fmt.Errorf("unsupported input format for %s (want .json or .csv)", path)
	}
}

// ParseJSON reads one keyword document or an array of them.
func ParseJSON(r io.Reader) ([]schema.KeywordInput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read JSON input: %w", err)
	}

	var raws []keywordRaw
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, fmt.Errorf("invalid JSON keyword array: %w", err)
		}
	} else {
		var single keywordRaw
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("invalid JSON keyword document: %w", err)
		}
		raws = []keywordRaw{single}
	}

	inputs := make([]schema.KeywordInput, 0, len(raws))
	for _, raw := range raws {
		if raw.Keyword == "" {
			return nil, fmt.Errorf("keyword document missing 'keyword' field")
		}
		input := schema.KeywordInput{
			Keyword: raw.Keyword,
			Points:  parsePoints(raw.Points),
			Signals: deriveSignals(raw),
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}

// ParseCSV reads date,value rows for a single keyword. A header row is
// skipped when present, junk rows are dropped.
func ParseCSV(r io.Reader, keyword string) (schema.KeywordInput, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return schema.KeywordInput{}, fmt.Errorf("invalid CSV: %w", err)
	}

	var points schema.Series
	for i, record := range records {
		if len(record) < 2 {
			continue
		}
		ts, ok := parseDate(strings.TrimSpace(record[0]))
		if !ok {
			if i == 0 {
				continue // header row
			}
			continue
		}
		value, ok := parseNumeric(record[1])
		if !ok {
			continue
		}
		points = append(points, schema.TimePoint{Timestamp: ts, Value: value})
	}
	if len(points) == 0 {
		return schema.KeywordInput{}, fmt.Errorf("no usable rows for keyword %q", keyword)
	}
	return schema.KeywordInput{Keyword: keyword, Points: points}, nil
}

// parsePoints converts raw observations, dropping rows whose date or value
// cannot be parsed.
func parsePoints(raws []pointRaw) schema.Series {
	var points schema.Series
	for _, raw := range raws {
		ts, ok := parseDate(raw.Date)
		if !ok {
			continue
		}
		value, ok := parseValue(raw.Value)
		if !ok {
			continue
		}
		points = append(points, schema.TimePoint{Timestamp: ts, Value: value})
	}
	return points
}

// deriveSignals prefers pre-aggregated signals and otherwise folds the raw
// rising-query list into counts. Breakout sentinels are mapped onto a
// synthetic growth ceiling and counted separately so the engine can weight
// them heavier.
func deriveSignals(raw keywordRaw) schema.AuxiliarySignals {
	if raw.Signals != nil {
		return *raw.Signals
	}

	signals := schema.AuxiliarySignals{NewsVolume: raw.NewsVolume}
	for _, rq := range raw.RisingQueries {
		signals.RisingQueries++
		growth, breakout := parseGrowth(rq.Growth)
		if breakout {
			signals.BreakoutQueries++
			growth = schema.BreakoutGrowthCeiling
		}
		if growth > signals.RelatedGrowthPct {
			signals.RelatedGrowthPct = growth
		}
	}
	return signals
}

// parseGrowth parses a growth field that may be a number, a percent string
// like "+250%", or the breakout sentinel.
func parseGrowth(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case float64:
		return t, false
	case string:
		if strings.EqualFold(strings.TrimSpace(t), breakoutSentinel) {
			return 0, true
		}
		if parsed, ok := parseNumeric(t); ok {
			return parsed, false
		}
		return 0, false
	default:
		return 0, false
	}
}

// parseValue parses an observation value that may be numeric or a string.
func parseValue(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		return parseNumeric(t)
	default:
		return 0, false
	}
}

// parseNumeric parses provider-flavored numbers: optional sign, percent
// suffix, thousands separators, and the "<1" low-volume marker.
func parseNumeric(s string) (float64, bool) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimSuffix(cleaned, "%")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimPrefix(cleaned, "+")
	if cleaned == "<1" {
		return 0.5, true
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// parseDate tries each accepted layout in order.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
