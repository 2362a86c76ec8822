package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"trendscope/schema"
)

// Color variables for console output.
var (
	HighColor    = color.New(color.FgGreen, color.Bold) // highColor marks the keywords worth acting on.
	MediumColor  = color.New(color.FgCyan, color.Bold)  // mediumColor marks solid but not urgent signal.
	LowColor     = color.New(color.FgYellow)            // lowColor marks weak signal, not bold.
	VeryLowColor = color.New(color.FgRed)               // veryLowColor marks keywords to skip.
)

// GetPlainLabel returns a plain text tier label for a 0-100 score.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	return string(schema.TierForScore(score))
}

// GetColorLabel returns a colored tier label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch schema.TierLabel(text) {
	case schema.HighTier:
		return HighColor.Sprint(text)
	case schema.MediumTier:
		return MediumColor.Sprint(text)
	case schema.LowTier:
		return LowColor.Sprint(text)
	default: // "VeryLow"
		return VeryLowColor.Sprint(text)
	}
}

// GetOpportunityColorLabel returns a colored opportunity label for console output.
func GetOpportunityColorLabel(label schema.OpportunityLabel) string {
	switch label {
	case schema.StarOpportunity:
		return HighColor.Sprint(string(label))
	case schema.EmergingOpportunity:
		return MediumColor.Sprint(string(label))
	case schema.EstablishedOpportunity:
		return LowColor.Sprint(string(label))
	default: // Niche
		return VeryLowColor.Sprint(string(label))
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path and format type. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".trendscope_cache.db"
	}
	return filepath.Join(homeDir, ".trendscope_cache.db")
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".trendscope_history.db"
	}
	return filepath.Join(homeDir, ".trendscope_history.db")
}

// TruncateKeyword truncates a keyword to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 to ensure there's space for both the "..." suffix and at
// least one character of content.
func TruncateKeyword(keyword string, maxWidth int) string {
	runes := []rune(keyword)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return keyword
}

// MatchesKeywordFilter returns true when the keyword matches any of the
// filters, or when no filters are set. Matching is a case-insensitive
// substring check.
func MatchesKeywordFilter(keyword string, filters []string) bool {
	if len(filters) == 0 {
		return true
	}
	lower := strings.ToLower(keyword)
	for _, f := range filters {
		if strings.Contains(lower, strings.ToLower(f)) {
			return true
		}
	}
	return false
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
