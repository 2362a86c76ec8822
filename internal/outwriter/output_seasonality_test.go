package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendscope/internal/contract"
	"trendscope/schema"
)

func TestWriteJSONResultsForSeasonality(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSONResultsForSeasonality(&buf, rankedReports())
	require.NoError(t, err)

	var result []map[string]any
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, float64(1), result[0]["rank"])
	assert.Equal(t, "matcha", result[0]["keyword"])
	assert.Equal(t, true, result[0]["is_seasonal"])
	assert.Equal(t, 2.4, result[0]["amplitude"])
	assert.Equal(t, false, result[1]["is_seasonal"])

	// Non-seasonal keywords omit the forecast
	_, hasNextPeak := result[1]["next_peak"]
	assert.False(t, hasNextPeak)
}

func TestWriteSeasonalityCSVResults(t *testing.T) {
	tmpFile := t.TempDir() + "/seasonality.csv"
	cfg := &contract.Config{
		Output:     schema.CSVOut,
		OutputFile: tmpFile,
		Precision:  1,
	}
	fmtFloat, _ := createFormatters(cfg.Precision)

	err := writeSeasonalityCSVResults(rankedReports(), cfg, fmtFloat)
	require.NoError(t, err)

	content, err := os.ReadFile(tmpFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3) // header + 2 rows

	assert.Contains(t, lines[0], "is_seasonal")
	assert.Contains(t, lines[0], "next_peak_month")
	assert.Contains(t, lines[1], "matcha")
	assert.Contains(t, lines[1], "true")
	assert.Contains(t, lines[1], "November")
	assert.Contains(t, lines[2], "fax machine")
	assert.Contains(t, lines[2], "false")
}

func TestWriteSeasonalityTable(t *testing.T) {
	cfg := &contract.Config{
		Output:       schema.TextOut,
		Precision:    1,
		Workers:      4,
		Width:        160,
		CacheBackend: schema.SQLiteBackend,
		UseColors:    false,
	}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeSeasonalityTable(rankedReports(), cfg, fmtFloat, 30*time.Millisecond, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "matcha")
	assert.Contains(t, output, "Yes")
	assert.Contains(t, output, "Nov, Dec")
	assert.Contains(t, output, "Nov (in 3mo)")
	assert.Contains(t, output, "fax machine")
	assert.Contains(t, output, "No")
	assert.Contains(t, output, "Showing 2 keywords (1 with seasonal patterns)")
}
