package core

import (
	"math"
	"sort"

	"trendscope/schema"
)

// NormalizeSeries sanitizes a raw series into the form the scorers expect:
// non-finite samples are dropped, negative values are clamped to zero, the
// result is sorted chronologically, and duplicate periods keep only the
// first occurrence. The input slice is never modified.
func NormalizeSeries(raw schema.Series) schema.Series {
	if len(raw) == 0 {
		return nil
	}

	cleaned := make(schema.Series, 0, len(raw))
	for _, tp := range raw {
		if math.IsNaN(tp.Value) || math.IsInf(tp.Value, 0) {
			continue
		}
		if tp.Value < 0 {
			tp.Value = 0
		}
		cleaned = append(cleaned, tp)
	}
	if len(cleaned) == 0 {
		return nil
	}

	// Stable sort so the first occurrence of a duplicate period survives.
	sort.SliceStable(cleaned, func(i, j int) bool {
		return cleaned[i].Timestamp.Before(cleaned[j].Timestamp)
	})

	out := cleaned[:1]
	for _, tp := range cleaned[1:] {
		if tp.Timestamp.Equal(out[len(out)-1].Timestamp) {
			continue
		}
		out = append(out, tp)
	}
	return out
}

// seriesValues extracts the values of a series in order.
func seriesValues(s schema.Series) []float64 {
	values := make([]float64, len(s))
	for i, tp := range s {
		values[i] = tp.Value
	}
	return values
}
