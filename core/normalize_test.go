package core

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trendscope/schema"
)

// monthlySeries builds a series with one point per month starting at the
// given year/month.
func monthlySeries(year int, month time.Month, values ...float64) schema.Series {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	s := make(schema.Series, len(values))
	for i, v := range values {
		s[i] = schema.TimePoint{Timestamp: start.AddDate(0, i, 0), Value: v}
	}
	return s
}

func TestNormalizeSeries(t *testing.T) {
	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, NormalizeSeries(nil))
		assert.Nil(t, NormalizeSeries(schema.Series{}))
	})

	t.Run("drops non-finite values", func(t *testing.T) {
		s := schema.Series{
			{Timestamp: base, Value: math.NaN()},
			{Timestamp: base.AddDate(0, 1, 0), Value: math.Inf(1)},
			{Timestamp: base.AddDate(0, 2, 0), Value: 42},
		}
		out := NormalizeSeries(s)
		assert.Len(t, out, 1)
		assert.Equal(t, 42.0, out[0].Value)
	})

	t.Run("all non-finite yields nil", func(t *testing.T) {
		s := schema.Series{{Timestamp: base, Value: math.NaN()}}
		assert.Nil(t, NormalizeSeries(s))
	})

	t.Run("clamps negatives to zero", func(t *testing.T) {
		s := schema.Series{{Timestamp: base, Value: -5}}
		out := NormalizeSeries(s)
		assert.Equal(t, 0.0, out[0].Value)
	})

	t.Run("sorts chronologically", func(t *testing.T) {
		s := schema.Series{
			{Timestamp: base.AddDate(0, 2, 0), Value: 3},
			{Timestamp: base, Value: 1},
			{Timestamp: base.AddDate(0, 1, 0), Value: 2},
		}
		out := NormalizeSeries(s)
		assert.Equal(t, []float64{1, 2, 3}, seriesValues(out))
	})

	t.Run("duplicate period keeps first", func(t *testing.T) {
		s := schema.Series{
			{Timestamp: base, Value: 10},
			{Timestamp: base, Value: 99},
			{Timestamp: base.AddDate(0, 1, 0), Value: 20},
		}
		out := NormalizeSeries(s)
		assert.Len(t, out, 2)
		assert.Equal(t, 10.0, out[0].Value)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		s := schema.Series{
			{Timestamp: base.AddDate(0, 1, 0), Value: 2},
			{Timestamp: base, Value: -1},
		}
		_ = NormalizeSeries(s)
		assert.Equal(t, -1.0, s[1].Value)
		assert.True(t, s[0].Timestamp.After(s[1].Timestamp))
	})
}
