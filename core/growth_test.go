package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trendscope/schema"
)

func TestMeanAndStddev(t *testing.T) {
	assert.Equal(t, 0.0, mean(nil))
	assert.Equal(t, 3.0, mean([]float64{1, 2, 3, 4, 5}))
	assert.Equal(t, 0.0, stddev([]float64{7}))
	assert.InDelta(t, 2.0, stddev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 0.001)
	assert.Equal(t, 0.0, stddev([]float64{5, 5, 5}))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, median(nil))
	assert.Equal(t, 3.0, median([]float64{5, 1, 3}))
	assert.Equal(t, 2.5, median([]float64{4, 1, 2, 3}))
}

func TestSlope(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		assert.Equal(t, 0.0, slope(monthlySeries(2025, time.January, 10)))
	})

	t.Run("linear rise", func(t *testing.T) {
		s := monthlySeries(2025, time.January, 10, 20, 30, 40)
		assert.InDelta(t, 10.0, slope(s), 0.5)
	})

	t.Run("flat", func(t *testing.T) {
		s := monthlySeries(2025, time.January, 50, 50, 50, 50)
		assert.InDelta(t, 0.0, slope(s), 0.001)
	})

	t.Run("decline", func(t *testing.T) {
		s := monthlySeries(2025, time.January, 40, 30, 20, 10)
		assert.Less(t, slope(s), 0.0)
	})

	t.Run("irregular spacing normalized by elapsed time", func(t *testing.T) {
		base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
		// Same rate of change as a monthly linear rise, but with a
		// two-month gap in the middle.
		irregular := schema.Series{
			{Timestamp: base, Value: 10},
			{Timestamp: base.AddDate(0, 1, 0), Value: 20},
			{Timestamp: base.AddDate(0, 3, 0), Value: 40},
			{Timestamp: base.AddDate(0, 4, 0), Value: 50},
		}
		assert.InDelta(t, 10.0, slope(irregular), 1.0)
	})
}

func TestLevelSubscore(t *testing.T) {
	e := NewDefaultEngine()

	tests := []struct {
		name   string
		values []float64
		want   float64
		delta  float64
	}{
		{"at average", []float64{50, 50, 50}, 33.3, 0.5},
		{"double the average saturates", []float64{10, 10, 10, 10, 10, 60}, 100, 0.001},
		{"half the average floors", []float64{80, 80, 80, 40}, 0, 5},
		{"zero mean", []float64{0, 0, 0}, 0, 0.001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := monthlySeries(2025, time.January, tt.values...)
			assert.InDelta(t, tt.want, e.levelSubscore(s), tt.delta)
		})
	}
}

func TestGrowthSubscore(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
		delta  float64
	}{
		{"too short", []float64{10, 20}, 0, 0.001},
		{"flat series scores zero", []float64{50, 50, 50, 50, 50, 50}, 0, 0.001},
		{"decline scores zero", []float64{90, 80, 70, 60, 50, 40}, 0, 0.001},
		{"doubling saturates", []float64{10, 10, 10, 25, 25, 25}, 100, 0.001},
		{"moderate growth", []float64{40, 40, 40, 60, 60, 60}, 50, 0.001},
		{"zero start with later demand", []float64{0, 0, 0, 10, 20, 30}, 100, 0.001},
		{"all zero", []float64{0, 0, 0, 0, 0, 0}, 0, 0.001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := monthlySeries(2025, time.January, tt.values...)
			assert.InDelta(t, tt.want, growthSubscore(s), tt.delta)
		})
	}
}

func TestMomentumSubscore(t *testing.T) {
	e := NewDefaultEngine()

	t.Run("too short", func(t *testing.T) {
		s := monthlySeries(2025, time.January, 10, 20)
		assert.Equal(t, 0.0, e.momentumSubscore(s))
	})

	t.Run("flat sits at midpoint", func(t *testing.T) {
		s := monthlySeries(2025, time.January, 50, 50, 50, 50, 50)
		assert.InDelta(t, 50.0, e.momentumSubscore(s), 0.001)
	})

	t.Run("strong rise saturates", func(t *testing.T) {
		// A +20/month climb lands well past the clamp even though calendar
		// months give slightly uneven spacing.
		s := monthlySeries(2025, time.January, 10, 30, 50, 70, 90, 110, 130, 150, 170, 190)
		assert.InDelta(t, 100.0, e.momentumSubscore(s), 0.001)
	})

	t.Run("steady rise scores high but below the clamp", func(t *testing.T) {
		s := monthlySeries(2025, time.January, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100)
		assert.GreaterOrEqual(t, e.momentumSubscore(s), 99.0)
		assert.LessOrEqual(t, e.momentumSubscore(s), 100.0)
	})

	t.Run("decline scores below midpoint", func(t *testing.T) {
		s := monthlySeries(2025, time.January, 100, 90, 80, 70, 60)
		assert.Less(t, e.momentumSubscore(s), 50.0)
	})
}

func TestAccelerationSubscore(t *testing.T) {
	e := NewDefaultEngine()

	t.Run("too short", func(t *testing.T) {
		s := monthlySeries(2025, time.January, 10, 20, 30)
		assert.Equal(t, 0.0, e.accelerationSubscore(s))
	})

	t.Run("steady rise has no acceleration", func(t *testing.T) {
		s := monthlySeries(2025, time.January, 10, 20, 30, 40, 50, 60)
		assert.InDelta(t, 50.0, e.accelerationSubscore(s), 1.0)
	})

	t.Run("hockey stick accelerates", func(t *testing.T) {
		s := monthlySeries(2025, time.January, 20, 25, 80, 95)
		assert.Greater(t, e.accelerationSubscore(s), 50.0)
	})

	t.Run("plateau decelerates", func(t *testing.T) {
		s := monthlySeries(2025, time.January, 10, 40, 70, 75, 76, 77)
		assert.Less(t, e.accelerationSubscore(s), 50.0)
	})
}

func TestConsistencySubscore(t *testing.T) {
	t.Run("flat series is perfectly consistent", func(t *testing.T) {
		s := monthlySeries(2025, time.January, 50, 50, 50, 50, 50, 50)
		assert.InDelta(t, 100.0, consistencySubscore(s), 0.001)
	})

	t.Run("spiky series scores low", func(t *testing.T) {
		s := monthlySeries(2025, time.January, 0, 100, 0, 100, 0, 100)
		assert.Less(t, consistencySubscore(s), 50.0)
	})

	t.Run("zero mean window", func(t *testing.T) {
		s := monthlySeries(2025, time.January, 0, 0, 0, 0)
		assert.Equal(t, 0.0, consistencySubscore(s))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0.0, consistencySubscore(nil))
	})
}

func BenchmarkComputeReport(b *testing.B) {
	e := NewDefaultEngine()
	values := make([]float64, 104)
	for i := range values {
		values[i] = float64(i % 53)
	}
	input := schemaInput("benchmark", monthlySeries(2018, time.January, values...))

	for b.Loop() {
		e.ComputeReport(input)
	}
}
