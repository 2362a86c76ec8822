package core

import (
	"math"
	"sort"

	"trendscope/schema"
)

// mean returns the arithmetic mean, or 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev returns the population standard deviation, or 0 for fewer than
// two values.
func stddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var sq float64
	for _, v := range values {
		d := v - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)))
}

// medianSpacing returns the median gap between consecutive samples. It is
// the time unit used to normalize slopes, so a weekly series and a monthly
// series produce comparable momentum values despite different cadences.
func medianSpacing(s schema.Series) float64 {
	if len(s) < 2 {
		return 0
	}
	gaps := make([]float64, 0, len(s)-1)
	for i := 1; i < len(s); i++ {
		gaps = append(gaps, s[i].Timestamp.Sub(s[i-1].Timestamp).Seconds())
	}
	sort.Float64s(gaps)
	mid := len(gaps) / 2
	if len(gaps)%2 == 1 {
		return gaps[mid]
	}
	return (gaps[mid-1] + gaps[mid]) / 2
}

// slope fits a least-squares line over the window and returns its slope in
// interest points per median period. Elapsed time is used on the x axis so
// irregular spacing does not distort the fit. Returns 0 for windows that
// cannot support a fit.
func slope(window schema.Series) float64 {
	if len(window) < 2 {
		return 0
	}
	unit := medianSpacing(window)
	if unit <= 0 {
		return 0
	}

	xs := make([]float64, len(window))
	ys := make([]float64, len(window))
	for i, tp := range window {
		xs[i] = tp.Timestamp.Sub(window[0].Timestamp).Seconds() / unit
		ys[i] = tp.Value
	}

	xMean := mean(xs)
	yMean := mean(ys)
	var num, den float64
	for i := range xs {
		dx := xs[i] - xMean
		num += dx * (ys[i] - yMean)
		den += dx * dx
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// momentumWindow returns the trailing window used for momentum: the last
// quarter of the series, never fewer than three samples.
func momentumWindow(s schema.Series) schema.Series {
	n := len(s)
	w := (n + 3) / 4
	if w < 3 {
		w = 3
	}
	if w > n {
		w = n
	}
	return s[n-w:]
}

// consistencyWindow returns the trailing window used for consistency: the
// last half of the series, never fewer than three samples.
func consistencyWindow(s schema.Series) schema.Series {
	n := len(s)
	w := (n + 1) / 2
	if w < 3 {
		w = 3
	}
	if w > n {
		w = n
	}
	return s[n-w:]
}

// levelSubscore maps the ratio of the latest value to the historical mean
// onto a saturating ramp. A keyword sitting at its average scores midway;
// at or below half the average scores 0, at or above double scores 100.
func (e *Engine) levelSubscore(s schema.Series) float64 {
	if len(s) == 0 {
		return 0
	}
	m := mean(seriesValues(s))
	if m == 0 {
		return 0
	}
	ratio := s[len(s)-1].Value / m
	span := e.params.LevelCeiling - e.params.LevelFloor
	if span <= 0 {
		return 0
	}
	return clamp100((ratio - e.params.LevelFloor) / span * 100)
}

// growthSubscore compares the mean of the last third of the series against
// the mean of the first third. The percent change is clamped to [0, 100],
// so flat and shrinking series score 0 and a doubling saturates.
func growthSubscore(s schema.Series) float64 {
	n := len(s)
	if n < 3 {
		return 0
	}
	third := n / 3
	if third < 1 {
		third = 1
	}
	early := mean(seriesValues(s[:third]))
	late := mean(seriesValues(s[n-third:]))
	if early == 0 {
		if late > 0 {
			return 100
		}
		return 0
	}
	pct := (late - early) / early * 100
	return clamp100(pct)
}

// momentumSubscore converts the recent slope into a score centered on 50:
// a flat recent window scores 50, rising windows score above it.
func (e *Engine) momentumSubscore(s schema.Series) float64 {
	if len(s) < 3 {
		return 0
	}
	return clamp100(50 + slope(momentumWindow(s))*e.params.MomentumScale)
}

// accelerationSubscore measures whether momentum itself is building by
// comparing the slope of the recent half against the prior half.
func (e *Engine) accelerationSubscore(s schema.Series) float64 {
	n := len(s)
	if n < 4 {
		return 0
	}
	half := (n + 1) / 2
	recent := s[n-half:]
	prior := s[:n-half]
	accel := slope(recent) - slope(prior)
	return clamp100(50 + accel*e.params.AccelerationScale)
}

// consistencySubscore rewards stable recent demand: it is the inverse
// coefficient of variation over the recent window, scaled to [0, 100].
func consistencySubscore(s schema.Series) float64 {
	if len(s) == 0 {
		return 0
	}
	window := seriesValues(consistencyWindow(s))
	m := mean(window)
	if m == 0 {
		return 0
	}
	return clamp01(1-stddev(window)/m) * 100
}
