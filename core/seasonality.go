package core

import (
	"sort"
	"time"

	"trendscope/schema"
)

// minSeasonalPeriods is the minimum number of distinct periods needed
// before monthly grouping is meaningful.
const minSeasonalPeriods = 12

// AnalyzeSeasonality groups the series by calendar month across years and
// looks for months that consistently outperform the overall mean. Series
// shorter than a year, or with zero overall mean, are reported as
// non-seasonal with zero amplitude and no forecast.
func (e *Engine) AnalyzeSeasonality(s schema.Series) schema.SeasonalityProfile {
	if len(s) < minSeasonalPeriods {
		return schema.SeasonalityProfile{}
	}

	overall := mean(seriesValues(s))
	if overall == 0 {
		return schema.SeasonalityProfile{}
	}

	sums := make(map[time.Month]float64)
	counts := make(map[time.Month]int)
	for _, tp := range s {
		m := tp.Timestamp.Month()
		sums[m] += tp.Value
		counts[m]++
	}

	var peaks []time.Month
	peakMean := 0.0
	troughMean := -1.0
	for m := time.January; m <= time.December; m++ {
		n := counts[m]
		if n == 0 {
			continue
		}
		avg := sums[m] / float64(n)
		if avg > overall*e.params.PeakThreshold {
			peaks = append(peaks, m)
		}
		if avg > peakMean {
			peakMean = avg
		}
		if troughMean < 0 || avg < troughMean {
			troughMean = avg
		}
	}

	// Floor the trough at 1.0 so an all-zero off-season cannot blow the
	// ratio up to infinity. Interest values live on a 0-100 scale, so one
	// point is the smallest meaningful off-season level.
	if troughMean < 1 {
		troughMean = 1
	}
	amplitude := peakMean / troughMean

	profile := schema.SeasonalityProfile{
		PeakMonths: peaks,
		Amplitude:  amplitude,
	}
	if len(peaks) == 0 || amplitude < e.params.MinAmplitude {
		return profile
	}
	profile.IsSeasonal = true

	// The forecast is anchored to the last observed period rather than the
	// wall clock, keeping the engine deterministic.
	current := s[len(s)-1].Timestamp.Month()
	profile.NextPeak = nextPeakForecast(peaks, current)
	return profile
}

// nextPeakForecast picks the peak month closest in the future relative to
// the current month. MonthsUntil is always in [1, 12]: a peak in the
// current month forecasts next year's occurrence.
func nextPeakForecast(peaks []time.Month, current time.Month) *schema.PeakForecast {
	if len(peaks) == 0 {
		return nil
	}
	sorted := make([]time.Month, len(peaks))
	copy(sorted, peaks)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	best := schema.PeakForecast{MonthsUntil: 13}
	for _, p := range sorted {
		until := ((int(p)-int(current)-1)%12+12)%12 + 1
		if until < best.MonthsUntil {
			best = schema.PeakForecast{Month: p, MonthsUntil: until}
		}
	}
	return &best
}
