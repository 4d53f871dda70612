package report

import "math"

// PeriodAverage is one derived quantity over the two daytime windows. A nil
// side means the window had no qualifying samples; zero is a real measurement
// and is kept distinct from missing throughout.
type PeriodAverage struct {
	Morning   *float64
	Afternoon *float64
}

// DailyExtremes carries a date's pre-aggregated temperature min/max straight
// from the daily series.
type DailyExtremes struct {
	Min *float64
	Max *float64
}

// WeatherDaySummary summarizes one date's hourly weather series.
type WeatherDaySummary struct {
	Temperature PeriodAverage
	// WeatherCode holds the representative WMO code per window, not a mean;
	// averaging enumerated codes would be meaningless.
	WeatherCode PeriodAverage
}

// AirDaySummary summarizes one date's hourly pollutant series.
type AirDaySummary struct {
	PM10 PeriodAverage
	PM25 PeriodAverage
}

// Mean returns the arithmetic mean of samples, or nil when empty. Rounding is
// deferred to formatting.
func Mean(samples []float64) *float64 {
	if len(samples) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range samples {
		sum += v
	}
	m := sum / float64(len(samples))
	return &m
}

// Representative returns the most frequent sample, or nil when empty. Ties go
// to the value seen earliest, which is why callers must pass samples in
// original time order; counting into a map and iterating it would make the
// winner depend on map ordering.
func Representative(samples []float64) *float64 {
	if len(samples) == 0 {
		return nil
	}
	counts := make(map[float64]int, len(samples))
	for _, v := range samples {
		counts[v]++
	}
	best := samples[0]
	bestCount := counts[best]
	for _, v := range samples[1:] {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return &best
}

// AveragePeriods reduces each date's buckets to mean morning/afternoon values.
func AveragePeriods(buckets map[string]*DayBuckets) map[string]PeriodAverage {
	out := make(map[string]PeriodAverage, len(buckets))
	for date, day := range buckets {
		out[date] = PeriodAverage{
			Morning:   Mean(day.Morning),
			Afternoon: Mean(day.Afternoon),
		}
	}
	return out
}

// RepresentativePeriods reduces each date's buckets to the representative
// value per window.
func RepresentativePeriods(buckets map[string]*DayBuckets) map[string]PeriodAverage {
	out := make(map[string]PeriodAverage, len(buckets))
	for date, day := range buckets {
		out[date] = PeriodAverage{
			Morning:   Representative(day.Morning),
			Afternoon: Representative(day.Afternoon),
		}
	}
	return out
}

// ExtremesByDate passes the daily min/max series through keyed by date. The
// series come pre-aggregated, so no bucketing applies; a nil or non-finite
// entry leaves that side absent. Length mismatches fail with *ShapeError.
func ExtremesByDate(times []string, mins, maxs []*float64) (map[string]DailyExtremes, error) {
	if len(mins) != len(times) {
		return nil, &ShapeError{Series: "temperature_2m_min", Want: len(times), Got: len(mins)}
	}
	if len(maxs) != len(times) {
		return nil, &ShapeError{Series: "temperature_2m_max", Want: len(times), Got: len(maxs)}
	}

	out := make(map[string]DailyExtremes, len(times))
	for i, date := range times {
		if !civilDatePattern.MatchString(date) {
			continue
		}
		out[date] = DailyExtremes{
			Min: finiteOrNil(mins[i]),
			Max: finiteOrNil(maxs[i]),
		}
	}
	return out, nil
}

func finiteOrNil(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}
