package report

import "weather-briefing/internal/models"

// BuildWeatherSummaries derives the per-date summaries and daily extremes
// from a raw forecast payload.
func BuildWeatherSummaries(p *models.WeatherPayload) (map[string]WeatherDaySummary, map[string]DailyExtremes, error) {
	tempBuckets, err := BucketHourly(p.Hourly.Time, p.Hourly.Temperature2M, "temperature_2m")
	if err != nil {
		return nil, nil, err
	}
	codeBuckets, err := BucketHourly(p.Hourly.Time, p.Hourly.WeatherCode, "weather_code")
	if err != nil {
		return nil, nil, err
	}

	temps := AveragePeriods(tempBuckets)
	codes := RepresentativePeriods(codeBuckets)

	days := make(map[string]WeatherDaySummary, len(temps))
	for date, t := range temps {
		days[date] = WeatherDaySummary{Temperature: t, WeatherCode: codes[date]}
	}
	// Dates with weather codes but no temperature samples still get a summary.
	for date, c := range codes {
		if _, ok := days[date]; !ok {
			days[date] = WeatherDaySummary{WeatherCode: c}
		}
	}

	extremes, err := ExtremesByDate(p.Daily.Time, p.Daily.Temperature2MMin, p.Daily.Temperature2MMax)
	if err != nil {
		return nil, nil, err
	}
	return days, extremes, nil
}

// BuildAirSummaries derives the per-date pollutant summaries from a raw
// air-quality payload.
func BuildAirSummaries(p *models.AirQualityPayload) (map[string]AirDaySummary, error) {
	pm10Buckets, err := BucketHourly(p.Hourly.Time, p.Hourly.PM10, "pm10")
	if err != nil {
		return nil, err
	}
	pm25Buckets, err := BucketHourly(p.Hourly.Time, p.Hourly.PM25, "pm2_5")
	if err != nil {
		return nil, err
	}

	pm10 := AveragePeriods(pm10Buckets)
	pm25 := AveragePeriods(pm25Buckets)

	days := make(map[string]AirDaySummary, len(pm10))
	for date, v := range pm10 {
		days[date] = AirDaySummary{PM10: v, PM25: pm25[date]}
	}
	for date, v := range pm25 {
		if _, ok := days[date]; !ok {
			days[date] = AirDaySummary{PM25: v}
		}
	}
	return days, nil
}
