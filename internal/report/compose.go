package report

import "strings"

// Compose renders the briefing for today and the upcoming weekend. Dates
// absent from a summary map render with the no-data token in every field;
// only malformed input arrays upstream ever error. Output is a pure function
// of its inputs, byte for byte.
func Compose(today string, weekend Weekend, extremes map[string]DailyExtremes, weather map[string]WeatherDaySummary, air map[string]AirDaySummary) string {
	targets := []struct {
		title string
		date  string
	}{
		{"오늘", today},
		{"토요일", weekend.Saturday},
		{"일요일", weekend.Sunday},
	}

	var lines []string
	for i, t := range targets {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, composeDay(t.title, t.date, extremes[t.date], weather[t.date], air[t.date])...)
	}
	return strings.Join(lines, "\n")
}

// composeDay emits one date section. Map lookups above hand over zero-value
// summaries for missing dates, which render as all-absent here.
func composeDay(title, date string, ext DailyExtremes, w WeatherDaySummary, a AirDaySummary) []string {
	return []string{
		"🗓 " + title + " (" + date + ")",
		"🌡 최저 " + FormatRounded(ext.Min) + " / 최고 " + FormatRounded(ext.Max) + "°C",
		"🌅 오전: " + CombinedWeatherLabel(w.Temperature.Morning, w.WeatherCode.Morning),
		"🌇 오후: " + CombinedWeatherLabel(w.Temperature.Afternoon, w.WeatherCode.Afternoon),
		"💨 미세먼지(PM10) 오전: " + PollutantCell(a.PM10.Morning, PM10Grade) +
			" / 오후: " + PollutantCell(a.PM10.Afternoon, PM10Grade),
		"💨 초미세먼지(PM2.5) 오전: " + PollutantCell(a.PM25.Morning, PM25Grade) +
			" / 오후: " + PollutantCell(a.PM25.Afternoon, PM25Grade),
	}
}
