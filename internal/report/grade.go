package report

import (
	"math"
	"strconv"
)

// NoData is the rendering token for any absent value.
const NoData = "정보 없음"

// noWeatherInfo marks a WMO code outside the mapped set. Unknown codes are
// expected (the table grows over time) and are not errors.
const noWeatherInfo = "날씨 정보 없음"

// FormatRounded renders a value rounded to one decimal, half away from zero.
// A small epsilon is added before rounding so values like 1.05, which binary
// floats store just under the half, still round up. Whole results drop the
// trailing .0 (35, not 35.0).
func FormatRounded(v *float64) string {
	if v == nil {
		return NoData
	}
	const eps = 1e-9
	scaled := *v * 10
	var r float64
	if scaled >= 0 {
		r = math.Floor(scaled+0.5+eps) / 10
	} else {
		r = math.Ceil(scaled-0.5-eps) / 10
	}
	if r == 0 {
		r = 0 // normalize -0
	}
	if r == math.Trunc(r) {
		return strconv.FormatFloat(r, 'f', 0, 64)
	}
	return strconv.FormatFloat(r, 'f', 1, 64)
}

// TemperatureLabel maps a temperature in °C onto the seven-step descriptor
// ladder. Bounds are inclusive on the upper side; first match wins.
func TemperatureLabel(celsius float64) string {
	switch {
	case celsius <= -5:
		return "매우 추움"
	case celsius <= 5:
		return "추움"
	case celsius <= 12:
		return "쌀쌀함"
	case celsius <= 19:
		return "선선함"
	case celsius <= 26:
		return "따뜻함"
	case celsius <= 31:
		return "더움"
	default:
		return "매우 더움"
	}
}

// WeatherCodeLabel maps a WMO weather code onto its Korean descriptor.
func WeatherCodeLabel(code int) string {
	switch {
	case code == 0:
		return "맑음"
	case code >= 1 && code <= 3:
		return "흐림"
	case code == 45 || code == 48:
		return "안개"
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return "비"
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return "눈"
	case code == 95 || code == 96 || code == 99:
		return "뇌우"
	default:
		return noWeatherInfo
	}
}

// CombinedWeatherLabel joins the temperature and weather descriptors for one
// window. Either side may be absent; the label degrades to whichever part is
// available rather than failing on partial data.
func CombinedWeatherLabel(temp, code *float64) string {
	switch {
	case temp != nil && code != nil:
		return TemperatureLabel(*temp) + "·" + WeatherCodeLabel(int(*code))
	case temp != nil:
		return TemperatureLabel(*temp)
	case code != nil:
		return WeatherCodeLabel(int(*code))
	default:
		return NoData
	}
}

// PM10Grade maps a PM10 concentration (µg/m³) onto the Korean public grading
// scale. Thresholds are inclusive.
func PM10Grade(v float64) string {
	switch {
	case v <= 30:
		return "좋음"
	case v <= 80:
		return "보통"
	case v <= 150:
		return "나쁨"
	default:
		return "매우 나쁨"
	}
}

// PM25Grade maps a PM2.5 concentration (µg/m³) onto the Korean public
// grading scale.
func PM25Grade(v float64) string {
	switch {
	case v <= 15:
		return "좋음"
	case v <= 35:
		return "보통"
	case v <= 75:
		return "나쁨"
	default:
		return "매우 나쁨"
	}
}

// PollutantCell renders one pollutant window as grade(value)µg/m³. The grade
// is not computed for absent values.
func PollutantCell(v *float64, grade func(float64) string) string {
	if v == nil {
		return NoData
	}
	return grade(*v) + "(" + FormatRounded(v) + ")µg/m³"
}
