package models

// WeatherPayload is the Open-Meteo forecast response, limited to the series
// the briefing consumes. Values decode as *float64 because the API returns
// null for hours it could not model; nil entries are treated as missing
// downstream, never as zero.
type WeatherPayload struct {
	Daily  DailySeries  `json:"daily"`
	Hourly HourlySeries `json:"hourly"`
}

type DailySeries struct {
	Time             []string   `json:"time"`
	Temperature2MMin []*float64 `json:"temperature_2m_min"`
	Temperature2MMax []*float64 `json:"temperature_2m_max"`
}

type HourlySeries struct {
	Time          []string   `json:"time"`
	Temperature2M []*float64 `json:"temperature_2m"`
	WeatherCode   []*float64 `json:"weather_code"`
}

// AirQualityPayload is the Open-Meteo air-quality response.
type AirQualityPayload struct {
	Hourly AirHourlySeries `json:"hourly"`
}

type AirHourlySeries struct {
	Time []string   `json:"time"`
	PM10 []*float64 `json:"pm10"`
	PM25 []*float64 `json:"pm2_5"`
}
