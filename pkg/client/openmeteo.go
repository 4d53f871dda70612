package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"weather-briefing/internal/models"
	"go.uber.org/zap"
)

type OpenMeteoClient struct {
	*BaseClient
	baseURL   string
	latitude  float64
	longitude float64
	timezone  string
}

func NewOpenMeteoClient(lat, lon float64, timezone string, config ClientConfig, logger *zap.Logger) *OpenMeteoClient {
	baseClient := NewBaseClient("openmeteo", config, logger)
	return &OpenMeteoClient{
		BaseClient: baseClient,
		baseURL:    "https://api.open-meteo.com/v1/forecast",
		latitude:   lat,
		longitude:  lon,
		timezone:   timezone,
	}
}

// FetchForecast retrieves the daily extremes and hourly temperature/code
// series. Timestamps come back in the configured zone, so the hourly labels
// line up with the report's local morning/afternoon windows.
func (c *OpenMeteoClient) FetchForecast(ctx context.Context) (*models.WeatherPayload, error) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%.4f", c.latitude))
	values.Set("longitude", fmt.Sprintf("%.4f", c.longitude))
	values.Set("daily", "temperature_2m_min,temperature_2m_max")
	values.Set("hourly", "temperature_2m,weather_code")
	values.Set("timezone", c.timezone)

	data, err := c.GetWithRetry(ctx, c.baseURL+"?"+values.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	var payload models.WeatherPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse forecast response: %w", err)
	}

	return &payload, nil
}
