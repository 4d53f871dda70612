package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"weather-briefing/internal/models"
	"go.uber.org/zap"
)

type AirQualityClient struct {
	*BaseClient
	baseURL   string
	latitude  float64
	longitude float64
	timezone  string
}

func NewAirQualityClient(lat, lon float64, timezone string, config ClientConfig, logger *zap.Logger) *AirQualityClient {
	baseClient := NewBaseClient("airquality", config, logger)
	return &AirQualityClient{
		BaseClient: baseClient,
		baseURL:    "https://air-quality-api.open-meteo.com/v1/air-quality",
		latitude:   lat,
		longitude:  lon,
		timezone:   timezone,
	}
}

// FetchAirQuality retrieves the hourly PM10 and PM2.5 series in the
// configured zone.
func (c *AirQualityClient) FetchAirQuality(ctx context.Context) (*models.AirQualityPayload, error) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%.4f", c.latitude))
	values.Set("longitude", fmt.Sprintf("%.4f", c.longitude))
	values.Set("hourly", "pm10,pm2_5")
	values.Set("timezone", c.timezone)

	data, err := c.GetWithRetry(ctx, c.baseURL+"?"+values.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch air quality: %w", err)
	}

	var payload models.AirQualityPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse air quality response: %w", err)
	}

	return &payload, nil
}
