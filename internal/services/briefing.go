package services

import (
	"context"
	"sync"
	"time"

	"weather-briefing/internal/models"
	"weather-briefing/internal/report"
	"go.uber.org/zap"
)

type WeatherFetcher interface {
	FetchForecast(ctx context.Context) (*models.WeatherPayload, error)
}

type AirQualityFetcher interface {
	FetchAirQuality(ctx context.Context) (*models.AirQualityPayload, error)
}

type Messenger interface {
	SendMessage(ctx context.Context, text string) error
}

// Briefing sequences fetch → aggregate → compose → send. The aggregation and
// formatting itself is pure and lives in internal/report; this service owns
// the I/O around it.
type Briefing struct {
	weather   WeatherFetcher
	air       AirQualityFetcher
	messenger Messenger
	latest    *LatestReport
	logger    *zap.Logger
	timezone  string
}

func NewBriefing(weather WeatherFetcher, air AirQualityFetcher, messenger Messenger, timezone string, logger *zap.Logger) *Briefing {
	return &Briefing{
		weather:   weather,
		air:       air,
		messenger: messenger,
		latest:    NewLatestReport(),
		logger:    logger,
		timezone:  timezone,
	}
}

// Generate fetches both payloads concurrently and composes the report as of
// now. The two fetches are independent; the pipeline consumes both and
// imposes no ordering between them.
func (b *Briefing) Generate(ctx context.Context, now time.Time) (string, error) {
	today, err := report.TodayInZone(now, b.timezone)
	if err != nil {
		return "", err
	}
	return b.GenerateFor(ctx, today)
}

// GenerateFor composes the report with an explicit reference date, used by
// the preview endpoint to look at another day's briefing without sending.
func (b *Briefing) GenerateFor(ctx context.Context, today string) (string, error) {
	weekend, err := report.NextWeekend(today)
	if err != nil {
		return "", err
	}

	var (
		wg         sync.WaitGroup
		weatherP   *models.WeatherPayload
		airP       *models.AirQualityPayload
		weatherErr error
		airErr     error
	)

	startTime := time.Now()
	wg.Add(2)
	go func() {
		defer wg.Done()
		weatherP, weatherErr = b.weather.FetchForecast(ctx)
	}()
	go func() {
		defer wg.Done()
		airP, airErr = b.air.FetchAirQuality(ctx)
	}()
	wg.Wait()

	if weatherErr != nil {
		return "", weatherErr
	}
	if airErr != nil {
		return "", airErr
	}

	b.logger.Debug("Payloads fetched",
		zap.Duration("duration", time.Since(startTime)),
		zap.Int("weather_hours", len(weatherP.Hourly.Time)),
		zap.Int("air_hours", len(airP.Hourly.Time)))

	weatherDays, extremes, err := report.BuildWeatherSummaries(weatherP)
	if err != nil {
		return "", err
	}
	airDays, err := report.BuildAirSummaries(airP)
	if err != nil {
		return "", err
	}

	return report.Compose(today, weekend, extremes, weatherDays, airDays), nil
}

// Run generates today's report, delivers it, and records it for the preview
// endpoint. A generation failure is reported to the chat as a short notice so
// a missed morning briefing is visible where the briefing itself would be.
func (b *Briefing) Run(ctx context.Context) error {
	text, err := b.Generate(ctx, time.Now())
	if err != nil {
		b.logger.Error("Briefing generation failed", zap.Error(err))
		notice := "⚠️ 오늘의 날씨 브리핑 생성에 실패했습니다: " + err.Error()
		if sendErr := b.messenger.SendMessage(ctx, notice); sendErr != nil {
			b.logger.Error("Failure notice delivery failed", zap.Error(sendErr))
		}
		return err
	}

	if err := b.messenger.SendMessage(ctx, text); err != nil {
		b.logger.Error("Briefing delivery failed", zap.Error(err))
		return err
	}

	b.latest.Set(text)
	b.logger.Info("Briefing delivered", zap.Int("bytes", len(text)))
	return nil
}

// Latest exposes the most recently delivered report.
func (b *Briefing) Latest() (string, time.Time, bool) {
	return b.latest.Get()
}
