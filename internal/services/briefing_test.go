package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"weather-briefing/internal/models"
	"go.uber.org/zap"
)

func fp(v float64) *float64 { return &v }

type fakeWeather struct {
	payload *models.WeatherPayload
	err     error
}

func (f *fakeWeather) FetchForecast(ctx context.Context) (*models.WeatherPayload, error) {
	return f.payload, f.err
}

type fakeAir struct {
	payload *models.AirQualityPayload
	err     error
}

func (f *fakeAir) FetchAirQuality(ctx context.Context) (*models.AirQualityPayload, error) {
	return f.payload, f.err
}

type fakeMessenger struct {
	sent []string
	err  error
}

func (f *fakeMessenger) SendMessage(ctx context.Context, text string) error {
	f.sent = append(f.sent, text)
	return f.err
}

func testPayloads() (*models.WeatherPayload, *models.AirQualityPayload) {
	w := &models.WeatherPayload{}
	w.Daily.Time = []string{"2026-02-27"}
	w.Daily.Temperature2MMin = []*float64{fp(-1)}
	w.Daily.Temperature2MMax = []*float64{fp(9)}
	w.Hourly.Time = []string{"2026-02-27T09:00", "2026-02-27T14:00"}
	w.Hourly.Temperature2M = []*float64{fp(3), fp(8)}
	w.Hourly.WeatherCode = []*float64{fp(0), fp(61)}

	a := &models.AirQualityPayload{}
	a.Hourly.Time = []string{"2026-02-27T09:00", "2026-02-27T14:00"}
	a.Hourly.PM10 = []*float64{fp(28), fp(90)}
	a.Hourly.PM25 = []*float64{fp(10), fp(20)}
	return w, a
}

func newTestBriefing(w *fakeWeather, a *fakeAir, m *fakeMessenger) *Briefing {
	return NewBriefing(w, a, m, "Asia/Seoul", zap.NewNop())
}

func TestGenerateForComposesReport(t *testing.T) {
	w, a := testPayloads()
	b := newTestBriefing(&fakeWeather{payload: w}, &fakeAir{payload: a}, &fakeMessenger{})

	text, err := b.GenerateFor(context.Background(), "2026-02-27")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"오늘 (2026-02-27)",
		"토요일 (2026-02-28)",
		"일요일 (2026-03-01)",
		"추움·맑음",
		"쌀쌀함·비",
		"좋음(28)µg/m³",
		"나쁨(90)µg/m³",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q\n%s", want, text)
		}
	}
}

func TestGenerateForPropagatesFetchErrors(t *testing.T) {
	w, a := testPayloads()
	fetchErr := errors.New("upstream down")

	b := newTestBriefing(&fakeWeather{err: fetchErr}, &fakeAir{payload: a}, &fakeMessenger{})
	if _, err := b.GenerateFor(context.Background(), "2026-02-27"); !errors.Is(err, fetchErr) {
		t.Errorf("weather fetch error = %v, want %v", err, fetchErr)
	}

	b = newTestBriefing(&fakeWeather{payload: w}, &fakeAir{err: fetchErr}, &fakeMessenger{})
	if _, err := b.GenerateFor(context.Background(), "2026-02-27"); !errors.Is(err, fetchErr) {
		t.Errorf("air fetch error = %v, want %v", err, fetchErr)
	}
}

func TestGenerateForRejectsBadDate(t *testing.T) {
	w, a := testPayloads()
	b := newTestBriefing(&fakeWeather{payload: w}, &fakeAir{payload: a}, &fakeMessenger{})

	if _, err := b.GenerateFor(context.Background(), "27-02-2026"); err == nil {
		t.Fatal("malformed reference date did not error")
	}
}

func TestRunDeliversAndRecords(t *testing.T) {
	w, a := testPayloads()
	messenger := &fakeMessenger{}
	b := newTestBriefing(&fakeWeather{payload: w}, &fakeAir{payload: a}, messenger)

	if err := b.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messenger.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(messenger.sent))
	}

	text, generatedAt, ok := b.Latest()
	if !ok {
		t.Fatal("latest report not recorded")
	}
	if text != messenger.sent[0] {
		t.Error("recorded report differs from delivered report")
	}
	if time.Since(generatedAt) > time.Minute {
		t.Errorf("generated_at %v is stale", generatedAt)
	}
}

func TestRunGenerationFailureNotifiesChat(t *testing.T) {
	_, a := testPayloads()
	fetchErr := errors.New("upstream down")
	messenger := &fakeMessenger{}
	b := newTestBriefing(&fakeWeather{err: fetchErr}, &fakeAir{payload: a}, messenger)

	if err := b.Run(context.Background()); !errors.Is(err, fetchErr) {
		t.Fatalf("Run error = %v, want %v", err, fetchErr)
	}
	if len(messenger.sent) != 1 {
		t.Fatalf("sent %d messages, want 1 failure notice", len(messenger.sent))
	}
	notice := messenger.sent[0]
	if !strings.Contains(notice, "생성에 실패했습니다") {
		t.Errorf("notice %q does not say generation failed", notice)
	}
	if !strings.Contains(notice, fetchErr.Error()) {
		t.Errorf("notice %q does not carry the cause", notice)
	}
	if _, _, ok := b.Latest(); ok {
		t.Error("failed run recorded a latest report")
	}
}

func TestRunDeliveryFailureDoesNotRecord(t *testing.T) {
	w, a := testPayloads()
	messenger := &fakeMessenger{err: errors.New("telegram rejected message")}
	b := newTestBriefing(&fakeWeather{payload: w}, &fakeAir{payload: a}, messenger)

	if err := b.Run(context.Background()); err == nil {
		t.Fatal("delivery failure did not surface")
	}
	if _, _, ok := b.Latest(); ok {
		t.Error("failed run recorded a latest report")
	}
}
