package report

import (
	"errors"
	"math"
	"testing"
)

func fp(v float64) *float64 { return &v }

func TestBucketHourlyShapeMismatch(t *testing.T) {
	times := []string{"2026-02-28T06:00", "2026-02-28T07:00"}
	values := []*float64{fp(1)}

	_, err := BucketHourly(times, values, "pm10")
	var se *ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("BucketHourly error = %v, want *ShapeError", err)
	}
	if se.Series != "pm10" || se.Want != 2 || se.Got != 1 {
		t.Errorf("ShapeError = %+v, want {pm10 2 1}", se)
	}
}

func TestBucketHourlyMissingSeries(t *testing.T) {
	// A series absent from the payload decodes to nil, which is a shape
	// violation, not a silent no-op.
	times := []string{"2026-02-28T06:00"}
	if _, err := BucketHourly(times, nil, "weather_code"); err == nil {
		t.Fatal("BucketHourly with nil series did not error")
	}
}

func TestBucketHourlyWindowBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		stamp     string
		morning   bool
		afternoon bool
	}{
		{name: "morning start", stamp: "2026-02-28T06:00", morning: true},
		{name: "morning end", stamp: "2026-02-28T11:00", morning: true},
		{name: "afternoon start", stamp: "2026-02-28T12:00", afternoon: true},
		{name: "afternoon end", stamp: "2026-02-28T17:00", afternoon: true},
		{name: "before morning", stamp: "2026-02-28T05:00"},
		{name: "after afternoon", stamp: "2026-02-28T18:00"},
		{name: "midnight", stamp: "2026-02-28T00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets, err := BucketHourly([]string{tt.stamp}, []*float64{fp(7)}, "t")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			day := buckets["2026-02-28"]
			if !tt.morning && !tt.afternoon {
				if day != nil {
					t.Fatalf("out-of-window hour produced buckets: %+v", day)
				}
				return
			}
			if day == nil {
				t.Fatal("in-window hour produced no buckets")
			}
			if got := len(day.Morning) == 1; got != tt.morning {
				t.Errorf("morning bucket populated = %v, want %v", got, tt.morning)
			}
			if got := len(day.Afternoon) == 1; got != tt.afternoon {
				t.Errorf("afternoon bucket populated = %v, want %v", got, tt.afternoon)
			}
		})
	}
}

func TestBucketHourlySkipsBadSamples(t *testing.T) {
	times := []string{
		"2026-02-28T06:00",
		"garbage",
		"2026-02-28T09:00",
		"2026-02-28T10:00",
		"2026-02-28T13:00",
	}
	values := []*float64{fp(30), fp(99), nil, fp(math.NaN()), fp(50)}

	buckets, err := BucketHourly(times, values, "pm10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	day := buckets["2026-02-28"]
	if day == nil {
		t.Fatal("no buckets for 2026-02-28")
	}
	if len(day.Morning) != 1 || day.Morning[0] != 30 {
		t.Errorf("morning bucket = %v, want [30]", day.Morning)
	}
	if len(day.Afternoon) != 1 || day.Afternoon[0] != 50 {
		t.Errorf("afternoon bucket = %v, want [50]", day.Afternoon)
	}
}

func TestBucketHourlyGroupsByDate(t *testing.T) {
	times := []string{"2026-02-28T09:00", "2026-03-01T09:00"}
	values := []*float64{fp(1), fp(2)}

	buckets, err := BucketHourly(times, values, "t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("got %d dates, want 2", len(buckets))
	}
	if buckets["2026-02-28"].Morning[0] != 1 || buckets["2026-03-01"].Morning[0] != 2 {
		t.Error("samples landed in the wrong date buckets")
	}
}

func TestBucketHourlyPreservesTimeOrder(t *testing.T) {
	times := []string{"2026-02-28T06:00", "2026-02-28T07:00", "2026-02-28T08:00"}
	values := []*float64{fp(3), fp(1), fp(2)}

	buckets, _ := BucketHourly(times, values, "t")
	got := buckets["2026-02-28"].Morning
	want := []float64{3, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("morning bucket = %v, want %v", got, want)
		}
	}
}
