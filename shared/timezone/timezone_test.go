package timezone_test

import (
	"testing"
	"time"

	"booking-api/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}

	if !appTime.Equal(utcTime) {
		t.Error("Expected conversion to preserve the instant")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestParseDateAndTime(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02T15:04", "2025-09-06T14:30")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if parsed.Hour() != 14 || parsed.Minute() != 30 {
		t.Errorf("expected wall clock 14:30, got %02d:%02d", parsed.Hour(), parsed.Minute())
	}

	if parsed.Location() != timezone.GetLocation() {
		t.Error("expected parsed time to carry the application location")
	}
}
