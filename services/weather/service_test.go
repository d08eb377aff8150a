package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

const forecastPayload = `{
	"current_weather": {"temperature": 68.5, "windspeed": 12.3, "weathercode": 0},
	"daily": {
		"time": ["2026-08-22", "2026-08-23", "2026-08-24"],
		"temperature_2m_max": [84.1, 79.0, 71.2],
		"temperature_2m_min": [65.0, 62.3, 58.9],
		"precipitation_probability_max": [10, 65, 40],
		"weathercode": [3, 61, 2]
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(41.8781, -87.6298, "America/Chicago", "")
	client.BaseURL = server.URL
	return client
}

func TestTodayMergesCurrentConditions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(forecastPayload))
	})
	svc := NewDefaultWeatherService(client, nil)

	snap, err := svc.Today(context.Background())
	if err != nil {
		t.Fatalf("Today error: %v", err)
	}

	if snap.Date != "2026-08-22" {
		t.Errorf("Date = %q", snap.Date)
	}
	// Today's label comes from the live code (0 = clear), not the daily one.
	if snap.Condition != "Clear" || snap.Icon != "sun" {
		t.Errorf("Condition/Icon = %q/%q, want Clear/sun", snap.Condition, snap.Icon)
	}
	if snap.TempF != 68.5 {
		t.Errorf("TempF = %v", snap.TempF)
	}
	if snap.WindMph != 12.3 {
		t.Errorf("WindMph = %v", snap.WindMph)
	}
	if snap.HighF != 84.1 || snap.LowF != 65.0 {
		t.Errorf("High/Low = %v/%v", snap.HighF, snap.LowF)
	}
	if snap.PrecipChance != 10 {
		t.Errorf("PrecipChance = %d", snap.PrecipChance)
	}
	if snap.RainLikely {
		t.Error("10% precipitation flagged as rain-likely")
	}
	if snap.FetchedAt.IsZero() {
		t.Error("FetchedAt not stamped")
	}
}

func TestForecastUsesDailyCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(forecastPayload))
	})
	svc := NewDefaultWeatherService(client, nil)

	snap, err := svc.Forecast(context.Background(), 1)
	if err != nil {
		t.Fatalf("Forecast error: %v", err)
	}

	if snap.Date != "2026-08-23" {
		t.Errorf("Date = %q", snap.Date)
	}
	if snap.Condition != "Rain" || snap.Icon != "rain" {
		t.Errorf("Condition/Icon = %q/%q, want Rain/rain", snap.Condition, snap.Icon)
	}
	// Tomorrow has no live reading, so current-only fields stay zero.
	if snap.TempF != 0 || snap.WindMph != 0 {
		t.Errorf("current-only fields leaked into forecast: %v/%v", snap.TempF, snap.WindMph)
	}
	if !snap.RainLikely {
		t.Error("65% precipitation not flagged as rain-likely")
	}
}

func TestForecastDayBounds(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(forecastPayload))
	})
	svc := NewDefaultWeatherService(client, nil)

	for _, day := range []int{-1, 7, 100} {
		if _, err := svc.Forecast(context.Background(), day); err == nil {
			t.Errorf("Forecast(%d) succeeded, want range error", day)
		}
	}
}

func TestForecastRequestShape(t *testing.T) {
	var query string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Write([]byte(forecastPayload))
	})
	svc := NewDefaultWeatherService(client, nil)

	if _, err := svc.Forecast(context.Background(), 2); err != nil {
		t.Fatalf("Forecast error: %v", err)
	}

	values, err := url.ParseQuery(query)
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	if got := values.Get("forecast_days"); got != "3" {
		t.Errorf("forecast_days = %q, want 3 (day index 2)", got)
	}
	if got := values.Get("temperature_unit"); got != "fahrenheit" {
		t.Errorf("temperature_unit = %q", got)
	}
	if got := values.Get("timezone"); got != "America/Chicago" {
		t.Errorf("timezone = %q", got)
	}
	if values.Get("apikey") != "" {
		t.Error("apikey sent on the free tier")
	}
}

func TestForecastUpstreamFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})
	svc := NewDefaultWeatherService(client, nil)

	if _, err := svc.Forecast(context.Background(), 0); err == nil {
		t.Fatal("Forecast succeeded against a failing upstream")
	}

	// Note is best effort: a downed forecast yields an empty note, not an error.
	if note := svc.Note(context.Background()); note != "" {
		t.Errorf("Note = %q, want empty on failure", note)
	}
}

func TestNote(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(forecastPayload))
	})
	svc := NewDefaultWeatherService(client, nil)

	want := "Clear, high 84°F, 10% chance of rain"
	if got := svc.Note(context.Background()); got != want {
		t.Errorf("Note = %q, want %q", got, want)
	}
}

func TestConditionFor(t *testing.T) {
	tests := []struct {
		code  int
		label string
		icon  string
	}{
		{0, "Clear", "sun"},
		{1, "Partly cloudy", "partly-cloudy"},
		{3, "Overcast", "cloud"},
		{45, "Fog", "fog"},
		{53, "Drizzle", "drizzle"},
		{63, "Rain", "rain"},
		{73, "Snow", "snow"},
		{81, "Rain showers", "rain"},
		{86, "Snow showers", "snow"},
		{95, "Thunderstorm", "storm"},
		{99, "Thunderstorm", "storm"},
		{42, "Unknown", "cloud"},
	}
	for _, tt := range tests {
		label, icon := conditionFor(tt.code)
		if label != tt.label || icon != tt.icon {
			t.Errorf("conditionFor(%d) = %q/%q, want %q/%q", tt.code, label, icon, tt.label, tt.icon)
		}
	}
}
