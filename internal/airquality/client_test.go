package airquality

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"healieve/health-app/internal/config"
)

const forecastBody = `{
  "current_weather": {"temperature": 21.4, "windspeed": 9.7, "winddirection": 180},
  "hourly": {
    "time": ["2026-09-01T00:00", "2026-09-01T01:00"],
    "relativehumidity_2m": [68, 70]
  }
}`

const airBody = `{
  "hourly": {
    "time": ["2026-09-01T00:00", "2026-09-01T01:00"],
    "pm2_5": [10.0, null],
    "pm10": [30.0, 28.0]
  }
}`

func testClient(t *testing.T, forecastStatus, airStatus int) (*Client, func()) {
	t.Helper()
	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(forecastStatus)
		_, _ = w.Write([]byte(forecastBody))
	}))
	air := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(airStatus)
		_, _ = w.Write([]byte(airBody))
	}))
	c := NewClient(config.WeatherConfig{ForecastURL: forecast.URL, AirQualityURL: air.URL})
	return c, func() { forecast.Close(); air.Close() }
}

func TestFetch_NormalizesIndexZero(t *testing.T) {
	c, done := testClient(t, http.StatusOK, http.StatusOK)
	defer done()

	obs, err := c.Fetch(context.Background(), 50.45, 30.52)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if obs.Weather.TempC == nil || *obs.Weather.TempC != 21.4 {
		t.Fatalf("tempC = %v, want 21.4", obs.Weather.TempC)
	}
	if obs.Weather.Humidity == nil || *obs.Weather.Humidity != 68 {
		t.Fatalf("humidity should come from hourly index 0, got %v", obs.Weather.Humidity)
	}
	if obs.Sample.PM25 == nil || *obs.Sample.PM25 != 10.0 {
		t.Fatalf("pm2.5 = %v, want 10.0", obs.Sample.PM25)
	}
	if obs.Sample.PM10 == nil || *obs.Sample.PM10 != 30.0 {
		t.Fatalf("pm10 = %v, want 30.0", obs.Sample.PM10)
	}
	if len(obs.HourLabels) != 2 || len(obs.HourlyPM25) != 2 {
		t.Fatalf("expected 2 hourly samples, got %d/%d", len(obs.HourLabels), len(obs.HourlyPM25))
	}
	if obs.HourlyPM25[1] != nil {
		t.Fatalf("null hourly value should stay nil")
	}
	if obs.HourLabels[0] != "00:00" {
		t.Fatalf("hour label = %q, want %q", obs.HourLabels[0], "00:00")
	}
}

func TestFetch_UpstreamFailureFailsWholeCall(t *testing.T) {
	c, done := testClient(t, http.StatusOK, http.StatusBadGateway)
	defer done()
	if _, err := c.Fetch(context.Background(), 0, 0); err == nil {
		t.Fatalf("non-OK air-quality response should fail the fetch")
	}

	c2, done2 := testClient(t, http.StatusInternalServerError, http.StatusOK)
	defer done2()
	if _, err := c2.Fetch(context.Background(), 0, 0); err == nil {
		t.Fatalf("non-OK forecast response should fail the fetch")
	}
}
