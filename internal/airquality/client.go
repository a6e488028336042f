package airquality

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"healieve/health-app/internal/config"
	"healieve/health-app/internal/domain"
)

// trendHours is how many hourly samples feed the trend/forecast series.
const trendHours = 24

// forecastResponse is the subset of the Open-Meteo forecast payload we read.
// Hourly arrays are indexed by hour; index 0 is the current/nearest hour.
type forecastResponse struct {
	CurrentWeather struct {
		Temperature   *float64 `json:"temperature"`
		WindSpeed     *float64 `json:"windspeed"` // already km/h
		WindDirection *float64 `json:"winddirection"`
	} `json:"current_weather"`
	Hourly struct {
		Time             []string   `json:"time"`
		RelativeHumidity []*float64 `json:"relativehumidity_2m"`
	} `json:"hourly"`
}

// airQualityResponse is the subset of the Open-Meteo air-quality payload.
type airQualityResponse struct {
	Hourly struct {
		Time []string   `json:"time"`
		PM25 []*float64 `json:"pm2_5"`
		PM10 []*float64 `json:"pm10"`
	} `json:"hourly"`
}

// Observation is the normalized result of one fetch: current conditions plus
// the hourly pollutant arrays the trend series are derived from.
type Observation struct {
	Weather    domain.WeatherNow
	Sample     domain.AirQualitySample
	HourLabels []string
	HourlyPM25 []*float64
}

// Client fetches weather and air-quality data from the two Open-Meteo APIs.
type Client struct {
	forecastURL   string
	airQualityURL string
	httpClient    *http.Client
}

// NewClient builds a client for the configured API endpoints.
func NewClient(cfg config.WeatherConfig) *Client {
	return &Client{
		forecastURL:   cfg.ForecastURL,
		airQualityURL: cfg.AirQualityURL,
		httpClient:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch retrieves current weather and hourly pollutant concentrations for a
// coordinate. Any non-OK or malformed upstream response fails the whole call;
// there are no retries.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (*Observation, error) {
	wURL := fmt.Sprintf("%s?latitude=%s&longitude=%s&current_weather=true"+
		"&hourly=temperature_2m,relativehumidity_2m,winddirection_10m,windspeed_10m"+
		"&forecast_days=2&timezone=auto",
		c.forecastURL, coord(lat), coord(lon))
	aURL := fmt.Sprintf("%s?latitude=%s&longitude=%s&hourly=pm2_5,pm10&timezone=auto",
		c.airQualityURL, coord(lat), coord(lon))

	var weather forecastResponse
	if err := c.getJSON(ctx, wURL, &weather); err != nil {
		return nil, fmt.Errorf("forecast fetch: %w", err)
	}
	var air airQualityResponse
	if err := c.getJSON(ctx, aURL, &air); err != nil {
		return nil, fmt.Errorf("air quality fetch: %w", err)
	}

	obs := &Observation{
		Weather: domain.WeatherNow{
			TempC:    weather.CurrentWeather.Temperature,
			WindKph:  weather.CurrentWeather.WindSpeed,
			WindDeg:  weather.CurrentWeather.WindDirection,
			Humidity: at(weather.Hourly.RelativeHumidity, 0),
		},
		Sample: domain.AirQualitySample{
			PM25: at(air.Hourly.PM25, 0),
			PM10: at(air.Hourly.PM10, 0),
		},
	}

	n := len(air.Hourly.Time)
	if n > trendHours {
		n = trendHours
	}
	for i := 0; i < n; i++ {
		ts, err := time.Parse("2006-01-02T15:04", air.Hourly.Time[i])
		label := air.Hourly.Time[i]
		if err == nil {
			label = ts.Format("15:04")
		}
		obs.HourLabels = append(obs.HourLabels, label)
		obs.HourlyPM25 = append(obs.HourlyPM25, at(air.Hourly.PM25, i))
	}

	return obs, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// at safely indexes an hourly array; out-of-range or null entries become nil.
func at(vs []*float64, i int) *float64 {
	if i < 0 || i >= len(vs) {
		return nil
	}
	return vs[i]
}

func coord(v float64) string {
	return url.QueryEscape(fmt.Sprintf("%.4f", v))
}
