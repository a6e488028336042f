package service

import (
	"context"
	"errors"

	"healieve/health-app/internal/airquality"
	"healieve/health-app/internal/domain"
	"healieve/health-app/internal/logger"
)

// --- Error Definitions ---
var (
	ErrAdvisoryUnavailable = errors.New("weather or air quality data unavailable")
)

// AdvisoryService derives an AQI reading and health recommendations for a
// coordinate from live weather and air-quality data.
type AdvisoryService interface {
	Advise(ctx context.Context, lat, lon float64) (*domain.Advisory, error)
}

type advisoryService struct {
	client *airquality.Client
	log    *logger.Logger
}

// NewAdvisoryService creates a new instance of advisoryService.
func NewAdvisoryService(client *airquality.Client, log *logger.Logger) AdvisoryService {
	return &advisoryService{client: client, log: log}
}

// Advise fetches current conditions and runs the AQI engine over them.
// One attempt per call; an upstream failure fails this request only.
func (s *advisoryService) Advise(ctx context.Context, lat, lon float64) (*domain.Advisory, error) {
	obs, err := s.client.Fetch(ctx, lat, lon)
	if err != nil {
		s.log.Error("advisory data fetch failed", "lat", lat, "lon", lon, "error", err)
		return nil, ErrAdvisoryUnavailable
	}

	reading := airquality.Reading(obs.Sample)

	// Trend and forecast both derive from the hourly PM2.5 row; the client
	// charts show them as last-24h and next-24h views of the same signal.
	trend := domain.ChartSeries{Labels: obs.HourLabels}
	for _, c := range obs.HourlyPM25 {
		trend.Values = append(trend.Values, float64(airquality.AQIFromPM25(c)))
	}

	return &domain.Advisory{
		Weather:         obs.Weather,
		Sample:          obs.Sample,
		Reading:         reading,
		Recommendations: airquality.Advise(reading, obs.Weather, obs.Sample),
		Trend:           trend,
		Forecast:        trend,
	}, nil
}
