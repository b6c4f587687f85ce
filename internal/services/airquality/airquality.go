package airquality

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"airquality-api/internal/models"
	"airquality-api/internal/repositories"
	"airquality-api/pkg/logger"
)

const (
	msgGroundUnavailable       = "No real-time PM2.5 data from OpenAQ for this location."
	msgGroundStatusUnavailable = "Could not retrieve real-time PM2.5 data."
	msgWeatherUnavailable      = "Could not retrieve weather data."
	msgSatelliteUnavailable    = "TEMPO satellite data is not available (mock data)."
)

// Service assembles current conditions from the ground network, the weather
// provider and the mock satellite estimator.
type Service struct {
	airQuality repositories.AirQualityRepository
	weather    repositories.WeatherRepository
	satellite  *SatelliteEstimator
	now        func() time.Time
	l          *logger.Logger
}

func NewService(repos repositories.Repositories, satellite *SatelliteEstimator, l *logger.Logger) *Service {
	if satellite == nil {
		satellite = NewSatelliteEstimator(nil)
	}

	return &Service{
		airQuality: repos.AirQuality,
		weather:    repos.Weather,
		satellite:  satellite,
		now:        time.Now,
		l:          l,
	}
}

// WithClock replaces the time source used for response timestamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CurrentConditions never fails: each source that cannot answer is reported
// as unavailable and the overall status says which ones are missing.
func (s *Service) CurrentConditions(ctx context.Context, coord models.Coordinate) models.CurrentConditions {
	s.l.Info("starting current conditions fetch", coord.Fields())

	var (
		ground  models.Outcome[models.GroundReading]
		weather models.Outcome[models.WeatherReading]
		g       errgroup.Group
	)

	g.Go(func() error {
		ground = s.fetchGround(ctx, coord)
		return nil
	})
	g.Go(func() error {
		weather = s.fetchWeather(ctx, coord)
		return nil
	})
	_ = g.Wait()

	satellite := models.Unavailable[models.SatelliteReading](msgSatelliteUnavailable)
	if est, ok := s.satellite.Estimate(ground.Value); ok {
		satellite = models.Available(est)
	}

	result := models.CurrentConditions{
		Coordinate: coord,
		Timestamp:  s.now(),
		Status:     OverallStatus(ground.OK(), weather.OK()),
		Ground:     ground,
		Weather:    weather,
		Satellite:  satellite,
		Comparison: Compare(ground.Value, satellite.Value),
		Sources: []models.SourceStatus{
			models.NewSourceStatus(models.SourceGroundStation, ground, models.StatusLabels{
				Success: models.StatusSuccess,
				Failed:  models.StatusFailed,
				Message: msgGroundStatusUnavailable,
			}),
			models.NewSourceStatus(models.SourceWeather, weather, models.RealSourceLabels),
			models.NewSourceStatus(models.SourceSatellite, satellite, models.MockSourceLabels),
		},
	}

	s.l.Info("completed current conditions fetch", map[string]any{
		"lat":        coord.Lat,
		"lon":        coord.Lon,
		"status":     result.Status,
		"ground":     ground.OK(),
		"weather":    weather.OK(),
		"comparison": result.Comparison != nil,
	})

	return result
}

func (s *Service) fetchGround(ctx context.Context, coord models.Coordinate) models.Outcome[models.GroundReading] {
	if s.airQuality == nil {
		return models.Unavailable[models.GroundReading](msgGroundUnavailable)
	}

	reading, err := s.airQuality.FetchLatest(ctx, coord)
	if err != nil {
		return models.Unavailable[models.GroundReading](msgGroundUnavailable)
	}
	return models.Available(reading)
}

func (s *Service) fetchWeather(ctx context.Context, coord models.Coordinate) models.Outcome[models.WeatherReading] {
	if s.weather == nil {
		return models.Unavailable[models.WeatherReading](msgWeatherUnavailable)
	}

	reading, err := s.weather.FetchCurrent(ctx, coord)
	if err != nil {
		return models.Unavailable[models.WeatherReading](msgWeatherUnavailable)
	}
	return models.Available(reading)
}
