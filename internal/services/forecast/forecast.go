package forecast

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"airquality-api/internal/models"
	"airquality-api/pkg/logger"
)

// ErrModelUnavailable is returned before any horizon is evaluated when the
// predictor has no model.
var ErrModelUnavailable = errors.New("prediction model not loaded")

// DefaultHours are the horizons used when a request names none.
var DefaultHours = []int{24, 48}

// MaxHours is the largest horizon accepted, one year ahead.
const MaxHours = 8760

const maxConcurrentHorizons = 4

// Predictor produces one AQI prediction for a coordinate at target time at,
// for a request issued at issued.
type Predictor interface {
	IsAvailable() bool
	Predict(ctx context.Context, coord models.Coordinate, issued, at time.Time) (models.Prediction, error)
}

type Service struct {
	predictor Predictor
	now       func() time.Time
	l         *logger.Logger
}

func NewService(predictor Predictor, l *logger.Logger) *Service {
	return &Service{
		predictor: predictor,
		now:       time.Now,
		l:         l,
	}
}

// WithClock replaces the time source horizons are measured from.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Forecast evaluates every requested horizon from a single reference time.
// A failing horizon is recorded in place and does not affect the others.
func (s *Service) Forecast(ctx context.Context, coord models.Coordinate, hours []int) (models.Forecast, error) {
	if s.predictor == nil || !s.predictor.IsAvailable() {
		return models.Forecast{}, ErrModelUnavailable
	}

	issued := s.now().UTC()

	var (
		mu       sync.Mutex
		horizons = make(map[string]models.HorizonForecast, len(hours))
		g        errgroup.Group
	)
	g.SetLimit(maxConcurrentHorizons)

	for _, h := range hours {
		g.Go(func() error {
			result := s.predictHorizon(ctx, coord, issued, h)

			mu.Lock()
			horizons[models.HorizonLabel(h)] = result
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return models.Forecast{
		Coordinate: coord,
		Hours:      hours,
		Horizons:   horizons,
	}, nil
}

func (s *Service) predictHorizon(ctx context.Context, coord models.Coordinate, issued time.Time, hours int) models.HorizonForecast {
	p, err := s.predict(ctx, coord, issued, hours)
	if err != nil {
		s.l.Error(err, map[string]any{
			"lat":   coord.Lat,
			"lon":   coord.Lon,
			"hours": hours,
		})
		return models.FailedHorizon(err)
	}
	return models.SucceededHorizon(p)
}

func (s *Service) predict(ctx context.Context, coord models.Coordinate, issued time.Time, hours int) (models.Prediction, error) {
	if hours <= 0 || hours > MaxHours {
		return models.Prediction{}, fmt.Errorf("prediction horizon of %d hours is outside 1..%d", hours, MaxHours)
	}

	at := issued.Add(time.Duration(hours) * time.Hour)
	return s.predictor.Predict(ctx, coord, issued, at)
}
