package predictor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"airquality-api/internal/models"
	"airquality-api/pkg/logger"
)

var (
	ErrModelNotLoaded = errors.New("model not loaded")
	ErrNonFinite      = errors.New("model produced a non-finite value")
	ErrTargetInPast   = errors.New("prediction target is before the issue time")
)

// Predictor serves AQI predictions from a loaded Model. A Predictor whose
// model failed to load stays usable but reports itself unavailable.
type Predictor struct {
	model *Model
	l     *logger.Logger
}

// New loads the model at path. Load failures are logged, not returned.
func New(path string, l *logger.Logger) *Predictor {
	m, err := LoadModel(path)
	if err != nil {
		l.Error(err, map[string]any{"model_path": path})
		return &Predictor{l: l}
	}

	l.Info("prediction model loaded", map[string]any{
		"model":             m.Tag(),
		"max_horizon_hours": m.MaxHorizonHours,
	})
	return &Predictor{model: m, l: l}
}

func NewWithModel(m *Model, l *logger.Logger) *Predictor {
	return &Predictor{model: m, l: l}
}

func (p *Predictor) IsAvailable() bool {
	return p.model != nil
}

// Predict forecasts the AQI at target time at for a request issued at issued.
func (p *Predictor) Predict(ctx context.Context, coord models.Coordinate, issued, at time.Time) (models.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return models.Prediction{}, err
	}
	if p.model == nil {
		return models.Prediction{}, ErrModelNotLoaded
	}
	lead := at.Sub(issued)
	if lead < 0 {
		return models.Prediction{}, fmt.Errorf("%w: lead time %s", ErrTargetInPast, lead)
	}

	// partial hours count as a whole hour of lead
	hours := int(math.Ceil(lead.Hours()))
	if hours > p.model.MaxHorizonHours {
		return models.Prediction{}, fmt.Errorf("prediction horizon of %d hours exceeds model limit of %d hours", hours, p.model.MaxHorizonHours)
	}

	score := p.model.Score(coord.Lat, coord.Lon, hours, at)
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return models.Prediction{}, ErrNonFinite
	}

	aqi := int(math.Round(math.Min(math.Max(score, MinAQI), MaxAQI)))
	category := Categorize(aqi)

	p.l.Debug("prediction computed", map[string]any{
		"lat":   coord.Lat,
		"lon":   coord.Lon,
		"hours": hours,
		"score": score,
		"aqi":   aqi,
	})

	return models.Prediction{
		AQI:             aqi,
		Category:        category.Name,
		Recommendations: category.Recommendations(),
		Timestamp:       at,
	}, nil
}
