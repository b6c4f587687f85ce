package predictor

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Model is an additive AQI model: a baseline adjusted by location and by
// hour-of-day, weekday and month profiles.
type Model struct {
	Name            string    `yaml:"name" validate:"required"`
	Version         string    `yaml:"version" validate:"required"`
	Baseline        float64   `yaml:"baseline" validate:"gte=0,lte=500"`
	LatitudeWeight  float64   `yaml:"latitude_weight"`
	LongitudeWeight float64   `yaml:"longitude_weight"`
	TrendPerHour    float64   `yaml:"trend_per_hour"`
	Hourly          []float64 `yaml:"hourly" validate:"len=24"`
	Weekday         []float64 `yaml:"weekday" validate:"len=7"`
	Monthly         []float64 `yaml:"monthly" validate:"len=12"`
	MaxHorizonHours int       `yaml:"max_horizon_hours" validate:"gt=0"`
}

// LoadModel reads and validates a model file.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Model
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse model file: %w", err)
	}

	if err := validator.New().Struct(m); err != nil {
		return nil, fmt.Errorf("invalid model %q: %w", path, err)
	}

	return &m, nil
}

// Score is the raw model output for a location and target time, before
// clamping to the AQI scale.
func (m *Model) Score(lat, lon float64, hours int, at time.Time) float64 {
	at = at.UTC()

	return m.Baseline +
		m.LatitudeWeight*math.Abs(lat) +
		m.LongitudeWeight*math.Abs(lon) +
		m.TrendPerHour*float64(hours) +
		m.Hourly[at.Hour()] +
		m.Weekday[int(at.Weekday())] +
		m.Monthly[int(at.Month())-1]
}

// Tag identifies the model in logs.
func (m *Model) Tag() string {
	return m.Name + "@" + m.Version
}
