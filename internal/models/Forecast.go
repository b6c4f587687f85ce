package models

import (
	"fmt"
	"time"
)

const (
	ForecastStatusFailed = "failed"
	UnitAQI              = "AQI"
)

// Prediction is what the predictive model returns for one target time.
type Prediction struct {
	AQI             int
	Category        string
	Recommendations []string
	Timestamp       time.Time
}

// HorizonForecast is the outcome of one forecast horizon. Either the
// prediction fields or Status/Error are set, never both.
type HorizonForecast struct {
	AQI             *int     `json:"aqi,omitempty" example:"57"`
	Category        string   `json:"category,omitempty" example:"Moderate"`
	Recommendations []string `json:"recommendations,omitempty"`
	Timestamp       string   `json:"timestamp,omitempty" example:"2025-07-26T14:00:00Z"`
	Unit            string   `json:"unit,omitempty" example:"AQI"`
	Status          string   `json:"status,omitempty" example:"failed"`
	Error           string   `json:"error,omitempty"`
}

func SucceededHorizon(p Prediction) HorizonForecast {
	aqi := p.AQI
	return HorizonForecast{
		AQI:             &aqi,
		Category:        p.Category,
		Recommendations: p.Recommendations,
		Timestamp:       p.Timestamp.Format(time.RFC3339),
		Unit:            UnitAQI,
	}
}

func FailedHorizon(err error) HorizonForecast {
	return HorizonForecast{
		Status: ForecastStatusFailed,
		Error:  err.Error(),
	}
}

func (h HorizonForecast) Failed() bool {
	return h.Status == ForecastStatusFailed
}

// HorizonLabel is the response key for a horizon, e.g. "24_hour_forecast".
func HorizonLabel(hours int) string {
	return fmt.Sprintf("%d_hour_forecast", hours)
}

// Forecast is the full multi-horizon result for one coordinate.
type Forecast struct {
	Coordinate Coordinate
	Hours      []int
	Horizons   map[string]HorizonForecast
}
