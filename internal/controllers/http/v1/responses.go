package http

import (
	"time"

	"airquality-api/internal/models"
)

const modelSource = "Custom AI/ML Model"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Latitude and longitude are required."`
}

// CurrentAQIResponse represents the merged current conditions for a location
type CurrentAQIResponse struct {
	Latitude          float64               `json:"latitude" example:"51.5074"`
	Longitude         float64               `json:"longitude" example:"-0.1278"`
	Timestamp         string                `json:"timestamp" example:"2025-07-26T14:00:00Z"`
	Status            string                `json:"status" example:"Success"`
	Data              CurrentAQIData        `json:"data"`
	DataSourcesStatus []models.SourceStatus `json:"data_sources_status"`
}

// CurrentAQIData holds one entry per source. An unavailable source is
// rendered as {"message": "..."}.
type CurrentAQIData struct {
	GroundStationData models.Outcome[models.GroundReading]    `json:"ground_station_data" swaggertype:"object"`
	WeatherData       models.Outcome[models.WeatherReading]   `json:"weather_data" swaggertype:"object"`
	SatelliteData     models.Outcome[models.SatelliteReading] `json:"satellite_data" swaggertype:"object"`
	DataComparison    *models.Comparison                      `json:"data_comparison,omitempty"`
}

func newCurrentAQIResponse(cc models.CurrentConditions) CurrentAQIResponse {
	return CurrentAQIResponse{
		Latitude:  cc.Coordinate.Lat,
		Longitude: cc.Coordinate.Lon,
		Timestamp: cc.Timestamp.UTC().Format(time.RFC3339),
		Status:    cc.Status,
		Data: CurrentAQIData{
			GroundStationData: cc.Ground,
			WeatherData:       cc.Weather,
			SatelliteData:     cc.Satellite,
			DataComparison:    cc.Comparison,
		},
		DataSourcesStatus: cc.Sources,
	}
}

// PredictAQIRequest is the body of a forecast request. Coordinates may be
// JSON numbers or numeric strings.
type PredictAQIRequest struct {
	Latitude        any   `json:"latitude" swaggertype:"number" example:"51.5074"`
	Longitude       any   `json:"longitude" swaggertype:"number" example:"-0.1278"`
	PredictionHours []int `json:"prediction_hours" example:"24,48"`
}

// PredictAQIResponse represents the multi-horizon forecast
type PredictAQIResponse struct {
	Latitude                 float64                           `json:"latitude" example:"51.5074"`
	Longitude                float64                           `json:"longitude" example:"-0.1278"`
	RequestedPredictionTimes []int                             `json:"requested_prediction_times" example:"24,48"`
	Forecasts                map[string]models.HorizonForecast `json:"forecasts"`
	ModelSource              string                            `json:"model_source" example:"Custom AI/ML Model"`
}

func newPredictAQIResponse(f models.Forecast) PredictAQIResponse {
	return PredictAQIResponse{
		Latitude:                 f.Coordinate.Lat,
		Longitude:                f.Coordinate.Lon,
		RequestedPredictionTimes: f.Hours,
		Forecasts:                f.Horizons,
		ModelSource:              modelSource,
	}
}
