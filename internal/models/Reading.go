package models

const UnitPM25 = "µg/m³"

// GroundReading is the latest PM2.5 measurement of the nearest ground station.
type GroundReading struct {
	Location string  `json:"location" example:"London Marylebone Road"`
	City     string  `json:"city,omitempty" example:"London"`
	Country  string  `json:"country,omitempty" example:"GB"`
	PM25     float64 `json:"current_pm25" example:"12.4"`
	Unit     string  `json:"unit" example:"µg/m³"`
	Source   string  `json:"source" example:"OpenAQ"`
}

// WeatherReading holds current conditions at a coordinate.
type WeatherReading struct {
	Temperature float64 `json:"temperature" example:"14.2"`
	Humidity    float64 `json:"humidity" example:"72"`
	WindSpeed   float64 `json:"wind_speed" example:"3.6"`
	Description string  `json:"description" example:"light rain"`
	Source      string  `json:"source" example:"OpenWeatherMap"`
}

// SatelliteReading is a synthetic satellite-equivalent PM2.5 estimate.
type SatelliteReading struct {
	PM25   float64 `json:"current_pm25" example:"13.1"`
	Unit   string  `json:"unit" example:"µg/m³"`
	Source string  `json:"source" example:"TEMPO (Satellite - Mock)"`
}
