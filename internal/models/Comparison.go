package models

const ComparisonNote = "Satellite and ground data may differ due to sensing methods, spatial resolution, and atmospheric conditions."

// Comparison reconciles a ground reading with a satellite estimate.
type Comparison struct {
	GroundPM25        float64 `json:"ground_pm25" example:"12.4"`
	SatellitePM25     float64 `json:"satellite_pm25" example:"13.1"`
	DifferenceAbs     float64 `json:"difference_abs" example:"0.7"`
	DifferencePercent float64 `json:"difference_percent" example:"5.65"`
	Note              string  `json:"note"`
}
