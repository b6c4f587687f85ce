package models

import "time"

const (
	OverallSuccess         = "Success"
	OverallLimitedData     = "Partial Success: Limited data available"
	OverallNoGroundStation = "Partial Success: Ground station data not available"
	OverallNoWeather       = "Partial Success: Weather data not available"
)

// CurrentConditions is the merged view of all sources for one coordinate.
type CurrentConditions struct {
	Coordinate Coordinate
	Timestamp  time.Time
	Status     string
	Ground     Outcome[GroundReading]
	Weather    Outcome[WeatherReading]
	Satellite  Outcome[SatelliteReading]
	Comparison *Comparison
	Sources    []SourceStatus
}
