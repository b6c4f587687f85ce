package models

import "fmt"

// Coordinate is a validated WGS84 point.
type Coordinate struct {
	Lat float64 `json:"latitude" example:"51.5074"`
	Lon float64 `json:"longitude" example:"-0.1278"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Lat, c.Lon)
}

// Fields returns the coordinate as log fields.
func (c Coordinate) Fields() map[string]any {
	return map[string]any{
		"lat": c.Lat,
		"lon": c.Lon,
	}
}
