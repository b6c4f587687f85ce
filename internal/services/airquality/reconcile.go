package airquality

import (
	"math"

	"airquality-api/internal/models"
)

// Compare reconciles ground and satellite PM2.5. It returns nil unless both
// readings are present. A zero ground value yields a 0% difference.
func Compare(ground *models.GroundReading, satellite *models.SatelliteReading) *models.Comparison {
	if ground == nil || satellite == nil {
		return nil
	}

	diffAbs := math.Abs(ground.PM25 - satellite.PM25)

	var diffPercent float64
	if ground.PM25 != 0 {
		diffPercent = diffAbs / ground.PM25 * 100
	}

	return &models.Comparison{
		GroundPM25:        ground.PM25,
		SatellitePM25:     satellite.PM25,
		DifferenceAbs:     round2(diffAbs),
		DifferencePercent: round2(diffPercent),
		Note:              models.ComparisonNote,
	}
}

// OverallStatus derives the response status from which of the real sources
// answered. The satellite estimate follows the ground reading and is ignored.
func OverallStatus(hasGround, hasWeather bool) string {
	switch {
	case !hasGround && !hasWeather:
		return models.OverallLimitedData
	case !hasGround:
		return models.OverallNoGroundStation
	case !hasWeather:
		return models.OverallNoWeather
	default:
		return models.OverallSuccess
	}
}
