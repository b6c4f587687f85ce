package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"airquality-api/internal/models"
	"airquality-api/internal/services/forecast"
)

// CurrentConditionsService assembles current conditions for a coordinate.
type CurrentConditionsService interface {
	CurrentConditions(ctx context.Context, coord models.Coordinate) models.CurrentConditions
}

// ForecastService produces multi-horizon AQI forecasts.
type ForecastService interface {
	Forecast(ctx context.Context, coord models.Coordinate, hours []int) (models.Forecast, error)
}

// GetCurrentAQI godoc
// @Summary Get current air quality
// @Description Merges the nearest ground station PM2.5, current weather and a mock satellite estimate for a location.
// @Description Sources that cannot answer are reported as unavailable; the request still succeeds.
// @Tags AirQuality
// @Produce json
// @Param lat query number true "Latitude coordinate (-90 to 90)" minimum(-90) maximum(90) example(51.5074)
// @Param lon query number true "Longitude coordinate (-180 to 180)" minimum(-180) maximum(180) example(-0.1278)
// @Success 200 {object} CurrentAQIResponse "Merged current conditions"
// @Failure 400 {object} ErrorResponse "Bad request - missing or invalid coordinates"
// @Router /api/current-aqi [get]
// @Example {curl} Example usage:
//
//	curl -X GET "http://localhost:8080/api/current-aqi?lat=51.5074&lon=-0.1278"
func (r *routes) handleCurrentAQI(c *fiber.Ctx) error {
	coord, err := r.parseCurrentQuery(c.Query("lat"), c.Query("lon"))
	if err != nil {
		return r.rejectRequest(c, err)
	}

	result := r.airQuality.CurrentConditions(c.Context(), coord)

	return c.JSON(newCurrentAQIResponse(result))
}

// PredictAQI godoc
// @Summary Predict air quality
// @Description Forecasts the AQI at each requested number of hours ahead. A failing horizon is reported in place.
// @Tags AirQuality
// @Accept json
// @Produce json
// @Param request body PredictAQIRequest true "Location and horizons in hours (default [24, 48])"
// @Success 200 {object} PredictAQIResponse "Forecast per horizon"
// @Failure 400 {object} ErrorResponse "Bad request - missing or invalid parameters"
// @Failure 503 {object} ErrorResponse "Prediction model not loaded"
// @Router /api/predict-aqi [post]
// @Example {curl} Example usage:
//
//	curl -X POST "http://localhost:8080/api/predict-aqi" -H "Content-Type: application/json" \
//	  -d '{"latitude": 51.5074, "longitude": -0.1278, "prediction_hours": [24, 48]}'
func (r *routes) handlePredictAQI(c *fiber.Ctx) error {
	coord, hours, err := r.parsePredictBody(c.Body())
	if err != nil {
		return r.rejectRequest(c, err)
	}

	result, err := r.forecast.Forecast(c.Context(), coord, hours)
	if err != nil {
		if errors.Is(err, forecast.ErrModelUnavailable) {
			r.l.Warning("forecast requested without a loaded model", coord.Fields())
			return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
				Error: msgModelNotLoaded,
			})
		}

		r.l.Error(err, coord.Fields())
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to compute forecast",
		})
	}

	return c.JSON(newPredictAQIResponse(result))
}

func (r *routes) rejectRequest(c *fiber.Ctx, err error) error {
	var reqErr *requestError
	if !errors.As(err, &reqErr) {
		return err
	}

	r.l.Debug("request rejected", map[string]any{
		"path":   c.Path(),
		"reason": reqErr.message,
	})
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error: reqErr.message,
	})
}
