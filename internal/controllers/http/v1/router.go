package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "airquality-api/docs"
	"airquality-api/pkg/logger"
)

type routes struct {
	airQuality CurrentConditionsService
	forecast   ForecastService
	validate   *validator.Validate
	l          *logger.Logger
}

func NewRouter(
	app *fiber.App,
	airQualityService CurrentConditionsService,
	forecastService ForecastService,
	l *logger.Logger,
) {
	r := &routes{
		airQuality: airQualityService,
		forecast:   forecastService,
		validate:   validator.New(),
		l:          l,
	}

	// Swagger documentation
	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// API routes
	api := app.Group("/api")
	api.Get("/current-aqi", r.handleCurrentAQI)
	api.Post("/predict-aqi", r.handlePredictAQI)
}
