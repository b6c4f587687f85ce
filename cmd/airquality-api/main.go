package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"airquality-api/config"
	v1 "airquality-api/internal/controllers/http/v1"
	"airquality-api/internal/predictor"
	"airquality-api/internal/repositories"
	"airquality-api/internal/services/airquality"
	"airquality-api/internal/services/forecast"
	"airquality-api/pkg/httpserver"
	"airquality-api/pkg/logger"
	"airquality-api/pkg/observe"
)

// @title Air Quality API
// @version 1.0.0
// @description Aggregates ground station, weather and satellite air quality data and serves AQI forecasts.

// @contact.name Air Quality API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name AirQuality
// @tag.description Current air quality and AQI forecasts
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load config:", err)
		os.Exit(1)
	}

	hook := observe.NewSentryHook(cnf.AppEnv, cnf.AppName, cnf.IsDevelopment(), cnf.SentryDSN)
	l := logger.NewZapLogger(cnf.AppName, cnf.AppEnv, cnf.LogLevel, os.Stdout, hook)
	hook.SetLogger(l)

	app := httpserver.InitFiberServer(cnf.AppName, l)

	repos := repositories.InitRepositories(cnf, l, &http.Client{Timeout: cnf.UpstreamTimeout})

	random := airquality.UnseededSource()
	if cnf.SatelliteSeed != 0 {
		random = airquality.SeededSource(cnf.SatelliteSeed)
	}
	airQualityService := airquality.NewService(repos, airquality.NewSatelliteEstimator(random), l)

	forecastService := forecast.NewService(predictor.New(cnf.ModelPath, l), l)

	v1.NewRouter(
		app,
		airQualityService,
		forecastService,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":                   cnf.Port,
		"version":                cnf.AppVersion,
		"openweather_configured": cnf.OpenWeather.Configured(),
		"tempo_configured":       cnf.Tempo.Configured(),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		hook.Flush()
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
