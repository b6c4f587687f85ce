package repositories

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"airquality-api/config"
	"airquality-api/internal/models"
	"airquality-api/pkg/logger"
)

const (
	OpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"
	openWeatherSource  = "OpenWeatherMap"
)

type OpenWeatherRepository struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	configured bool
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenWeatherRepository(cfg config.UpstreamConfig, timeout time.Duration, l *logger.Logger, httpClient HTTPClient) *OpenWeatherRepository {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = OpenWeatherBaseURL
	}

	return &OpenWeatherRepository{
		BaseURL:    baseURL,
		APIKey:     cfg.APIKey,
		Timeout:    timeout,
		configured: cfg.Configured(),
		httpClient: httpClient,
		l:          l,
	}
}

func (w *OpenWeatherRepository) Name() string {
	return "openweathermap"
}

type OpenWeatherResponse struct {
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

func (w *OpenWeatherRepository) FetchCurrent(ctx context.Context, coord models.Coordinate) (models.WeatherReading, error) {
	if !w.configured {
		w.l.Warning("OpenWeather API key is not set, skipping weather fetch", map[string]any{
			"repo": w.Name(),
			"lat":  coord.Lat,
			"lon":  coord.Lon,
		})
		return models.WeatherReading{}, ErrNotConfigured
	}

	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", coord.Lat))
	values.Set("lon", fmt.Sprintf("%f", coord.Lon))
	values.Set("appid", w.APIKey)
	values.Set("units", "metric")
	u := fmt.Sprintf("%s?%s", w.BaseURL, values.Encode())

	w.l.Debug("making openweather API request", map[string]any{
		"lat": coord.Lat,
		"lon": coord.Lon,
	})

	var response OpenWeatherResponse
	if err := getJSON(ctx, w.httpClient, w.Timeout, u, nil, &response); err != nil {
		w.logFailure(coord, err)
		return models.WeatherReading{}, err
	}

	reading, err := toWeatherReading(response)
	if err != nil {
		w.logFailure(coord, err)
		return models.WeatherReading{}, err
	}

	w.l.Info("received openweather reading", map[string]any{
		"lat":         coord.Lat,
		"lon":         coord.Lon,
		"temperature": reading.Temperature,
	})

	return reading, nil
}

func toWeatherReading(r OpenWeatherResponse) (models.WeatherReading, error) {
	switch {
	case r.Main == nil || r.Main.Temp == nil || r.Main.Humidity == nil:
		return models.WeatherReading{}, fmt.Errorf("%w: payload lacks main.temp or main.humidity", ErrNoData)
	case r.Wind == nil || r.Wind.Speed == nil:
		return models.WeatherReading{}, fmt.Errorf("%w: payload lacks wind.speed", ErrNoData)
	case len(r.Weather) == 0:
		return models.WeatherReading{}, fmt.Errorf("%w: payload lacks weather description", ErrNoData)
	}

	return models.WeatherReading{
		Temperature: *r.Main.Temp,
		Humidity:    *r.Main.Humidity,
		WindSpeed:   *r.Wind.Speed,
		Description: r.Weather[0].Description,
		Source:      openWeatherSource,
	}, nil
}

func (w *OpenWeatherRepository) logFailure(coord models.Coordinate, err error) {
	w.l.Warning("failed to fetch weather data", map[string]any{
		"repo":    w.Name(),
		"lat":     coord.Lat,
		"lon":     coord.Lon,
		"failure": failureKind(err),
		"err":     err,
	})
}
