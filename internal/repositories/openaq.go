package repositories

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"airquality-api/config"
	"airquality-api/internal/models"
	"airquality-api/pkg/logger"
)

const (
	OpenAQBaseURL = "https://api.openaq.org/v2/latest"
	openAQSource  = "OpenAQ"
	pm25Parameter = "pm25"
)

type OpenAQRepository struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenAQRepository(cfg config.UpstreamConfig, timeout time.Duration, l *logger.Logger, httpClient HTTPClient) *OpenAQRepository {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = OpenAQBaseURL
	}

	return &OpenAQRepository{
		BaseURL:    baseURL,
		APIKey:     cfg.APIKey,
		Timeout:    timeout,
		httpClient: httpClient,
		l:          l,
	}
}

func (o *OpenAQRepository) Name() string {
	return "openaq"
}

type OpenAQResponse struct {
	Results []OpenAQResult `json:"results"`
}

type OpenAQResult struct {
	Location     string              `json:"location"`
	City         *string             `json:"city"`
	Country      *string             `json:"country"`
	Measurements []OpenAQMeasurement `json:"measurements"`
}

type OpenAQMeasurement struct {
	Parameter string   `json:"parameter"`
	Value     *float64 `json:"value"`
	Unit      string   `json:"unit"`
}

// FetchLatest asks OpenAQ for the single nearest station reporting PM2.5.
// Every failure is logged here with the coordinate; callers only need to
// decide what absence means to them.
func (o *OpenAQRepository) FetchLatest(ctx context.Context, coord models.Coordinate) (models.GroundReading, error) {
	values := url.Values{}
	values.Set("coordinates", fmt.Sprintf("%f,%f", coord.Lat, coord.Lon))
	values.Set("limit", "1")
	values.Set("parameter", pm25Parameter)
	u := fmt.Sprintf("%s?%s", o.BaseURL, values.Encode())

	header := http.Header{}
	if o.APIKey != "" {
		header.Set("X-API-Key", o.APIKey)
	}

	o.l.Debug("making openaq API request", map[string]any{
		"lat": coord.Lat,
		"lon": coord.Lon,
	})

	var response OpenAQResponse
	if err := getJSON(ctx, o.httpClient, o.Timeout, u, header, &response); err != nil {
		o.logFailure(coord, err)
		return models.GroundReading{}, err
	}

	if len(response.Results) == 0 {
		err := fmt.Errorf("%w: openaq returned no stations", ErrNoData)
		o.logFailure(coord, err)
		return models.GroundReading{}, err
	}

	station := response.Results[0]
	pm25, ok := findPM25(station.Measurements)
	if !ok {
		err := fmt.Errorf("%w: station %q reports no pm25", ErrNoData, station.Location)
		o.logFailure(coord, err)
		return models.GroundReading{}, err
	}

	reading := models.GroundReading{
		Location: station.Location,
		City:     deref(station.City),
		Country:  deref(station.Country),
		PM25:     pm25,
		Unit:     models.UnitPM25,
		Source:   openAQSource,
	}

	o.l.Info("received openaq reading", map[string]any{
		"lat":      coord.Lat,
		"lon":      coord.Lon,
		"location": reading.Location,
		"pm25":     reading.PM25,
	})

	return reading, nil
}

// findPM25 returns the first non-negative PM2.5 value.
func findPM25(measurements []OpenAQMeasurement) (float64, bool) {
	for _, m := range measurements {
		if !strings.EqualFold(m.Parameter, pm25Parameter) || m.Value == nil {
			continue
		}
		if *m.Value < 0 {
			return 0, false
		}
		return *m.Value, true
	}
	return 0, false
}

func (o *OpenAQRepository) logFailure(coord models.Coordinate, err error) {
	o.l.Warning("failed to fetch ground station data", map[string]any{
		"repo":    o.Name(),
		"lat":     coord.Lat,
		"lon":     coord.Lon,
		"failure": failureKind(err),
		"err":     err,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
