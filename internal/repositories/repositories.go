package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"airquality-api/config"
	"airquality-api/internal/models"
	"airquality-api/pkg/logger"
)

var (
	// ErrNoData means the upstream answered but had nothing usable.
	ErrNoData = errors.New("no data available")
	// ErrNotConfigured means the upstream needs a credential that is not set.
	ErrNotConfigured = errors.New("provider credential not configured")
	// ErrTimeout means the upstream did not answer within the request timeout.
	ErrTimeout = errors.New("upstream request timed out")
)

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// AirQualityRepository returns the nearest ground station's latest PM2.5.
type AirQualityRepository interface {
	Name() string
	FetchLatest(ctx context.Context, coord models.Coordinate) (models.GroundReading, error)
}

// WeatherRepository returns current weather conditions.
type WeatherRepository interface {
	Name() string
	FetchCurrent(ctx context.Context, coord models.Coordinate) (models.WeatherReading, error)
}

// Repositories bundles every upstream the service talks to.
type Repositories struct {
	AirQuality AirQualityRepository
	Weather    WeatherRepository
}

func InitRepositories(cfg *config.Config, l *logger.Logger, httpClient HTTPClient) Repositories {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.UpstreamTimeout}
	}

	return Repositories{
		AirQuality: NewOpenAQRepository(cfg.OpenAQ, cfg.UpstreamTimeout, l, httpClient),
		Weather:    NewOpenWeatherRepository(cfg.OpenWeather, cfg.UpstreamTimeout, l, httpClient),
	}
}

// getJSON performs a single GET with the given timeout and decodes a 200
// response into target. It never retries.
func getJSON(ctx context.Context, client HTTPClient, timeout time.Duration, rawURL string, header http.Header, target any) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		timedOut := isTimeout(err)
		// url.Error repeats the query string, which may carry a credential
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		if timedOut {
			return fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	if err = json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// failureKind names the failure for logs.
func failureKind(err error) string {
	switch {
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrNoData):
		return "no_data"
	case errors.Is(err, ErrNotConfigured):
		return "not_configured"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "request_failed"
	}
}
