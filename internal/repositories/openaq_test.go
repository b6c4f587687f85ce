package repositories

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airquality-api/config"
	"airquality-api/internal/models"
	"airquality-api/pkg/logger"
)

var london = models.Coordinate{Lat: 51.5074, Lon: -0.1278}

func newTestLogger() *logger.Logger {
	return logger.NewZapLogger("test-app", "test", "debug", io.Discard)
}

func newOpenAQ(t *testing.T, handler http.HandlerFunc) *OpenAQRepository {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewOpenAQRepository(config.UpstreamConfig{BaseURL: server.URL}, time.Second, newTestLogger(), server.Client())
}

func TestOpenAQRepository_FetchLatest_Success(t *testing.T) {
	repo := newOpenAQ(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "51.507400,-0.127800", r.URL.Query().Get("coordinates"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "pm25", r.URL.Query().Get("parameter"))
		assert.Empty(t, r.Header.Get("X-API-Key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"location":"London Marylebone Road","city":"London","country":"GB",
			"measurements":[{"parameter":"no2","value":31.0,"unit":"µg/m³"},{"parameter":"pm25","value":12.4,"unit":"µg/m³"}]}]}`))
	})

	reading, err := repo.FetchLatest(context.Background(), london)
	require.NoError(t, err)

	assert.Equal(t, models.GroundReading{
		Location: "London Marylebone Road",
		City:     "London",
		Country:  "GB",
		PM25:     12.4,
		Unit:     models.UnitPM25,
		Source:   "OpenAQ",
	}, reading)
}

func TestOpenAQRepository_FetchLatest_SendsAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "aq-key", r.Header.Get("X-API-Key"))
		w.Write([]byte(`{"results":[{"location":"X","city":null,"country":null,"measurements":[{"parameter":"pm25","value":0}]}]}`))
	}))
	defer server.Close()

	repo := NewOpenAQRepository(config.UpstreamConfig{BaseURL: server.URL, APIKey: "aq-key"}, time.Second, newTestLogger(), server.Client())

	reading, err := repo.FetchLatest(context.Background(), london)
	require.NoError(t, err)
	assert.Equal(t, 0.0, reading.PM25)
	assert.Empty(t, reading.City)
}

func TestOpenAQRepository_FetchLatest_NoData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty results", `{"results":[]}`},
		{"missing results", `{}`},
		{"no pm25 parameter", `{"results":[{"location":"X","measurements":[{"parameter":"o3","value":40}]}]}`},
		{"null pm25 value", `{"results":[{"location":"X","measurements":[{"parameter":"pm25","value":null}]}]}`},
		{"negative pm25 value", `{"results":[{"location":"X","measurements":[{"parameter":"pm25","value":-999}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newOpenAQ(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			_, err := repo.FetchLatest(context.Background(), london)
			assert.ErrorIs(t, err, ErrNoData)
		})
	}
}

func TestOpenAQRepository_FetchLatest_HTTPError(t *testing.T) {
	repo := newOpenAQ(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	_, err := repo.FetchLatest(context.Background(), london)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestOpenAQRepository_FetchLatest_InvalidJSON(t *testing.T) {
	repo := newOpenAQ(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("invalid json"))
	})

	_, err := repo.FetchLatest(context.Background(), london)
	assert.Error(t, err)
}

func TestOpenAQRepository_FetchLatest_Timeout(t *testing.T) {
	var calls atomic.Int32
	repo := newOpenAQ(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		select {
		case <-r.Context().Done():
		case <-time.After(500 * time.Millisecond):
		}
	})
	repo.Timeout = 20 * time.Millisecond

	_, err := repo.FetchLatest(context.Background(), london)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, int32(1), calls.Load(), "must not retry")
}

func TestOpenAQRepository_Name(t *testing.T) {
	repo := &OpenAQRepository{}
	assert.Equal(t, "openaq", repo.Name())
}
