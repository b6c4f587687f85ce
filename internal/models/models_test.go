package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome_MarshalJSON(t *testing.T) {
	available := Available(WeatherReading{Temperature: 18.5, Humidity: 60, WindSpeed: 3.2, Description: "clear sky", Source: "OpenWeatherMap"})
	raw, err := json.Marshal(available)
	require.NoError(t, err)
	assert.JSONEq(t, `{"temperature":18.5,"humidity":60,"wind_speed":3.2,"description":"clear sky","source":"OpenWeatherMap"}`, string(raw))

	missing := Unavailable[WeatherReading]("Could not retrieve weather data.")
	raw, err = json.Marshal(missing)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Could not retrieve weather data."}`, string(raw))
	assert.False(t, missing.OK())
}

func TestNewSourceStatus(t *testing.T) {
	ok := NewSourceStatus(SourceSatellite, Available(SatelliteReading{PM25: 1}), MockSourceLabels)
	assert.Equal(t, StatusMockSuccess, ok.Status)
	assert.NotNil(t, ok.Data)
	assert.Empty(t, ok.Message)

	failed := NewSourceStatus(SourceWeather, Unavailable[WeatherReading]("gone"), RealSourceLabels)
	assert.Equal(t, StatusFailed, failed.Status)
	assert.Nil(t, failed.Data)
	assert.Equal(t, "gone", failed.Message)

	overridden := NewSourceStatus(SourceGroundStation, Unavailable[GroundReading]("gone"), StatusLabels{
		Success: StatusSuccess,
		Failed:  StatusFailed,
		Message: "Could not retrieve real-time PM2.5 data.",
	})
	assert.Equal(t, "Could not retrieve real-time PM2.5 data.", overridden.Message)

	raw, err := json.Marshal(failed)
	require.NoError(t, err)
	assert.JSONEq(t, `{"source":"OpenWeatherMap","status":"Failed/No data","message":"gone"}`, string(raw))
}

func TestHorizonForecast(t *testing.T) {
	assert.Equal(t, "24_hour_forecast", HorizonLabel(24))
	assert.Equal(t, "1_hour_forecast", HorizonLabel(1))

	at := time.Date(2025, 7, 27, 14, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	ok := SucceededHorizon(Prediction{AQI: 0, Category: "Good", Recommendations: []string{"none"}, Timestamp: at})
	assert.False(t, ok.Failed())

	raw, err := json.Marshal(ok)
	require.NoError(t, err)
	// an AQI of zero is still rendered
	assert.JSONEq(t, `{"aqi":0,"category":"Good","recommendations":["none"],"timestamp":"2025-07-27T14:00:00+02:00","unit":"AQI"}`, string(raw))

	failed := FailedHorizon(errors.New("horizon too far"))
	assert.True(t, failed.Failed())
	raw, err = json.Marshal(failed)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"failed","error":"horizon too far"}`, string(raw))
}

func TestCoordinate(t *testing.T) {
	c := Coordinate{Lat: 51.5074, Lon: -0.1278}
	assert.Equal(t, "51.5074,-0.1278", c.String())
	assert.Equal(t, map[string]any{"lat": 51.5074, "lon": -0.1278}, c.Fields())
}
