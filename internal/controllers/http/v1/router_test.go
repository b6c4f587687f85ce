package http

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouter_SwaggerDoc(t *testing.T) {
	app := newTestApp(&fakeCurrent{}, &fakeForecast{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/swagger/doc.json", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "/api/current-aqi")
	assert.Contains(t, string(raw), "/api/predict-aqi")
}

func TestNewRouter_MethodsAndTrailingSlash(t *testing.T) {
	cur := &fakeCurrent{out: sampleConditions()}
	app := newTestApp(cur, &fakeForecast{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/current-aqi/?lat=1&lon=2", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/api/predict-aqi", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
}
