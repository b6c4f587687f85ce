package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airquality-api/pkg/logger"
)

func TestInitFiberServer_HealthAndRequestID(t *testing.T) {
	app := InitFiberServer("test-app", logger.Nop())

	for _, path := range []string{"/manage/health", "/manage/ready"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)

		_, err = uuid.Parse(resp.Header.Get("X-Request-ID"))
		assert.NoError(t, err, path)
	}
}

func TestInitFiberServer_ErrorBodies(t *testing.T) {
	var buf bytes.Buffer
	app := InitFiberServer("test-app", logger.NewZapLogger("test-app", "test", "debug", &buf))

	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("database password leaked")
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("unexpected")
	})

	tests := []struct {
		path     string
		wantCode int
		wantMsg  string
	}{
		{path: "/missing", wantCode: fiber.StatusNotFound, wantMsg: "Cannot GET /missing"},
		{path: "/boom", wantCode: fiber.StatusInternalServerError, wantMsg: "Internal server error"},
		{path: "/panic", wantCode: fiber.StatusInternalServerError, wantMsg: "Internal server error"},
	}

	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tt.path, nil), -1)
		require.NoError(t, err)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		_ = resp.Body.Close()

		body := map[string]string{}
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, tt.wantCode, resp.StatusCode, tt.path)
		assert.Equal(t, tt.wantMsg, body["error"], tt.path)
	}

	// internal errors are logged, not returned
	assert.True(t, strings.Contains(buf.String(), "database password leaked"))
}
