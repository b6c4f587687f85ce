package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	config, err := Load("nonexistent.yaml")
	require.NoError(t, err)
	assert.NotNil(t, config)

	assert.Equal(t, "airquality-api", config.AppName)
	assert.Equal(t, "1.0.0", config.AppVersion)
	assert.Equal(t, "development", config.AppEnv)
	assert.Equal(t, "8080", config.Port)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, 10*time.Second, config.UpstreamTimeout)
	assert.Equal(t, "https://api.openaq.org/v2/latest", config.OpenAQ.BaseURL)
	assert.False(t, config.OpenWeather.Configured())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_NAME", "test-app")
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("OPENWEATHER_API_KEY", "  real-key ")
	t.Setenv("SATELLITE_SEED", "42")

	config, err := Load("nonexistent.yaml")
	require.NoError(t, err)

	assert.Equal(t, "test-app", config.AppName)
	assert.Equal(t, "9090", config.Port)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, 3*time.Second, config.UpstreamTimeout)
	assert.Equal(t, int64(42), config.SatelliteSeed)
	assert.Equal(t, "real-key", config.OpenWeather.APIKey)
	assert.True(t, config.OpenWeather.Configured())
	assert.True(t, config.IsProduction())
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlData := `
app_name: from-yaml
upstream_timeout: 5s
openweather:
  base_url: http://weather.local/data/
  api_key: YOUR_OPENWEATHER_API_KEY
openaq:
  api_key: aq-key
`
	require.NoError(t, os.WriteFile(path, []byte(yamlData), 0o600))

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-yaml", config.AppName)
	assert.Equal(t, 5*time.Second, config.UpstreamTimeout)
	assert.Equal(t, "http://weather.local/data", config.OpenWeather.BaseURL)

	// placeholder credential counts as not configured
	assert.False(t, config.OpenWeather.Configured())
	assert.True(t, config.OpenAQ.Configured())

	// unset keys keep their defaults
	assert.Equal(t, "8080", config.Port)
	assert.Equal(t, "https://api.openaq.org/v2/latest", config.OpenAQ.BaseURL)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app_name: [unterminated"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	valid := Default()
	assert.NoError(t, valid.Validate())

	noName := Default()
	noName.AppName = " "
	err := noName.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app.name is required")

	noTimeout := Default()
	noTimeout.UpstreamTimeout = 0
	assert.Error(t, noTimeout.Validate())

	badLevel := Default()
	badLevel.LogLevel = "verbose"
	assert.Error(t, badLevel.Validate())
}

func TestConfigHelperMethods(t *testing.T) {
	config := Default()
	assert.True(t, config.IsDevelopment())
	assert.False(t, config.IsProduction())

	config.AppEnv = "prod"
	assert.True(t, config.IsProduction())
}
