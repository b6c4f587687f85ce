package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "config/config.yaml"

// placeholderKeys are sample values shipped in example configs. They are
// treated as "no credential".
var placeholderKeys = map[string]struct{}{
	"YOUR_OPENWEATHER_API_KEY": {},
	"YOUR_OPENAQ_API_KEY":      {},
	"YOUR_TEMPO_API_KEY":       {},
	"YOUR-API-KEY-HERE":        {},
}

type Config struct {
	AppName         string        `yaml:"app_name" envconfig:"APP_NAME"`
	AppVersion      string        `yaml:"app_version" envconfig:"APP_VERSION"`
	AppEnv          string        `yaml:"app_env" envconfig:"APP_ENV"`
	Port            string        `yaml:"port" envconfig:"PORT"`
	LogLevel        string        `yaml:"log_level" envconfig:"LOG_LEVEL"`
	SentryDSN       string        `yaml:"sentry_dsn" envconfig:"SENTRY_DSN"`
	UpstreamTimeout time.Duration `yaml:"upstream_timeout" envconfig:"UPSTREAM_TIMEOUT"`
	ModelPath       string        `yaml:"model_path" envconfig:"MODEL_PATH"`
	SatelliteSeed   int64         `yaml:"satellite_seed" envconfig:"SATELLITE_SEED"`

	OpenAQ      UpstreamConfig `yaml:"openaq" envconfig:"OPENAQ"`
	OpenWeather UpstreamConfig `yaml:"openweather" envconfig:"OPENWEATHER"`
	Tempo       UpstreamConfig `yaml:"tempo" envconfig:"TEMPO"`
}

// UpstreamConfig describes one external data provider.
type UpstreamConfig struct {
	BaseURL string `yaml:"base_url" envconfig:"BASE_URL"`
	APIKey  string `yaml:"api_key,omitempty" envconfig:"API_KEY"`
}

// Configured reports whether a real credential is present.
func (u UpstreamConfig) Configured() bool {
	return u.APIKey != ""
}

// NewConfig loads config/config.yaml (if any), a .env file (if any) and the
// process environment, in that order of precedence from lowest to highest.
func NewConfig() (*Config, error) {
	return Load(defaultConfigFile)
}

// Load is NewConfig with an explicit YAML path. A missing file is not an error.
func Load(path string) (*Config, error) {
	cnf := Default()

	if yamlData, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(yamlData, &cnf); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read YAML config %s: %w", path, err)
	}

	// .env is optional
	_ = godotenv.Load()

	if err := envconfig.Process("", &cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	cnf.normalize()

	if err := cnf.Validate(); err != nil {
		return nil, err
	}

	return &cnf, nil
}

// Default returns the configuration used when neither the YAML file nor the
// environment set a value.
func Default() Config {
	return Config{
		AppName:         "airquality-api",
		AppVersion:      "1.0.0",
		AppEnv:          "development",
		Port:            "8080",
		LogLevel:        "info",
		UpstreamTimeout: 10 * time.Second,
		ModelPath:       "model/aqi_model.yaml",
		OpenAQ: UpstreamConfig{
			BaseURL: "https://api.openaq.org/v2/latest",
		},
		OpenWeather: UpstreamConfig{
			BaseURL: "https://api.openweathermap.org/data/2.5/weather",
		},
	}
}

func (c *Config) normalize() {
	for _, u := range []*UpstreamConfig{&c.OpenAQ, &c.OpenWeather, &c.Tempo} {
		u.APIKey = strings.TrimSpace(u.APIKey)
		if _, ok := placeholderKeys[u.APIKey]; ok {
			u.APIKey = ""
		}
		u.BaseURL = strings.TrimRight(strings.TrimSpace(u.BaseURL), "/")
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.AppName) == "" {
		return errors.New("app.name is required")
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("upstream timeout must be positive, got %s", c.UpstreamTimeout)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (allowed: debug, info, warn, error)", c.LogLevel)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}
