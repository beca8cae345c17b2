package app

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"holocron/internal/services/pipeline"
	"holocron/internal/swapi"
)

// DefaultConfigFile is read when present and no --config flag is given.
const DefaultConfigFile = "holocron.yaml"

const defaultTimeout = 30 * time.Second

// SWAPIConfig configures the remote lookup client.
type SWAPIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
	Cache   bool   `yaml:"cache"`
}

// PathsConfig holds the directories a run reads from and writes to.
type PathsConfig struct {
	DataDir  string `yaml:"data_dir"`
	OutDir   string `yaml:"out_dir"`
	CacheDir string `yaml:"cache_dir"`
}

// LogConfig selects the log level and encoder.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // json|console
}

// Config holds runtime wiring options for building the app.
type Config struct {
	SWAPI SWAPIConfig `yaml:"swapi"`
	Paths PathsConfig `yaml:"paths"`
	Log   LogConfig   `yaml:"log"`

	Pipeline pipeline.Config `yaml:",inline"`

	HTTP *http.Client `yaml:"-"` // optional; built from SWAPI.Timeout when nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		SWAPI: SWAPIConfig{
			BaseURL: swapi.DefaultBaseURL,
			Timeout: defaultTimeout.String(),
			Cache:   true,
		},
		Paths: PathsConfig{
			DataDir:  "data",
			OutDir:   "out",
			CacheDir: ".holocron",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Pipeline: pipeline.DefaultConfig(),
	}
}

// Load reads the YAML file at path over the defaults and applies
// environment overrides. A missing file yields the defaults unless
// mustExist is set.
func Load(path string, mustExist bool) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist) && !mustExist:
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies HOLOCRON_* environment variables.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("HOLOCRON_SWAPI_URL"); v != "" {
		c.SWAPI.BaseURL = v
	}
	if v := os.Getenv("HOLOCRON_TIMEOUT"); v != "" {
		c.SWAPI.Timeout = v
	}
	if v := os.Getenv("HOLOCRON_DATA_DIR"); v != "" {
		c.Paths.DataDir = v
	}
	if v := os.Getenv("HOLOCRON_OUT_DIR"); v != "" {
		c.Paths.OutDir = v
	}
	if v := os.Getenv("HOLOCRON_CACHE_DIR"); v != "" {
		c.Paths.CacheDir = v
	}
	if v := os.Getenv("HOLOCRON_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("HOLOCRON_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
}

// HTTPTimeout returns the SWAPI request timeout, falling back to 30s when
// the configured value does not parse.
func (c *Config) HTTPTimeout() time.Duration {
	d, err := time.ParseDuration(c.SWAPI.Timeout)
	if err != nil || d <= 0 {
		return defaultTimeout
	}
	return d
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.SWAPI.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("swapi.base_url must be an http(s) URL, got %q", c.SWAPI.BaseURL))
	}
	if d, err := time.ParseDuration(c.SWAPI.Timeout); err != nil || d <= 0 {
		errs = append(errs, fmt.Errorf("swapi.timeout must be a positive duration, got %q", c.SWAPI.Timeout))
	}
	if c.Paths.DataDir == "" {
		errs = append(errs, errors.New("paths.data_dir is required"))
	}
	if c.Paths.OutDir == "" {
		errs = append(errs, errors.New("paths.out_dir is required"))
	}
	if c.SWAPI.Cache && c.Paths.CacheDir == "" {
		errs = append(errs, errors.New("paths.cache_dir is required when swapi.cache is on"))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		errs = append(errs, fmt.Errorf("log.format must be json or console, got %q", c.Log.Format))
	}

	seen := make(map[string]string)
	for _, o := range c.outputs() {
		key, name := o[0], o[1]
		if name == "" {
			errs = append(errs, fmt.Errorf("outputs.%s is required", key))
			continue
		}
		if prev, ok := seen[name]; ok {
			errs = append(errs, fmt.Errorf("outputs.%s and outputs.%s both write %q", prev, key, name))
			continue
		}
		seen[name] = key
	}
	return errors.Join(errs...)
}

// outputs pairs each artifact config key with its file name, in step order.
func (c *Config) outputs() [][2]string {
	o := c.Pipeline.Outputs
	return [][2]string{
		{"episodes", o.Episodes},
		{"director_counts", o.DirectorCounts},
		{"writer_episodes", o.WriterEpisodes},
		{"planet", o.Planet},
		{"droid", o.Droid},
		{"person", o.Person},
		{"starship", o.Starship},
	}
}
