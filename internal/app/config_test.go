package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"holocron/internal/swapi"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holocron.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, swapi.DefaultBaseURL, cfg.SWAPI.BaseURL)
	assert.Equal(t, "tatooine.json", cfg.Pipeline.Outputs.Planet)
	assert.Equal(t, "people/3/", cfg.Pipeline.Targets.Droid)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileRequired(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), true)
	require.Error(t, err)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
swapi:
  base_url: http://localhost:9000/api/
  timeout: 5s
paths:
  out_dir: build
outputs:
  planet: planet.json
targets:
  starship:
    name: Twilight
    crew:
      - role: pilot
        ref: people/11/
    passengers: [people/3/]
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/api/", cfg.SWAPI.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout())
	assert.Equal(t, "build", cfg.Paths.OutDir)
	assert.Equal(t, "data", cfg.Paths.DataDir, "unset keys keep their defaults")
	assert.True(t, cfg.SWAPI.Cache)
	assert.Equal(t, "planet.json", cfg.Pipeline.Outputs.Planet)
	assert.Equal(t, "r2_d2.json", cfg.Pipeline.Outputs.Droid)
	require.Len(t, cfg.Pipeline.Targets.Starship.Crew, 1)
	assert.Equal(t, "pilot", cfg.Pipeline.Targets.Starship.Crew[0].Role)
	assert.Equal(t, []string{"people/3/"}, cfg.Pipeline.Targets.Starship.Passengers)
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "swapi: [unclosed")
	_, err := Load(path, true)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HOLOCRON_SWAPI_URL", "https://mirror.test/api/")
	t.Setenv("HOLOCRON_DATA_DIR", "/srv/data")
	t.Setenv("HOLOCRON_OUT_DIR", "/srv/out")
	t.Setenv("HOLOCRON_CACHE_DIR", "/srv/cache")
	t.Setenv("HOLOCRON_LOG_LEVEL", "debug")
	t.Setenv("HOLOCRON_TIMEOUT", "2s")

	path := writeConfig(t, "paths:\n  data_dir: ignored\n")
	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "https://mirror.test/api/", cfg.SWAPI.BaseURL)
	assert.Equal(t, "/srv/data", cfg.Paths.DataDir)
	assert.Equal(t, "/srv/out", cfg.Paths.OutDir)
	assert.Equal(t, "/srv/cache", cfg.Paths.CacheDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 2*time.Second, cfg.HTTPTimeout())
}

func TestHTTPTimeout_FallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SWAPI.Timeout = "soon"
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout())
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SWAPI.BaseURL = "ftp://swapi.test"
	cfg.SWAPI.Timeout = "-1s"
	cfg.Paths.OutDir = ""
	cfg.Log.Level = "chatty"
	cfg.Log.Format = "xml"
	cfg.Pipeline.Outputs.Droid = cfg.Pipeline.Outputs.Planet

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"swapi.base_url", "swapi.timeout", "paths.out_dir", "log.level", "log.format", "outputs.planet and outputs.droid"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(LogConfig{Level: "warn", Format: "console"}, false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.InfoLevel))
	assert.True(t, log.Core().Enabled(zap.WarnLevel))

	log, err = NewLogger(LogConfig{Level: "error", Format: "json"}, true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))

	_, err = NewLogger(LogConfig{Level: "info", Format: "xml"}, false)
	assert.Error(t, err)
}

func TestNew_WiresServices(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Paths.OutDir = filepath.Join(t.TempDir(), "out")
	cfg.Paths.CacheDir = filepath.Join(t.TempDir(), "cache")

	a, err := New(cfg, zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	assert.NotNil(t, a.Pipeline)
	assert.NotNil(t, a.SWAPI)
	assert.NotNil(t, a.Cache)
	assert.Equal(t, 30*time.Second, a.HTTP.Timeout)
	assert.DirExists(t, cfg.Paths.OutDir)

	cfg.SWAPI.Cache = false
	a, err = New(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, a.Cache)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Paths.DataDir = ""
	_, err := New(cfg, zap.NewNop())
	require.Error(t, err)
}
