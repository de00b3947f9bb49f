package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
crawler:
  start_urls:
    - https://www.bellagroup.dk/en/venues
    - https://www.copenhagencatering.dk
  request_delay_ms: 500
  max_retries: 2
output:
  path: out/vendors.json
sinks:
  sqlite_path: out/vendors.db
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, cfg.Crawler.StartURLs, 2)
	assert.Equal(t, 500, cfg.Crawler.RequestDelayMs)
	assert.Equal(t, 2, cfg.Crawler.MaxRetries)
	assert.Equal(t, "out/vendors.json", cfg.Output.Path)
	assert.Equal(t, "out/vendors.db", cfg.Sinks.SQLitePath)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Fields absent from the file keep their defaults.
	assert.Equal(t, Default().Crawler.TimeoutSec, cfg.Crawler.TimeoutSec)
	assert.Equal(t, Default().Crawler.UserAgent, cfg.Crawler.UserAgent)
}

func TestLoad_MissingStartURLs(t *testing.T) {
	path := writeConfig(t, `
output:
  path: out/vendors.json
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrNoStartURLs)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	path := writeConfig(t, `
crawler:
  start_urls: [https://example.com]
logging:
  level: loud
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate_EmptyOutputPath(t *testing.T) {
	cfg := Default()
	cfg.Crawler.StartURLs = []string{"https://example.com"}
	cfg.Output.Path = ""

	assert.ErrorIs(t, cfg.Validate(), ErrMissingOutputPath)
}

func TestRuntime_Conversion(t *testing.T) {
	cfg := Default()
	cfg.Crawler.StartURLs = []string{"https://example.com"}
	cfg.Crawler.RequestDelayMs = 250
	cfg.Crawler.TimeoutSec = 10

	rt := cfg.Runtime()
	assert.Equal(t, 250*time.Millisecond, rt.RequestDelay)
	assert.Equal(t, 10*time.Second, rt.Timeout)
	assert.Equal(t, cfg.Crawler.UserAgent, rt.UserAgent)
}
