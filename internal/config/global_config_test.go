package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, 3, cfg.ProberConfig.MaxAttempts)
	assert.Equal(t, 2, cfg.ProberConfig.RetryDelaySecs)
	assert.Equal(t, 10, cfg.HTTPClientConfig.MaxRedirects)
	assert.Equal(t, 4000, cfg.AnalysisConfig.TruncateChars)
	assert.Equal(t, 10, cfg.LimiterConfig.MaxProbeWorkers)
	assert.Equal(t, 5, cfg.LimiterConfig.MaxArchiveWorkers)
	assert.InDelta(t, 0.8, cfg.LimiterConfig.MemoryThreshold, 0.001)
}

func TestLoadGlobalConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadGlobalConfig("")
	require.NoError(t, err)
	assert.Equal(t, NewDefaultGlobalConfig(), cfg)
}

func TestLoadGlobalConfig_YAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
domain_filter: example.com
prober_config:
  max_attempts: 5
analysis_config:
  backend: openai
  extensions: [sql, json]
limiter_config:
  max_probe_workers: 20
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := LoadGlobalConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "example.com", cfg.DomainFilter)
	assert.Equal(t, 5, cfg.ProberConfig.MaxAttempts)
	assert.Equal(t, "openai", cfg.AnalysisConfig.Backend)
	assert.Equal(t, []string{"sql", "json"}, cfg.AnalysisConfig.Extensions)
	assert.Equal(t, 20, cfg.LimiterConfig.MaxProbeWorkers)
	// Untouched sections keep their defaults.
	assert.Equal(t, 2, cfg.ProberConfig.RetryDelaySecs)
}

func TestLoadGlobalConfig_NonexistentExplicitPath(t *testing.T) {
	_, err := LoadGlobalConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	require.NoError(t, ValidateConfig(cfg))

	cfg.AnalysisConfig.Backend = "skynet"
	assert.Error(t, ValidateConfig(cfg))

	cfg.AnalysisConfig.Backend = "ollama"
	require.NoError(t, ValidateConfig(cfg))

	cfg.LogConfig.LogLevel = "verbose"
	assert.Error(t, ValidateConfig(cfg))
}
