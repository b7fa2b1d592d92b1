package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"STAGEHAND_DB", "STAGEHAND_CONFIG", "STAGEHAND_LOG_USECASES", "STAGEHAND_TIMEZONE", "STAGEHAND_WORKERS"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 4, cfg.Workers)
	assert.False(t, cfg.LogUseCases)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
db_path: /tmp/plan.db
timezone: Europe/Amsterdam
workers: 2
board:
  day_width: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/plan.db", cfg.DBPath)
	assert.Equal(t, "Europe/Amsterdam", cfg.Timezone)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 3, cfg.Board.DayWidth)
	assert.Equal(t, 60, cfg.Board.MaxDays, "unset keys keep their default")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "db_path: /tmp/file.db\nworkers: 2\n")
	t.Setenv("STAGEHAND_DB", "/tmp/env.db")
	t.Setenv("STAGEHAND_WORKERS", "8")
	t.Setenv("STAGEHAND_LOG_USECASES", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.LogUseCases)
}

func TestLoad_InvalidWorkersEnvIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("STAGEHAND_CONFIG", writeConfig(t, "workers: 3\n"))
	t.Setenv("STAGEHAND_WORKERS", "-1")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "workers: [1, 2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }, "unknown timezone"},
		{"zero workers", func(c *Config) { c.Workers = 0 }, "workers"},
		{"zero day width", func(c *Config) { c.Board.DayWidth = 0 }, "day_width"},
		{"zero max days", func(c *Config) { c.Board.MaxDays = 0 }, "max_days"},
		{"empty db path", func(c *Config) { c.DBPath = "" }, "db_path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
