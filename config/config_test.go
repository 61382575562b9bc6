// ABOUTME: Tests for configuration loading from files and environment
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sankar2i/calendar/cadence"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, cadence.AnchorNow, cfg.ScheduleAnchor())
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())
	assert.Equal(t, "calendar.db", filepath.Base(cfg.DBPath))
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
db_path: /tmp/cal.db
anchor: last_communication
log_level: debug
timezone: UTC
web_port: 9000
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cal.db", cfg.DBPath)
	assert.Equal(t, cadence.AnchorLastCommunication, cfg.ScheduleAnchor())
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.Equal(t, "UTC", cfg.Location().String())
	assert.Equal(t, 9000, cfg.WebPort)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"anchor": "now", "web_port": 8181}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8181, cfg.WebPort)
	assert.Equal(t, time.Local, cfg.Location())
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(writeFile(t, "config.json", `{"colour": "red"}`))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "config.yaml", "colour: red\n"))
	assert.Error(t, err)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "anchor: now\nweb_port: 9000\n")
	t.Setenv(EnvAnchor, "last-communication")
	t.Setenv(EnvWebPort, "7070")
	t.Setenv(EnvDBPath, "/var/lib/cal.db")
	t.Setenv(EnvTimezone, "UTC")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cadence.AnchorLastCommunication, cfg.ScheduleAnchor())
	assert.Equal(t, 7070, cfg.WebPort)
	assert.Equal(t, "/var/lib/cal.db", cfg.DBPath)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad anchor", func(c *Config) { c.Anchor = "yesterday" }},
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
		{"bad port", func(c *Config) { c.WebPort = 70000 }},
		{"empty db path", func(c *Config) { c.DBPath = " " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestBadEnvPort(t *testing.T) {
	t.Setenv(EnvWebPort, "eighty")
	_, err := Load(writeFile(t, "config.json", `{}`))
	assert.Error(t, err)
}
