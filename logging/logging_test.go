package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(zerolog.WarnLevel, &buf)

	log.Info().Msg("hidden")
	log.Warn().Str("company", "Acme").Msg("skipping company")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "skipping company")
	assert.Contains(t, out, "company=Acme")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSON(zerolog.InfoLevel, &buf)

	log.Info().Int("events", 3).Msg("built")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "built", line["message"])
	assert.Equal(t, float64(3), line["events"])
	assert.Equal(t, "info", line["level"])
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "log.txt"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.False(t, isTerminal(f))
}

func TestNewWithoutTerminalHasNoColour(t *testing.T) {
	var buf bytes.Buffer
	logger := New(zerolog.InfoLevel, &buf)
	logger.Info().Msg("plain")

	assert.NotContains(t, buf.String(), "\x1b[")
}
