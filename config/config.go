// ABOUTME: Application configuration loaded from defaults, .env, a JSON or YAML file, and env vars
// ABOUTME: Later sources override earlier ones; the result is validated once
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/Sankar2i/calendar/cadence"
)

const appName = "calendar"

// Environment variables that override file values.
const (
	EnvDBPath   = "CALENDAR_DB_PATH"
	EnvAnchor   = "CALENDAR_ANCHOR"
	EnvLogLevel = "CALENDAR_LOG_LEVEL"
	EnvTimezone = "CALENDAR_TIMEZONE"
	EnvWebPort  = "CALENDAR_WEB_PORT"
)

type Config struct {
	DBPath   string `json:"db_path" yaml:"db_path"`
	Anchor   string `json:"anchor" yaml:"anchor"`
	LogLevel string `json:"log_level" yaml:"log_level"`
	Timezone string `json:"timezone" yaml:"timezone"` // IANA name; empty means local
	WebPort  int    `json:"web_port" yaml:"web_port"`

	anchor   cadence.Anchor
	location *time.Location
	level    zerolog.Level
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DBPath:   filepath.Join(xdg.DataHome, appName, appName+".db"),
		Anchor:   string(cadence.AnchorNow),
		LogLevel: "warn",
		WebPort:  8080,
	}
}

// DefaultPaths lists the config files tried when no explicit path is given.
func DefaultPaths() []string {
	dir := filepath.Join(xdg.ConfigHome, appName)
	return []string{
		filepath.Join(dir, "config.yaml"),
		filepath.Join(dir, "config.yml"),
		filepath.Join(dir, "config.json"),
	}
}

// Load builds the configuration. An explicit path must exist; the default
// locations are optional.
func Load(path string) (*Config, error) {
	// .env only fills variables that are not already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := Default()

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	} else {
		for _, p := range DefaultPaths() {
			err := cfg.readFile(p)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, err
			}
			break
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(c); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDBPath); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(EnvAnchor); v != "" {
		c.Anchor = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvTimezone); v != "" {
		c.Timezone = v
	}
	if v := os.Getenv(EnvWebPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWebPort, err)
		}
		c.WebPort = port
	}
	return nil
}

// Validate checks every field and caches the parsed values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("db_path must not be empty")
	}

	anchor, err := cadence.ParseAnchor(c.Anchor)
	if err != nil {
		return err
	}
	c.anchor = anchor

	loc := time.Local
	if c.Timezone != "" {
		if loc, err = time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
		}
	}
	c.location = loc

	level := zerolog.WarnLevel
	if c.LogLevel != "" {
		if level, err = zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
			return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
		}
	}
	c.level = level

	if c.WebPort <= 0 || c.WebPort > 65535 {
		return fmt.Errorf("web_port %d out of range", c.WebPort)
	}
	return nil
}

// ScheduleAnchor returns the validated anchor.
func (c *Config) ScheduleAnchor() cadence.Anchor {
	if c.anchor == "" {
		return cadence.AnchorNow
	}
	return c.anchor
}

// Location returns the zone that decides the current calendar day.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

func (c *Config) Level() zerolog.Level {
	return c.level
}
