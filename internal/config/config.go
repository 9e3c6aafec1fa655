// Package config loads settings for the colors MCP server.
//
// Settings come from an optional TOML file, then the environment. Missing
// files are an error only when a path was given explicitly; with no path the
// defaults are used.
//
// # File Format
//
//	log_level   = "debug"  # "debug" logs every request
//	seed        = 42       # 0 seeds from the clock
//	wheel_start = 0.2      # default start phase for color_wheel_create
//	max_wheels  = 64       # live wheel sessions allowed at once
//
// # Environment
//
//   - COLORS_MCP_CONFIG: path to the TOML file when --config is not given
//   - COLORS_MCP_LOG_LEVEL: overrides log_level
package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "COLORS_MCP_CONFIG"
	EnvLogLevel   = "COLORS_MCP_LOG_LEVEL"
)

// Log levels understood by the server.
const (
	LevelInfo  = "info"
	LevelDebug = "debug"
)

// DefaultMaxWheels caps live wheel sessions when the file does not.
const DefaultMaxWheels = 64

// Config holds server settings.
type Config struct {
	LogLevel   string  `toml:"log_level"`
	Seed       int64   `toml:"seed"`
	WheelStart float64 `toml:"wheel_start"`
	MaxWheels  int     `toml:"max_wheels"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		LogLevel:  LevelInfo,
		MaxWheels: DefaultMaxWheels,
	}
}

// Debug reports whether debug logging is enabled.
func (c Config) Debug() bool {
	return c.LogLevel == LevelDebug
}

// Load reads the TOML file at path, falling back to $COLORS_MCP_CONFIG when
// path is empty, then applies environment overrides and validates the result.
func Load(path string) (Config, error) {
	conf := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		fileContent, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if _, err := toml.Decode(string(fileContent), &conf); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		conf.LogLevel = level
	}
	conf.LogLevel = strings.ToLower(conf.LogLevel)

	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	switch c.LogLevel {
	case LevelInfo, LevelDebug:
	default:
		return fmt.Errorf("illegal config: unknown log_level %q", c.LogLevel)
	}
	if err := CheckWheelStart(c.WheelStart); err != nil {
		return fmt.Errorf("illegal config: wheel_start: %w", err)
	}
	if c.MaxWheels < 0 {
		return fmt.Errorf("illegal config: max_wheels %d is negative", c.MaxWheels)
	}
	return nil
}

// CheckWheelStart accepts any finite, non-negative wheel start phase. Starts
// of 1 or more are allowed; the wheel removes their integer part. The same
// rule applies to wheel_start and to the start argument of color_wheel_create.
func CheckWheelStart(start float64) error {
	if math.IsNaN(start) || math.IsInf(start, 0) || start < 0 {
		return fmt.Errorf("start %v must be a finite number >= 0", start)
	}
	return nil
}
