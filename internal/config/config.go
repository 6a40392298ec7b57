// Package config reads the sanctuary's optional environment settings.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// RosterDriver identifies a roster implementation.
type RosterDriver string

const (
	RosterMemory RosterDriver = "memory" // map-backed (default)
	RosterSQLite RosterDriver = "sqlite" // in-memory sqlite database
)

// Environment variables (all optional):
//
//	SANCTUARY_ROSTER_DRIVER: memory|sqlite (default memory)
//	SANCTUARY_LOG_LEVEL: debug|info|warn|error (default warn)
const (
	EnvRosterDriver = "SANCTUARY_ROSTER_DRIVER"
	EnvLogLevel     = "SANCTUARY_LOG_LEVEL"
)

// Config holds the resolved settings.
type Config struct {
	RosterDriver RosterDriver
	LogLevel     slog.Level
}

// Default returns the settings used when no variables are set.
func Default() Config {
	return Config{RosterDriver: RosterMemory, LogLevel: slog.LevelWarn}
}

// Load reads settings from the process environment.
func Load() (Config, error) {
	return FromLookup(os.Getenv)
}

// FromLookup resolves settings using getenv, which returns "" for unset keys.
func FromLookup(getenv func(string) string) (Config, error) {
	cfg := Default()
	if v := strings.TrimSpace(getenv(EnvRosterDriver)); v != "" {
		switch RosterDriver(strings.ToLower(v)) {
		case RosterMemory:
			cfg.RosterDriver = RosterMemory
		case RosterSQLite:
			cfg.RosterDriver = RosterSQLite
		default:
			return Config{}, fmt.Errorf("unknown roster driver %s", v)
		}
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}
