// Package config provides the defaults of the command line tool. Values come
// from CPUSCHED_* environment variables, optionally written in a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInvalidValue is returned when a variable cannot be parsed.
var ErrInvalidValue = errors.New("invalid configuration value")

// The environment variables that are read.
const (
	EnvFormat      = "CPUSCHED_FORMAT"
	EnvPrecision   = "CPUSCHED_PRECISION"
	EnvMonitorPort = "CPUSCHED_MONITOR_PORT"
	EnvRecord      = "CPUSCHED_RECORD"
	EnvNoColor     = "CPUSCHED_NO_COLOR"
)

// DefaultEnvFile is loaded when present and no other file is given.
const DefaultEnvFile = ".env"

// Config holds the defaults that command line flags override.
type Config struct {
	// Format is the name of the report format.
	Format string

	// Precision is the number of decimal digits of averages.
	Precision int

	// MonitorPort is the port of the monitoring server, 0 for a random one.
	MonitorPort int

	// Record is the name of the SQLite file to record traces into. Empty
	// disables recording.
	Record string

	NoColor bool
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Format:    "text",
		Precision: 1,
	}
}

// Load reads the given .env files, or DefaultEnvFile if it exists, and lets
// the process environment override what the files set.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if _, err := os.Stat(DefaultEnvFile); err == nil {
			files = []string{DefaultEnvFile}
		}
	}

	values := map[string]string{}
	if len(files) > 0 {
		read, err := godotenv.Read(files...)
		if err != nil {
			return Config{}, err
		}
		values = read
	}

	for _, key := range []string{
		EnvFormat, EnvPrecision, EnvMonitorPort, EnvRecord, EnvNoColor,
	} {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}

	return FromMap(values)
}

// FromMap builds a configuration from variable values. Missing variables keep
// their defaults.
func FromMap(values map[string]string) (Config, error) {
	c := Default()

	if v, ok := values[EnvFormat]; ok && v != "" {
		c.Format = strings.ToLower(strings.TrimSpace(v))
	}

	if v, ok := values[EnvPrecision]; ok && v != "" {
		p, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || p < 0 {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvPrecision, v)
		}
		c.Precision = p
	}

	if v, ok := values[EnvMonitorPort]; ok && v != "" {
		port, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || port < 0 || port > 65535 {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvMonitorPort, v)
		}
		c.MonitorPort = port
	}

	if v, ok := values[EnvRecord]; ok {
		c.Record = strings.TrimSpace(v)
	}

	if v, ok := values[EnvNoColor]; ok && v != "" {
		noColor, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvNoColor, v)
		}
		c.NoColor = noColor
	}

	return c, nil
}
