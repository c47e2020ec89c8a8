package config

import "errors"

// Config is the top-level configuration struct for ehunter.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Genotyping GenotypingConfig `mapstructure:"genotyping"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// GenotypingConfig holds repeat genotyping thresholds.
type GenotypingConfig struct {
	MinLocusCoverage           int `mapstructure:"min_locus_coverage"`
	MinBreakpointSpanningReads int `mapstructure:"min_breakpoint_spanning_reads"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// MetricsConfig holds the optional Prometheus endpoint settings.
type MetricsConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	ListenAddr string `mapstructure:"listen_addr"`
}

// Default configuration values.
const (
	DefaultMinLocusCoverage           = 10
	DefaultMinBreakpointSpanningReads = 5
	DefaultLoggingLevel               = "info"
	DefaultMetricsEnabled             = false
	DefaultMetricsListenAddr          = "localhost:9477"
)

// Sentinel errors for configuration validation.
var (
	// ErrInvalidMinLocusCoverage indicates the minimum locus coverage is not positive.
	ErrInvalidMinLocusCoverage = errors.New("genotyping.min_locus_coverage must be positive")
	// ErrInvalidMinBreakpointReads indicates the breakpoint read threshold is not positive.
	ErrInvalidMinBreakpointReads = errors.New("genotyping.min_breakpoint_spanning_reads must be positive")
	// ErrInvalidLoggingLevel indicates an unknown logging level name.
	ErrInvalidLoggingLevel = errors.New("logging.level must be one of debug, info, warn, error")
	// ErrInvalidMetricsListenAddr indicates the metrics listen address is empty.
	ErrInvalidMetricsListenAddr = errors.New("metrics.listen_addr must be non-empty when metrics are enabled")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if c.Genotyping.MinLocusCoverage <= 0 {
		return ErrInvalidMinLocusCoverage
	}

	if c.Genotyping.MinBreakpointSpanningReads <= 0 {
		return ErrInvalidMinBreakpointReads
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLoggingLevel
	}

	if c.Metrics.Enabled && c.Metrics.ListenAddr == "" {
		return ErrInvalidMetricsListenAddr
	}

	return nil
}
