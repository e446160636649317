// Package config provides configuration types and defaults for semreg.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/petersancho/semreg/internal/coverage"
	"github.com/petersancho/semreg/internal/log"
	"github.com/petersancho/semreg/internal/tracing"
)

// Config holds all configuration options for semreg.
type Config struct {
	// OutputDir is where export artifacts land (ontology.json, graph.dot,
	// agent-capabilities.json, provenance exports).
	OutputDir  string           `mapstructure:"output_dir" yaml:"output_dir"`
	Coverage   CoverageConfig   `mapstructure:"coverage" yaml:"coverage"`
	Provenance ProvenanceConfig `mapstructure:"provenance" yaml:"provenance"`
	Tracing    TracingConfig    `mapstructure:"tracing" yaml:"tracing"`
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
}

// CoverageConfig holds coverage gate configuration.
type CoverageConfig struct {
	Thresholds ThresholdsConfig `mapstructure:"thresholds" yaml:"thresholds"`
}

// ThresholdsConfig holds the CI gate levels.
type ThresholdsConfig struct {
	MinOverall   float64 `mapstructure:"min_overall" yaml:"min_overall"`
	MinSafety    float64 `mapstructure:"min_safety" yaml:"min_safety"`
	MinIntegrity float64 `mapstructure:"min_integrity" yaml:"min_integrity"`
	MaxErrors    int     `mapstructure:"max_errors" yaml:"max_errors"`
}

// GateThresholds lifts the user-facing thresholds section into the
// coverage package's gate type.
func (c CoverageConfig) GateThresholds() coverage.Thresholds {
	return coverage.Thresholds{
		MinOverall:   c.Thresholds.MinOverall,
		MinSafety:    c.Thresholds.MinSafety,
		MinIntegrity: c.Thresholds.MinIntegrity,
		MaxErrors:    c.Thresholds.MaxErrors,
	}
}

// ProvenanceConfig holds provenance capture configuration.
type ProvenanceConfig struct {
	// MaxEntries caps entries per session; oldest are evicted first.
	// Zero means the store default.
	MaxEntries int `mapstructure:"max_entries" yaml:"max_entries"`
}

// TracingConfig holds trace export configuration.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter" yaml:"exporter"`

	// FilePath is the output file for the "file" exporter.
	// Default: ~/.config/semreg/traces/traces.jsonl
	FilePath string `mapstructure:"file_path" yaml:"file_path"`

	// OTLPEndpoint is the collector endpoint for the "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint" yaml:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// 1.0 = all traces, 0.1 = 10% of traces
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate" yaml:"sample_rate"`
}

// ProviderConfig lifts the user-facing tracing section into the tracing
// package's provider configuration.
func (t TracingConfig) ProviderConfig() tracing.Config {
	cfg := tracing.DefaultConfig()
	cfg.Enabled = t.Enabled
	if t.Exporter != "" {
		cfg.Exporter = t.Exporter
	}
	cfg.FilePath = t.FilePath
	if cfg.FilePath == "" {
		cfg.FilePath = DefaultTracesFilePath()
	}
	if t.OTLPEndpoint != "" {
		cfg.OTLPEndpoint = t.OTLPEndpoint
	}
	if t.SampleRate > 0 {
		cfg.SampleRate = t.SampleRate
	}
	return cfg
}

// LogConfig holds structured debug log configuration.
type LogConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"`
	Level   string `mapstructure:"level" yaml:"level"` // debug (default), info, warn, error
}

// MinLevel maps the configured level name to a log level.
// Unrecognized or empty names fall back to debug.
func (l LogConfig) MinLevel() log.Level {
	switch l.Level {
	case "info":
		return log.LevelInfo
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelDebug
	}
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/semreg/traces/traces.jsonl or empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "semreg", "traces", "traces.jsonl")
}

// DefaultLogFilePath returns the default path for the debug log.
// Returns ~/.config/semreg/semreg.log or empty string if home dir unavailable.
func DefaultLogFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "semreg", "semreg.log")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		OutputDir: "dist",
		Coverage: CoverageConfig{
			Thresholds: ThresholdsConfig{
				MinOverall:   60,
				MinSafety:    80,
				MinIntegrity: 95,
				MaxErrors:    10,
			},
		},
		Provenance: ProvenanceConfig{
			MaxEntries: 1000,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
		Log: LogConfig{
			Enabled: false,
			Path:    "", // Derived from config dir at runtime
			Level:   "debug",
		},
	}
}

// Validate checks the whole configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func Validate(c Config) error {
	if err := ValidateThresholds(c.Coverage.Thresholds); err != nil {
		return err
	}
	if err := ValidateProvenance(c.Provenance); err != nil {
		return err
	}
	if err := ValidateTracing(c.Tracing); err != nil {
		return err
	}
	return ValidateLog(c.Log)
}

// ValidateThresholds checks gate threshold configuration for errors.
func ValidateThresholds(th ThresholdsConfig) error {
	check := func(name string, v float64) error {
		if v < 0 || v > 100 {
			return fmt.Errorf("coverage.thresholds.%s must be between 0 and 100, got %v", name, v)
		}
		return nil
	}
	if err := check("min_overall", th.MinOverall); err != nil {
		return err
	}
	if err := check("min_safety", th.MinSafety); err != nil {
		return err
	}
	if err := check("min_integrity", th.MinIntegrity); err != nil {
		return err
	}
	if th.MaxErrors < 0 {
		return fmt.Errorf("coverage.thresholds.max_errors must be non-negative, got %d", th.MaxErrors)
	}
	return nil
}

// ValidateProvenance checks provenance configuration for errors.
func ValidateProvenance(p ProvenanceConfig) error {
	if p.MaxEntries < 0 {
		return fmt.Errorf("provenance.max_entries must be non-negative, got %d", p.MaxEntries)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(t TracingConfig) error {
	if t.SampleRate < 0.0 || t.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", t.SampleRate)
	}

	if t.Exporter != "" {
		switch t.Exporter {
		case "none", "file", "stdout", "otlp":
			// Valid
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", t.Exporter)
		}
	}

	// Path requirements only bind when tracing is on. FilePath may stay
	// empty for the file exporter because the default path is derived at
	// runtime; the endpoint has no such fallback.
	if t.Enabled {
		if t.Exporter == "otlp" && t.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// ValidateLog checks log configuration for errors.
func ValidateLog(l LogConfig) error {
	switch l.Level {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("log.level must be \"debug\", \"info\", \"warn\", or \"error\", got %q", l.Level)
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Semreg Configuration

# Directory for exported artifacts: ontology.json, graph.dot,
# agent-capabilities.json, and provenance session exports
output_dir: dist

# Coverage gate thresholds
# 'semreg coverage' exits non-zero when any gate fails.
# 'semreg coverage --ratchet' raises these to the current scores.
coverage:
  thresholds:
    min_overall: 60     # Minimum weighted overall score (0-100)
    min_safety: 80      # Minimum safety coverage (0-100)
    min_integrity: 95   # Minimum ontology integrity (0-100)
    max_errors: 10      # Maximum validation errors before the gate fails

# Provenance capture
provenance:
  max_entries: 1000   # Per-session entry cap; oldest entries evicted first

# Trace export
# Mirrors every recorded trace entry as an OpenTelemetry span.
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/semreg/traces/traces.jsonl  # Output file for file exporter
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
#
# Example: send traces to Jaeger via OTLP
# tracing:
#   enabled: true
#   exporter: otlp
#   otlp_endpoint: jaeger.internal:4317
#   sample_rate: 0.1  # Sample 10% of traces

# Structured debug log
# Also enabled by the --debug flag or SEMREG_DEBUG=1.
# log:
#   enabled: false
#   path: ~/.config/semreg/semreg.log
#   level: debug    # debug, info, warn, or error
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
