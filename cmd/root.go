// Package cmd wires the semreg command set: export, validate, coverage,
// stats, trace, and serve, all sharing one viper-backed configuration.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petersancho/semreg/internal/catalog"
	"github.com/petersancho/semreg/internal/config"
	"github.com/petersancho/semreg/internal/legacy"
	"github.com/petersancho/semreg/internal/log"
	"github.com/petersancho/semreg/internal/ontology"
	"github.com/petersancho/semreg/internal/seed"
)

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:   "semreg",
	Short: "Semantic registry for operation catalogs",
	Long: `A semantic registry that migrates legacy operation catalogs into a
typed, queryable ontology and exposes it to agents: JSON/DOT exports,
coverage gates, provenance trace analysis, and an MCP server.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/semreg/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write a structured debug log")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("output_dir", defaults.OutputDir)
	viper.SetDefault("coverage.thresholds.min_overall", defaults.Coverage.Thresholds.MinOverall)
	viper.SetDefault("coverage.thresholds.min_safety", defaults.Coverage.Thresholds.MinSafety)
	viper.SetDefault("coverage.thresholds.min_integrity", defaults.Coverage.Thresholds.MinIntegrity)
	viper.SetDefault("coverage.thresholds.max_errors", defaults.Coverage.Thresholds.MaxErrors)
	viper.SetDefault("provenance.max_entries", defaults.Provenance.MaxEntries)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("log.enabled", defaults.Log.Enabled)
	viper.SetDefault("log.level", defaults.Log.Level)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .semreg/config.yaml (current directory)
		// 2. ~/.config/semreg/config.yaml (user config)
		if _, err := os.Stat(".semreg/config.yaml"); err == nil {
			viper.SetConfigFile(".semreg/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "semreg"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .semreg/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".semreg/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// setupLogging starts the structured debug log when the --debug flag,
// SEMREG_DEBUG, or the log config section asks for one. The returned
// cleanup closes the log file and is safe to defer unconditionally.
func setupLogging() (func(), error) {
	debug := debugFlag || os.Getenv("SEMREG_DEBUG") != ""
	if !debug && !cfg.Log.Enabled {
		return func() {}, nil
	}

	logPath := cfg.Log.Path
	if logPath == "" {
		logPath = config.DefaultLogFilePath()
	}
	if logPath == "" {
		logPath = "semreg.log"
	}

	cleanup, err := log.Init(logPath)
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}
	if debug {
		log.SetMinLevel(log.LevelDebug)
	} else {
		log.SetMinLevel(cfg.Log.MinLevel())
	}
	return cleanup, nil
}

// buildRegistry seeds a fresh registry with the embedded vocabulary and
// migrates every legacy catalog module into it.
func buildRegistry() (*ontology.Registry, error) {
	reg := ontology.New()
	if err := seed.Load(reg); err != nil {
		return nil, fmt.Errorf("loading vocabulary: %w", err)
	}
	for _, mod := range catalog.Modules() {
		if _, err := legacy.RegisterModule(mod, reg); err != nil {
			return nil, fmt.Errorf("migrating catalog: %w", err)
		}
	}

	stats := reg.Stats()
	log.Debug(log.CatCLI, "registry built",
		"entities", stats.Entities, "relations", stats.Relations)
	return reg, nil
}

// configFilePath is where threshold updates land. Falls back to the
// project-local path when no config file was loaded.
func configFilePath() string {
	if path := viper.ConfigFileUsed(); path != "" {
		return path
	}
	return ".semreg/config.yaml"
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
