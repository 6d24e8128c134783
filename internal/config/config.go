// Package config handles loading the soltex configuration.
//
// Precedence is flags > environment (SOLTEX_ prefix) > config file >
// built-in defaults. The config file is optional.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// Config holds everything a conversion run needs.
type Config struct {
	// Input is the path of the LaTeX solutions manual.
	Input string `mapstructure:"input" yaml:"input"`
	// Output is the path of the generated PreTeXt appendix.
	Output string `mapstructure:"output" yaml:"output"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// Chapters maps exact chapter titles to short section ids. Entries
	// merge over the built-in table. Titles are case-sensitive, so this
	// field is read straight from the YAML file, not through viper (which
	// lowercases map keys).
	Chapters map[string]string `mapstructure:"-" yaml:"chapters"`
}

// Load reads configuration from cfgFile (or the default search path when
// empty), layered over defaults and SOLTEX_* environment variables.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("input", defaults.Input)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix("SOLTEX")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("soltex")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// The config file is optional.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	chapters, err := loadChapterIDs(v.ConfigFileUsed())
	if err != nil {
		return nil, err
	}
	cfg.Chapters = chapters

	return &cfg, nil
}

// loadChapterIDs merges chapter entries from the config file (if any)
// over the built-in table, so a config file only needs to list additions.
func loadChapterIDs(cfgFile string) (map[string]string, error) {
	merged := DefaultChapterIDs()
	if cfgFile == "" {
		return merged, nil
	}

	data, err := os.ReadFile(cfgFile)
	if os.IsNotExist(err) {
		return merged, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	var overrides struct {
		Chapters map[string]string `yaml:"chapters"`
	}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse chapters table: %w", err)
	}

	for name, id := range overrides.Chapters {
		merged[name] = id
	}
	return merged, nil
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# soltex configuration
# Chapter titles must match the \eocesolch{...} arguments exactly.
# Titles missing from the chapters table fall back to the id "chXX".

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
