// Package viper loads aliscout configuration from a YAML file with
// environment variable overrides.
package viper

import (
	"fmt"
	"strings"

	"github.com/kofiasare/aliscout"
	"github.com/spf13/viper"
)

// Load reads configuration for the process.
// Priority (highest to lowest): env vars > config file > defaults.
//
// The database section has no default; a configuration that does not
// provide one fails validation here, before any work is attempted.
func Load(configPath string) (*aliscout.Config, error) {
	cfg := aliscout.DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")

	setDefaults(v, cfg)

	// Environment variable support, e.g. ALISCOUT_DATABASE_PATH.
	v.SetEnvPrefix("ALISCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("aliscout")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// Only an absent implicit file is tolerated (validation then
		// requires a database path from the environment). A file that
		// exists but fails to parse is never silently dropped.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers default values in viper so that partial config
// files inherit the rest.
func setDefaults(v *viper.Viper, cfg aliscout.Config) {
	// Registered empty so the env override binds even without a file.
	v.SetDefault("database.path", cfg.Database.Path)

	v.SetDefault("fetcher.render_wait", cfg.Fetcher.RenderWait)
	v.SetDefault("fetcher.scroll_iterations", cfg.Fetcher.ScrollIterations)
	v.SetDefault("fetcher.timeout", cfg.Fetcher.Timeout)

	v.SetDefault("collector.search_url", cfg.Collector.SearchURL)
	v.SetDefault("collector.max_pages", cfg.Collector.MaxPages)
	v.SetDefault("collector.output_dir", cfg.Collector.OutputDir)
}
