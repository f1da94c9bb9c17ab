package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// cliConfig holds the handful of settings a pattern run can default to when
// the corresponding flag is left unset: which rule to evolve under and
// which window to report on. Grounded on perf-analysis/pkg/config's
// viper-backed Config, scoped down to what this CLI actually has to offer.
type cliConfig struct {
	Rule   string `mapstructure:"rule"`
	Window struct {
		MinX int64 `mapstructure:"min_x"`
		MinY int64 `mapstructure:"min_y"`
		MaxX int64 `mapstructure:"max_x"`
		MaxY int64 `mapstructure:"max_y"`
	} `mapstructure:"window"`
}

func defaultCliConfig() cliConfig {
	var cfg cliConfig
	cfg.Rule = "B3/S23"
	cfg.Window.MinX, cfg.Window.MinY = -32, -32
	cfg.Window.MaxX, cfg.Window.MaxY = 32, 32
	return cfg
}

// loadConfig merges configPath (if non-empty) over the built-in defaults.
// A missing configPath is not an error: the defaults stand on their own.
func loadConfig(configPath string) (cliConfig, error) {
	cfg := defaultCliConfig()

	v := viper.New()
	v.SetDefault("rule", cfg.Rule)
	v.SetDefault("window.min_x", cfg.Window.MinX)
	v.SetDefault("window.min_y", cfg.Window.MinY)
	v.SetDefault("window.max_x", cfg.Window.MaxX)
	v.SetDefault("window.max_y", cfg.Window.MaxY)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return cliConfig{}, fmt.Errorf("reading %s: %w", configPath, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cliConfig{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
