// Package config loads engine defaults from an optional YAML file plus
// KDL_-prefixed environment overrides, in the style of niceyeti-tabular's
// viper-backed TrainingConfig loader.
package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

// Config holds every host-tunable default for a kdl process.
type Config struct {
	// DefaultBoardName selects which embedded board new_default_state()
	// loads.
	DefaultBoardName string `mapstructure:"default_board_name"`
	// ClosedWings are wing names closed (via board.Board.Close) on every
	// freshly loaded board.
	ClosedWings []string `mapstructure:"closed_wings"`
	// CacheDir is the badger results-cache directory.
	CacheDir string `mapstructure:"cache_dir"`
	// CacheSizeMB is advisory; badger manages its own on-disk sizing, but
	// the value is surfaced for host configuration parity with the
	// spec's "results-cache size" knob.
	CacheSizeMB int `mapstructure:"cache_size_mb"`
	// LevelTimeBudgetsMs is the per-level soft time cap table (spec.md
	// §4.7), in milliseconds, indexed starting at level 1.
	LevelTimeBudgetsMs []int `mapstructure:"level_time_budgets_ms"`
	// DefaultMoveCards/Weapons/Failures seed start_new_game_with_setup
	// when the host doesn't specify its own values.
	DefaultMoveCards float64 `mapstructure:"default_move_cards"`
	DefaultWeapons   float64 `mapstructure:"default_weapons"`
	DefaultFailures  float64 `mapstructure:"default_failures"`
	// HTTPAddr is the httpapi listen address.
	HTTPAddr string `mapstructure:"http_addr"`
	// LogPath is where engine.Logger writes turn/search events.
	LogPath string `mapstructure:"log_path"`
}

// Default returns the built-in configuration used when no file is present
// and no environment overrides are set.
func Default() Config {
	return Config{
		DefaultBoardName: "Foyer",
		ClosedWings:      nil,
		CacheDir:         "kdl-cache",
		CacheSizeMB:      64,
		LevelTimeBudgetsMs: []int{
			50, 100, 250, 500, 1000, 2000, 4000, 8000, 15000, 30000,
		},
		DefaultMoveCards: 0,
		DefaultWeapons:   0,
		DefaultFailures:  0,
		HTTPAddr:         ":8910",
		LogPath:          "kdl.log",
	}
}

// Load reads path (if non-empty and the file exists) over the built-in
// defaults, then applies KDL_-prefixed environment variable overrides
// (KDL_DEFAULT_BOARD_NAME, KDL_CACHE_DIR, KDL_HTTP_ADDR, ...).
func Load(path string) (Config, error) {
	cfg := Default()

	vp := viper.New()
	vp.SetConfigType("yaml")
	setViperDefaults(vp, cfg)

	if path != "" {
		vp.SetConfigFile(path)
		if err := vp.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return cfg, err
			}
		}
	}

	vp.SetEnvPrefix("KDL")
	vp.AutomaticEnv()
	for _, key := range configKeys {
		_ = vp.BindEnv(key)
	}

	if err := vp.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

var configKeys = []string{
	"default_board_name",
	"closed_wings",
	"cache_dir",
	"cache_size_mb",
	"level_time_budgets_ms",
	"default_move_cards",
	"default_weapons",
	"default_failures",
	"http_addr",
	"log_path",
}

func setViperDefaults(vp *viper.Viper, cfg Config) {
	vp.SetDefault("default_board_name", cfg.DefaultBoardName)
	vp.SetDefault("closed_wings", cfg.ClosedWings)
	vp.SetDefault("cache_dir", cfg.CacheDir)
	vp.SetDefault("cache_size_mb", cfg.CacheSizeMB)
	vp.SetDefault("level_time_budgets_ms", cfg.LevelTimeBudgetsMs)
	vp.SetDefault("default_move_cards", cfg.DefaultMoveCards)
	vp.SetDefault("default_weapons", cfg.DefaultWeapons)
	vp.SetDefault("default_failures", cfg.DefaultFailures)
	vp.SetDefault("http_addr", cfg.HTTPAddr)
	vp.SetDefault("log_path", cfg.LogPath)
}

// LevelTimeBudgets converts LevelTimeBudgetsMs to a duration table for
// engine.FindBestTurn / engine.TimeBudgetForLevel.
func (c Config) LevelTimeBudgets() []time.Duration {
	out := make([]time.Duration, len(c.LevelTimeBudgetsMs))
	for i, ms := range c.LevelTimeBudgetsMs {
		out[i] = time.Duration(ms) * time.Millisecond
	}
	return out
}
