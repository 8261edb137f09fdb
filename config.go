package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type ExtractConfig struct {
	MaxColors            int  `toml:"max_colors"`
	ResizeArea           int  `toml:"resize_area"`
	ResizeMaxDimension   int  `toml:"resize_max_dimension"`
	DisableDefaultFilter bool `toml:"disable_default_filter"`
}

type CacheConfig struct {
	Disabled   bool `toml:"disabled"`
	MaxEntries int  `toml:"max_entries"`
}

type WatchConfig struct {
	DebounceMillis int `toml:"debounce_millis"`
}

func (w WatchConfig) DebounceDuration() time.Duration {
	if w.DebounceMillis > 0 {
		return time.Duration(w.DebounceMillis) * time.Millisecond
	}
	return 400 * time.Millisecond
}

type Config struct {
	Extract ExtractConfig `toml:"extract"`
	Cache   CacheConfig   `toml:"cache"`
	Watch   WatchConfig   `toml:"watch"`
}

func defaultConfig() *Config {
	return &Config{
		Extract: ExtractConfig{
			MaxColors:          16,
			ResizeArea:         112 * 112,
			ResizeMaxDimension: -1,
		},
		Cache: CacheConfig{
			MaxEntries: 512,
		},
	}
}

func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		return cfg, nil
	}

	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
