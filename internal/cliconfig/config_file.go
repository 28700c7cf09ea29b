package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	StorePath string `toml:"store_path"`
	LogLevel  string `toml:"log_level"`
	Limit     int    `toml:"limit"`
	MsType    string `toml:"ms_type"`
	Follow    *bool  `toml:"follow"`
	Debounce  string `toml:"debounce"`
	PeakLimit int    `toml:"peak_limit"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.timsdf/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".timsdf", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("store", fc.StorePath, &cfg.StorePath)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("ms-type", fc.MsType, &cfg.MsType)

	s.setInt("limit", fc.Limit, &cfg.Limit)
	s.setInt("peaks", fc.PeakLimit, &cfg.PeakLimit)

	s.setBool("follow", fc.Follow, &cfg.Follow)

	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}
	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
