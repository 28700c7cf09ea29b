package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (TIMSDF_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("store", os.Getenv("TIMSDF_STORE"), &cfg.StorePath)
	s.setString("log-level", os.Getenv("TIMSDF_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("ms-type", os.Getenv("TIMSDF_MS_TYPE"), &cfg.MsType)

	if err := s.setIntFromString("limit", os.Getenv("TIMSDF_LIMIT"), &cfg.Limit); err != nil {
		return err
	}
	if err := s.setIntFromString("peaks", os.Getenv("TIMSDF_PEAK_LIMIT"), &cfg.PeakLimit); err != nil {
		return err
	}

	if err := s.setDuration("debounce", os.Getenv("TIMSDF_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("follow", os.Getenv("TIMSDF_FOLLOW"), &cfg.Follow)

	return nil
}
