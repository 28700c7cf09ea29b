package cliconfig

import (
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid defaults with store",
			mutate: func(c *Config) { c.StorePath = "/data/run.d" },
		},
		{
			name:    "missing store path",
			mutate:  func(c *Config) {},
			wantErr: true,
		},
		{
			name: "bad log level",
			mutate: func(c *Config) {
				c.StorePath = "/data/run.d"
				c.LogLevel = "loud"
			},
			wantErr: true,
		},
		{
			name: "bad ms type filter",
			mutate: func(c *Config) {
				c.StorePath = "/data/run.d"
				c.MsType = "ms3"
			},
			wantErr: true,
		},
		{
			name: "negative limit",
			mutate: func(c *Config) {
				c.StorePath = "/data/run.d"
				c.Limit = -1
			},
			wantErr: true,
		},
		{
			name: "zero debounce",
			mutate: func(c *Config) {
				c.StorePath = "/data/run.d"
				c.Debounce = 0
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTrimsTrailingSlash(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StorePath = "/data/run.d/"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if cfg.StorePath != "/data/run.d" {
		t.Fatalf("StorePath = %q, want trailing slash removed", cfg.StorePath)
	}
}

func TestConfigSetterRespectsChangedFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StorePath = "/from/flag"

	s := newConfigSetter(map[string]bool{"store": true})
	s.setString("store", "/from/file", &cfg.StorePath)
	if cfg.StorePath != "/from/flag" {
		t.Fatalf("changed flag overridden: %q", cfg.StorePath)
	}

	s.setString("log-level", "debug", &cfg.LogLevel)
	if cfg.LogLevel != "debug" {
		t.Fatalf("unchanged flag not applied: %q", cfg.LogLevel)
	}
}

func TestConfigSetterDuration(t *testing.T) {
	cfg := DefaultConfig()
	s := newConfigSetter(map[string]bool{})

	if err := s.setDuration("debounce", "2s", &cfg.Debounce); err != nil {
		t.Fatalf("setDuration: %v", err)
	}
	if cfg.Debounce != 2*time.Second {
		t.Fatalf("Debounce = %v, want 2s", cfg.Debounce)
	}

	if err := s.setDuration("debounce", "nope", &cfg.Debounce); err == nil {
		t.Fatal("expected parse error")
	}
}
