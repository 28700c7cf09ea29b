package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"TIMSDF_STORE":     "/env/run.d",
				"TIMSDF_LOG_LEVEL": "debug",
				"TIMSDF_LIMIT":     "25",
				"TIMSDF_MS_TYPE":   "precursor",
				"TIMSDF_FOLLOW":    "true",
				"TIMSDF_DEBOUNCE":  "3s",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				StorePath: "/env/run.d",
				LogLevel:  "debug",
				Limit:     25,
				MsType:    "precursor",
				Follow:    true,
				Debounce:  3 * time.Second,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"TIMSDF_STORE":     "/env/run.d",
				"TIMSDF_LOG_LEVEL": "debug",
			},
			changed:  map[string]bool{"store": true},
			initial:  Config{StorePath: "/flag/run.d"},
			expected: Config{StorePath: "/flag/run.d", LogLevel: "debug"},
		},
		{
			name:     "returns error for invalid duration",
			envVars:  map[string]string{"TIMSDF_DEBOUNCE": "not-a-duration"},
			changed:  map[string]bool{},
			initial:  Config{},
			expected: Config{},
			wantErr:  true,
		},
		{
			name:     "returns error for invalid limit",
			envVars:  map[string]string{"TIMSDF_LIMIT": "many"},
			changed:  map[string]bool{},
			initial:  Config{},
			expected: Config{},
			wantErr:  true,
		},
		{
			name:     "ignores non-positive limit",
			envVars:  map[string]string{"TIMSDF_LIMIT": "0"},
			changed:  map[string]bool{},
			initial:  Config{Limit: 7},
			expected: Config{Limit: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyEnvConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg != tt.expected {
				t.Fatalf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}
