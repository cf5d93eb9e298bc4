package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name     string
		args     []string
		expected Config
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "http://api.example:9090", "-t", "30", "-d", "state.db", "-l", "debug"},
			expected: Config{
				ServerBaseURL:  "http://api.example:9090",
				RequestTimeout: 30 * time.Second,
				LocalDBPath:    "state.db",
				LogLevel:       "debug",
			},
		},
		{
			name: "no flags keeps defaults",
			args: []string{"cmd"},
			expected: Config{
				ServerBaseURL:  "http://localhost:8080",
				RequestTimeout: 15 * time.Second,
				LocalDBPath:    "promptadmin.db",
				LogLevel:       "info",
			},
		},
		{
			name: "unknown flags are filtered out",
			args: []string{"cmd", "-x", "ignored", "-a", "http://other:8080"},
			expected: Config{
				ServerBaseURL:  "http://other:8080",
				RequestTimeout: 15 * time.Second,
				LocalDBPath:    "promptadmin.db",
				LogLevel:       "info",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			cfg := &Config{}
			cfg.LoadDefaults()

			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Equal(t, tt.expected, *cfg)
		})
	}
}
