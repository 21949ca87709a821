package config

import (
	"os"
	"testing"
	"time"
)

var testEnvKeys = []string{
	"SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT",
	"DB_MAX_CONNECTIONS", "DB_CONNECTION_TIMEOUT",
	"RATE_LIMIT_FEED_FETCH_INTERVAL", "RATE_LIMIT_FEED_FETCH_BURST",
	"LOG_LEVEL", "LOG_FORMAT",
	"DISPATCH_WORKERS", "DISPATCH_QUEUE_SIZE", "DISPATCH_RUN_TIMEOUT",
	"DISPATCH_DEFAULT_LOOKBACK_DAYS", "DISPATCH_FORCED_LOOKBACK_DAYS",
	"DISCOVERY_PROVIDER_TIMEOUT", "DISCOVERY_BRIDGE_TIMEOUT",
	"DISCOVERY_RESULTS_PER_KIND", "DISCOVERY_BRIDGE_HOSTS",
	"SYNTHESIS_DEFAULT_PROVIDER", "DELIVERY_API_BASE",
}

func clearTestEnv() {
	for _, key := range testEnvKeys {
		os.Unsetenv(key)
	}
}

func TestNewConfig_WithDefaults(t *testing.T) {
	clearTestEnv()
	defer clearTestEnv()

	config, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() failed: %v", err)
	}

	if config.Server.Port != 9000 {
		t.Errorf("expected default port 9000, got %d", config.Server.Port)
	}
	if config.Dispatch.DefaultLookback != 1 {
		t.Errorf("expected default lookback 1, got %d", config.Dispatch.DefaultLookback)
	}
	if config.Dispatch.ForcedLookback != 3 {
		t.Errorf("expected forced lookback 3, got %d", config.Dispatch.ForcedLookback)
	}
	if config.Discovery.ProviderTimeout != 6*time.Second {
		t.Errorf("expected provider timeout 6s, got %v", config.Discovery.ProviderTimeout)
	}
	if len(config.Discovery.BridgeHosts) != 3 {
		t.Errorf("expected 3 default bridge hosts, got %v", config.Discovery.BridgeHosts)
	}
	if config.Logging.Format != "json" {
		t.Errorf("expected json log format, got %s", config.Logging.Format)
	}
}

func TestNewConfig_WithEnvironmentOverrides(t *testing.T) {
	clearTestEnv()
	defer clearTestEnv()

	os.Setenv("SERVER_PORT", "8080")
	os.Setenv("DISPATCH_WORKERS", "8")
	os.Setenv("DISPATCH_RUN_TIMEOUT", "90s")
	os.Setenv("DISCOVERY_BRIDGE_HOSTS", "nitter.example.com, nitter.example.org")

	config, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() failed: %v", err)
	}

	if config.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", config.Server.Port)
	}
	if config.Dispatch.Workers != 8 {
		t.Errorf("expected 8 workers, got %d", config.Dispatch.Workers)
	}
	if config.Dispatch.RunTimeout != 90*time.Second {
		t.Errorf("expected run timeout 90s, got %v", config.Dispatch.RunTimeout)
	}
	if len(config.Discovery.BridgeHosts) != 2 || config.Discovery.BridgeHosts[1] != "nitter.example.org" {
		t.Errorf("unexpected bridge hosts: %v", config.Discovery.BridgeHosts)
	}
}

func TestNewConfig_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "port out of range",
			env:  map[string]string{"SERVER_PORT": "70000"},
		},
		{
			name: "forced lookback shorter than default",
			env: map[string]string{
				"DISPATCH_DEFAULT_LOOKBACK_DAYS": "5",
				"DISPATCH_FORCED_LOOKBACK_DAYS":  "2",
			},
		},
		{
			name: "invalid log level",
			env:  map[string]string{"LOG_LEVEL": "verbose"},
		},
		{
			name: "empty bridge hosts",
			env:  map[string]string{"DISCOVERY_BRIDGE_HOSTS": " , "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTestEnv()
			defer clearTestEnv()

			for k, v := range tt.env {
				os.Setenv(k, v)
			}

			if _, err := NewConfig(); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}
