package config

import (
	"strings"
	"testing"
)

func TestResolveDefaults_MemoryOffline(t *testing.T) {
	cfg := NewForTesting()
	if err := cfg.ResolveDefaults(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestResolveDefaults_DriverRequirements(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "postgres without DSN",
			mutate:  func(c *Config) { c.StoreDriver = "postgres" },
			wantErr: "POSTGRES_DSN",
		},
		{
			name: "postgres with DSN",
			mutate: func(c *Config) {
				c.StoreDriver = "postgres"
				c.PostgresDSN = "postgres://localhost:5432/lifefork"
			},
		},
		{
			name:    "sqlite without path",
			mutate:  func(c *Config) { c.StoreDriver = "sqlite" },
			wantErr: "SQLITE_PATH",
		},
		{
			name:    "mongo without URI",
			mutate:  func(c *Config) { c.StoreDriver = "mongo" },
			wantErr: "MONGO_URI",
		},
		{
			name: "mongo with URI",
			mutate: func(c *Config) {
				c.StoreDriver = "mongo"
				c.MongoURI = "mongodb://localhost:27017"
			},
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.StoreDriver = "redis" },
			wantErr: "unsupported STORE_DRIVER",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewForTesting()
			tc.mutate(cfg)
			err := cfg.ResolveDefaults()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestResolveDefaults_GeneratorRequirements(t *testing.T) {
	cfg := NewForTesting()
	cfg.Generator = "gemini"
	if err := cfg.ResolveDefaults(); err == nil {
		t.Fatal("expected error for gemini without API key")
	}

	cfg.GeminiAPIKey = "test-key"
	if err := cfg.ResolveDefaults(); err != nil {
		t.Fatalf("expected valid config with API key, got %v", err)
	}

	cfg.Generator = "openai"
	if err := cfg.ResolveDefaults(); err == nil {
		t.Fatal("expected error for unsupported generator")
	}
}

func TestResolveDefaults_TimeoutMustBePositive(t *testing.T) {
	cfg := NewForTesting()
	cfg.GenerateTimeoutSeconds = 0
	if err := cfg.ResolveDefaults(); err == nil {
		t.Fatal("expected error for non-positive timeout")
	}
}

func TestGetHTTPAddr(t *testing.T) {
	cfg := NewForTesting()
	cfg.HTTPPort = 9090
	if got := cfg.GetHTTPAddr(); got != ":9090" {
		t.Fatalf("GetHTTPAddr() = %q, want %q", got, ":9090")
	}
}

func TestEnvironmentPredicates(t *testing.T) {
	cfg := NewForTesting()
	if !cfg.IsTesting() {
		t.Fatal("NewForTesting should report testing environment")
	}
	if cfg.IsProduction() {
		t.Fatal("NewForTesting should not report production")
	}
}
