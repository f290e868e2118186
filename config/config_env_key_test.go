package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"externalRoutes": map[string]any{
			"rateLimitPerSecond": 5,
			"google": map[string]any{
				"apiKey": "",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "EXTERNALROUTES_GOOGLE_APIKEY", want: "externalRoutes.google.apiKey"},
		{envKey: "EXTERNALROUTES_RATELIMITPERSECOND", want: "externalRoutes.rateLimitPerSecond"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_AppliesNavigationDefaults(t *testing.T) {
	dir := t.TempDir()
	content := []byte("env:\n  env: test\nhttp:\n  port: 9090\nnavigation:\n  walkingSpeedMps: 1.2\nexternalRoutes:\n  timeout: 3s\n")
	if err := os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("test")
	if err != nil {
		t.Fatalf("LoadWithEnv() error = %v", err)
	}
	applyDefaults(cfg)

	if cfg.HTTP.Port != 9090 {
		t.Fatalf("HTTP.Port = %d, want 9090", cfg.HTTP.Port)
	}
	if cfg.Navigation.WalkingSpeedMps != 1.2 {
		t.Fatalf("WalkingSpeedMps = %v, want 1.2", cfg.Navigation.WalkingSpeedMps)
	}
	if cfg.Navigation.IndoorSpeedMps != defaultIndoorSpeedMps {
		t.Fatalf("IndoorSpeedMps = %v, want %v", cfg.Navigation.IndoorSpeedMps, defaultIndoorSpeedMps)
	}
	if cfg.Navigation.CurrentShopRadiusMeters != defaultCurrentShopRadiusMeters {
		t.Fatalf("CurrentShopRadiusMeters = %v, want %v", cfg.Navigation.CurrentShopRadiusMeters, defaultCurrentShopRadiusMeters)
	}
	if cfg.ExternalRoutes.Timeout != 3*time.Second {
		t.Fatalf("ExternalRoutes.Timeout = %v, want 3s", cfg.ExternalRoutes.Timeout)
	}
	if cfg.ExternalRoutes.CacheTTL != defaultExternalRouteCacheTTL {
		t.Fatalf("ExternalRoutes.CacheTTL = %v, want %v", cfg.ExternalRoutes.CacheTTL, defaultExternalRouteCacheTTL)
	}
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := LoadWithEnv[Config]("absent"); err == nil {
		t.Fatal("LoadWithEnv() expected error for missing file")
	}
}
