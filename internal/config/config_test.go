package config

import "testing"

func baseConfig() Config {
	return Config{
		Matching: MatchingConfig{
			GroqAPIKey:      "gsk_test",
			DirectoryURL:    "https://example.supabase.co",
			DirectoryAPIKey: "anon-key",
		},
	}
}

func TestLiveBackend_AllKeysPresent(t *testing.T) {
	if !baseConfig().LiveBackend() {
		t.Fatalf("expected live backend with all keys present")
	}
}

func TestLiveBackend_AnyKeyMissingForcesFallback(t *testing.T) {
	clear := []func(*Config){
		func(c *Config) { c.Matching.GroqAPIKey = "" },
		func(c *Config) { c.Matching.DirectoryURL = "" },
		func(c *Config) { c.Matching.DirectoryAPIKey = "" },
	}
	for i, f := range clear {
		cfg := baseConfig()
		f(&cfg)
		if cfg.LiveBackend() {
			t.Fatalf("case %d: expected fallback when a key is missing", i)
		}
	}
}

func TestLiveBackend_DemoFlagWinsOverKeys(t *testing.T) {
	cfg := baseConfig()
	cfg.Matching.ForceDemo = true
	if cfg.LiveBackend() {
		t.Fatalf("expected forced demo mode to select fallback")
	}
}
