package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SARVAM_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ORS_API_KEY", "")
	t.Setenv("PORT", "")
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Sarvam.BaseURL != "https://api.sarvam.ai" {
		t.Fatalf("unexpected sarvam base url %q", cfg.Sarvam.BaseURL)
	}
	if cfg.Maps.CacheTTL != 24*time.Hour {
		t.Fatalf("unexpected cache ttl %v", cfg.Maps.CacheTTL)
	}
	want := []string{"compare ", " vs ", " versus "}
	if !reflect.DeepEqual(cfg.Guide.CompareTriggers, want) {
		t.Fatalf("unexpected triggers %q", cfg.Guide.CompareTriggers)
	}
	missing := cfg.Missing()
	if len(missing) != 3 {
		t.Fatalf("expected three missing keys, got %v", missing)
	}
}

func TestLoadProviderKeysFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SARVAM_API_KEY", "sk-sarvam")
	t.Setenv("GEMINI_API_KEY", "gm-key")
	t.Setenv("ORS_API_KEY", "ors-key")
	t.Setenv("PORT", "9090")
	t.Setenv("GUIDE_LOGGING_LEVEL", "debug")
	t.Setenv("GUIDE_GEMINI_BASE_URL", "http://mirror.local")
	t.Setenv("GUIDE_MAPS_GOOGLE_BASE_URL", "http://gmirror.local")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sarvam.APIKey != "sk-sarvam" || cfg.Gemini.APIKey != "gm-key" || cfg.Maps.ORSKey != "ors-key" {
		t.Fatalf("provider keys not bound: %+v", cfg)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("expected PORT to override, got %q", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected prefixed env override, got %q", cfg.Logging.Level)
	}
	if cfg.Gemini.BaseURL != "http://mirror.local" || cfg.Maps.GoogleBaseURL != "http://gmirror.local" {
		t.Fatalf("base urls not overridable: gemini=%q google=%q", cfg.Gemini.BaseURL, cfg.Maps.GoogleBaseURL)
	}
	if len(cfg.Missing()) != 0 {
		t.Fatalf("expected nothing missing, got %v", cfg.Missing())
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("SARVAM_API_KEY", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "guide.yaml")
	body := "maps:\n  enabled: false\nguide:\n  compare_triggers:\n    - \"compare \"\n    - \" or \"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Maps.Enabled {
		t.Fatal("expected maps disabled from file")
	}
	if len(cfg.Guide.CompareTriggers) != 2 || cfg.Guide.CompareTriggers[1] != " or " {
		t.Fatalf("unexpected triggers %q", cfg.Guide.CompareTriggers)
	}
	for _, k := range cfg.Missing() {
		if k == "ORS_API_KEY" {
			t.Fatal("ORS key should not be reported when maps are disabled")
		}
	}
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.yaml")
	if err := os.WriteFile(path, []byte("maps: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}
