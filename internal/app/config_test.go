package app

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("PORT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Fatalf("Log = %+v, want info/json", cfg.Log)
	}
	if cfg.Session.TTL != 30*time.Minute {
		t.Fatalf("Session.TTL = %s, want 30m", cfg.Session.TTL)
	}
	if cfg.Session.Cookie != "pubguide_session" {
		t.Fatalf("Session.Cookie = %q", cfg.Session.Cookie)
	}
	if got := cfg.ListenAddr(); got != ":8080" {
		t.Fatalf("ListenAddr() = %q, want :8080", got)
	}
}

func TestLoadConfigHonoursPlainPort(t *testing.T) {
	viper.Reset()
	t.Setenv("PORT", "9000")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Port != "9000" {
		t.Fatalf("Port = %q, want 9000", cfg.Port)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	viper.Reset()
	BindEnv()
	t.Setenv("PUBGUIDE_LOG_LEVEL", "debug")
	t.Setenv("PUBGUIDE_SESSION_TTL", "5m")
	t.Setenv("PUBGUIDE_PORT", "7070")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Session.TTL != 5*time.Minute {
		t.Fatalf("Session.TTL = %s, want 5m", cfg.Session.TTL)
	}
	if cfg.Port != "7070" {
		t.Fatalf("Port = %q, want 7070", cfg.Port)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Port:    "8080",
		Log:     LogConfig{Level: "info", Format: "json"},
		Session: SessionConfig{Cookie: "sid", TTL: time.Minute},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	tests := map[string]func(c *Config){
		"no port":      func(c *Config) { c.Port = "" },
		"bad level":    func(c *Config) { c.Log.Level = "loud" },
		"bad format":   func(c *Config) { c.Log.Format = "xml" },
		"no cookie":    func(c *Config) { c.Session.Cookie = "" },
		"zero ttl":     func(c *Config) { c.Session.TTL = 0 },
		"negative max": func(c *Config) { c.Session.Max = -1 },
	}
	for name, mutate := range tests {
		c := valid
		mutate(&c)
		if err := c.Validate(); err == nil {
			t.Fatalf("%s: Validate() expected error", name)
		}
	}
}
