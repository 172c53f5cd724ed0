package app

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix namespaces environment overrides, e.g. PUBGUIDE_LOG_LEVEL.
const EnvPrefix = "PUBGUIDE"

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SessionConfig controls reader sessions.
type SessionConfig struct {
	Cookie string        `mapstructure:"cookie"`
	TTL    time.Duration `mapstructure:"ttl"`
	Max    int           `mapstructure:"max"`
}

// ExportConfig controls the catalog export.
type ExportConfig struct {
	DSN string `mapstructure:"dsn"`
}

// Config contains runtime configuration. Values come from defaults, an
// optional .pubguide.yaml, PUBGUIDE_* environment variables and flags.
type Config struct {
	Addr    string        `mapstructure:"addr"`
	Port    string        `mapstructure:"port"`
	Log     LogConfig     `mapstructure:"log"`
	Session SessionConfig `mapstructure:"session"`
	Export  ExportConfig  `mapstructure:"export"`
}

// BindEnv makes viper read PUBGUIDE_* variables, mapping nested keys such
// as log.level to PUBGUIDE_LOG_LEVEL.
func BindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// LoadConfig reads configuration from viper, applying defaults for values
// not set elsewhere. The plain PORT variable used by hosting platforms is
// honoured as the port default.
func LoadConfig() (Config, error) {
	viper.SetDefault("addr", "")
	viper.SetDefault("port", defaultEnv("PORT", "8080"))
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
	viper.SetDefault("session.cookie", "pubguide_session")
	viper.SetDefault("session.ttl", 30*time.Minute)
	viper.SetDefault("session.max", 10000)
	viper.SetDefault("export.dsn", "")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("missing port")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format %q: want json or console", c.Log.Format)
	}
	if c.Session.Cookie == "" {
		return fmt.Errorf("missing session.cookie")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive, got %s", c.Session.TTL)
	}
	if c.Session.Max < 0 {
		return fmt.Errorf("session.max must not be negative")
	}
	return nil
}

// ListenAddr is the address passed to http.Server.
func (c Config) ListenAddr() string {
	return net.JoinHostPort(c.Addr, c.Port)
}

func defaultEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
