package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config captures all runtime configuration for the notifier. Everything is
// optional with sensible defaults so the binary runs with an empty
// environment.
type Config struct {
	App      AppConfig
	Channels ChannelConfig
}

// AppConfig contains generic application level settings.
type AppConfig struct {
	Env      string
	LogLevel string
}

// ChannelConfig selects the default dispatch channel and the sink backend
// used by each sender.
type ChannelConfig struct {
	Default      string
	EmailBackend string
	SMSBackend   string
}

// Load reads environment variables, applies defaults, validates values and
// returns a populated Config instance.
func Load() (*Config, error) {
	_ = godotenv.Load()

	ldr := &envLoader{}

	cfg := &Config{}
	cfg.App.Env = ldr.getString("APP_ENV", "development")
	cfg.App.LogLevel = ldr.getString("LOG_LEVEL", "info")

	cfg.Channels.Default = strings.ToLower(ldr.getString("DEFAULT_CHANNEL", "email"))
	cfg.Channels.EmailBackend = strings.ToLower(ldr.getString("EMAIL_BACKEND", "console"))
	cfg.Channels.SMSBackend = strings.ToLower(ldr.getString("SMS_BACKEND", "console"))

	if !knownBackend(cfg.Channels.EmailBackend) {
		ldr.addError(fmt.Sprintf("EMAIL_BACKEND %q is not supported", cfg.Channels.EmailBackend))
	}
	if !knownBackend(cfg.Channels.SMSBackend) {
		ldr.addError(fmt.Sprintf("SMS_BACKEND %q is not supported", cfg.Channels.SMSBackend))
	}

	if err := ldr.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func knownBackend(backend string) bool {
	switch backend {
	case "console", "discard":
		return true
	default:
		return false
	}
}

type envLoader struct {
	errs []string
}

func (l *envLoader) validate() error {
	if len(l.errs) == 0 {
		return nil
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(l.errs, "; "))
}

func (l *envLoader) getString(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		val = strings.TrimSpace(val)
		if val == "" {
			return def
		}
		return val
	}
	return def
}

func (l *envLoader) addError(msg string) {
	l.errs = append(l.errs, msg)
}
