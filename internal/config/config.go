// Package config loads the portfolio server settings.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ahmedsharif09/portfolio/internal/nav"
	"github.com/ahmedsharif09/portfolio/internal/relay"
)

// Config is the full server configuration.
type Config struct {
	Port        string        `koanf:"port"`
	Mode        string        `koanf:"mode"`
	PublicDir   string        `koanf:"public_dir"`
	ContentFile string        `koanf:"content_file"`
	DBPath      string        `koanf:"db_path"`
	EmailJS     EmailJSConfig `koanf:"emailjs"`
	Nav         NavConfig     `koanf:"nav"`
	Session     SessionConfig `koanf:"session"`
	Admin       AdminConfig   `koanf:"admin"`
}

// EmailJSConfig addresses the external delivery pipeline.
type EmailJSConfig struct {
	Endpoint    string `koanf:"endpoint"`
	ServiceID   string `koanf:"service_id"`
	TemplateID  string `koanf:"template_id"`
	PublicKey   string `koanf:"public_key"`
	AccessToken string `koanf:"access_token"`
}

type NavConfig struct {
	DefaultHeaderHeight float64 `koanf:"default_header_height"`
}

type SessionConfig struct {
	TTL           time.Duration `koanf:"ttl"`
	SweepInterval time.Duration `koanf:"sweep_interval"`
}

type AdminConfig struct {
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Port:      "8080",
		Mode:      "release",
		PublicDir: "public",
		EmailJS: EmailJSConfig{
			Endpoint: relay.DefaultEndpoint,
		},
		Nav: NavConfig{
			DefaultHeaderHeight: nav.DefaultHeaderHeight,
		},
		Session: SessionConfig{
			TTL:           30 * time.Minute,
			SweepInterval: 5 * time.Minute,
		},
	}
}

// Load reads the YAML file at path if it exists, then overlays PORTFOLIO_*
// environment variables. PORTFOLIO_EMAILJS__SERVICE_ID maps to
// emailjs.service_id.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("PORTFOLIO_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "PORTFOLIO_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// PORT is what most hosts inject.
	if port := os.Getenv("PORT"); port != "" && !k.Exists("port") {
		k.Set("port", port)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

var validModes = map[string]bool{
	"debug":   true,
	"release": true,
	"test":    true,
}

// Validate checks values the server cannot start without. Missing EmailJS
// identifiers are not an error: submissions then fail into the error state.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid mode %q: must be one of debug, release, test", c.Mode)
	}
	if c.Nav.DefaultHeaderHeight < 0 {
		return fmt.Errorf("nav.default_header_height must be non-negative")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("session.sweep_interval must be positive")
	}
	return nil
}

// RelayConfig converts the EmailJS settings for the relay client.
func (c *Config) RelayConfig() relay.Config {
	return relay.Config{
		Endpoint:    c.EmailJS.Endpoint,
		ServiceID:   c.EmailJS.ServiceID,
		TemplateID:  c.EmailJS.TemplateID,
		PublicKey:   c.EmailJS.PublicKey,
		AccessToken: c.EmailJS.AccessToken,
	}
}

// RelayConfigured reports whether all three routing identifiers are set.
func (c *Config) RelayConfigured() bool {
	return c.EmailJS.ServiceID != "" && c.EmailJS.TemplateID != "" && c.EmailJS.PublicKey != ""
}
