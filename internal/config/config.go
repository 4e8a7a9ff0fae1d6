// Package config loads kickview settings from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"kickview/internal/format"
	"kickview/internal/loader"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// DefaultLogFileName is created in the temp dir when no log file is set.
const DefaultLogFileName = "kickview.log"

// Config holds runtime settings.
type Config struct {
	Endpoint string `env:"KICKVIEW_ENDPOINT"`
	LogFile  string `env:"KICKVIEW_LOG_FILE"`
	Debug    bool   `env:"KICKVIEW_DEBUG" envDefault:"false"`
	Locale   string `env:"KICKVIEW_LOCALE" envDefault:"en-US"`
}

// Load parses the environment, fills defaults, and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = loader.DefaultEndpoint
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(os.TempDir(), DefaultLogFileName)
	}
	if c.Locale == "" {
		c.Locale = format.DefaultLocale
	}
}

// Validate checks that the endpoint is an absolute http(s) URL and the locale
// is a BCP 47 tag.
func (c Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("endpoint %q: %w", c.Endpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("endpoint %q: must be an absolute http(s) URL", c.Endpoint)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("locale %q: %w", c.Locale, err)
	}
	return nil
}
