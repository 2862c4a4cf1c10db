package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	App struct {
		Host string
		Port int `validate:"gt=0,lt=65536"`
		// SiteURL is the public origin used in share links.
		SiteURL string `validate:"required,url"`
	}
	Backend struct {
		URL string `validate:"required,url"`
		// AssetsURL is the origin of stored images, URL when empty.
		AssetsURL   string `validate:"required,url"`
		Timeout     Duration
		LogRequests bool
	}
	Listing struct {
		MountTTL Duration
	}
}

// Duration decodes TOML strings like "30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Normalize fills in defaults for values the file left out.
func (c *Config) Normalize() {
	if c.App.Port == 0 {
		c.App.Port = 3000
	}
	if c.App.SiteURL == "" {
		c.App.SiteURL = "http://localhost:3000"
	}
	c.App.SiteURL = strings.TrimRight(c.App.SiteURL, "/")
	c.Backend.URL = strings.TrimRight(c.Backend.URL, "/")
	if c.Backend.AssetsURL == "" {
		c.Backend.AssetsURL = c.Backend.URL
	}
	if c.Backend.Timeout.Duration == 0 {
		c.Backend.Timeout.Duration = 10 * time.Second
	}
	if c.Listing.MountTTL.Duration == 0 {
		c.Listing.MountTTL.Duration = 30 * time.Minute
	}
}

// Validate checks a normalized config.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
