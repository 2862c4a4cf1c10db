package config

import (
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Decode(t *testing.T) {
	const data = `
[App]
Host = "0.0.0.0"
Port = 8080
SiteURL = "https://example.com/"

[Backend]
URL = "https://api.example.com/api/"
Timeout = "3s"
LogRequests = true

[Listing]
MountTTL = "10m"
`
	var cfg Config
	_, err := toml.Decode(data, &cfg)
	require.NoError(t, err)
	cfg.Normalize()

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "https://example.com", cfg.App.SiteURL)
	assert.Equal(t, "https://api.example.com/api", cfg.Backend.URL)
	assert.Equal(t, "https://api.example.com/api", cfg.Backend.AssetsURL)
	assert.Equal(t, 3*time.Second, cfg.Backend.Timeout.Duration)
	assert.True(t, cfg.Backend.LogRequests)
	assert.Equal(t, 10*time.Minute, cfg.Listing.MountTTL.Duration)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Defaults(t *testing.T) {
	var cfg Config
	cfg.Normalize()

	assert.Equal(t, 3000, cfg.App.Port)
	assert.Equal(t, "http://localhost:3000", cfg.App.SiteURL)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout.Duration)
	assert.Equal(t, 30*time.Minute, cfg.Listing.MountTTL.Duration)
}

func TestConfig_Validate(t *testing.T) {
	var cfg Config
	cfg.Normalize()
	assert.Error(t, cfg.Validate(), "backend URL is required")

	cfg.Backend.URL = "not a url"
	cfg.Normalize()
	assert.Error(t, cfg.Validate())

	cfg.Backend.URL = "http://cms.local/api"
	cfg.Backend.AssetsURL = ""
	cfg.Normalize()
	assert.NoError(t, cfg.Validate())
}
