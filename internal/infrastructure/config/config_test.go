package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "simplepos-printing", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 15*time.Minute, cfg.Cache.PlanTTL)
	assert.Equal(t, time.Hour, cfg.Cache.ArtifactTTL)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Renderer.Timeout)
	assert.Equal(t, "A4", cfg.Defaults.Format)
	assert.Equal(t, "classic", cfg.Defaults.Style)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("SIMPLEPOS_APP_PORT", "9090")
	t.Setenv("SIMPLEPOS_DEFAULTS_FORMAT", "THERMAL_80")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "THERMAL_80", cfg.Defaults.Format)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty port", func(c *Config) { c.App.Port = "" }, true},
		{"zero plan ttl", func(c *Config) { c.Cache.PlanTTL = 0 }, true},
		{"redis enabled without host", func(c *Config) {
			c.Redis.Enabled = true
			c.Redis.Host = ""
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				App:   AppConfig{Port: "8080"},
				Cache: CacheConfig{PlanTTL: time.Minute},
				Redis: RedisConfig{Host: "localhost"},
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
