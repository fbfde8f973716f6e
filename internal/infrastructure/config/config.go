package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Log      LogConfig
	HTTP     HTTPConfig
	Cache    CacheConfig
	Redis    RedisConfig
	Renderer RendererConfig
	Defaults DefaultsConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// CacheConfig holds render cache configuration
type CacheConfig struct {
	// PlanTTL bounds how long a cached layout plan is retained
	PlanTTL time.Duration
	// ArtifactTTL bounds how long a rendered artifact is retained in Redis
	ArtifactTTL time.Duration
}

// RedisConfig holds the optional Redis artifact cache settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// RendererConfig holds PDF renderer settings
type RendererConfig struct {
	Timeout   time.Duration
	RemoteURL string
	NoSandbox bool
}

// DefaultsConfig holds the caller-overridable format and style defaults
type DefaultsConfig struct {
	Format string
	Style  string
}

// Load reads configuration from config files and environment variables.
// Environment variables use the SIMPLEPOS_ prefix with underscores, e.g.
// SIMPLEPOS_APP_PORT=8080.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("SIMPLEPOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Config file is optional; environment and defaults suffice.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers the default value for every key
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "simplepos-printing")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("http.readtimeout", 15*time.Second)
	v.SetDefault("http.writetimeout", 30*time.Second)
	v.SetDefault("http.idletimeout", 60*time.Second)

	v.SetDefault("cache.planttl", 15*time.Minute)
	v.SetDefault("cache.artifactttl", time.Hour)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("renderer.timeout", 30*time.Second)
	v.SetDefault("renderer.remoteurl", "")
	v.SetDefault("renderer.nosandbox", false)

	v.SetDefault("defaults.format", "A4")
	v.SetDefault("defaults.style", "classic")
}

// Validate checks configuration consistency
func (c *Config) Validate() error {
	if c.App.Port == "" {
		return fmt.Errorf("app.port must not be empty")
	}
	if c.Cache.PlanTTL <= 0 {
		return fmt.Errorf("cache.planttl must be positive")
	}
	if c.Redis.Enabled && c.Redis.Host == "" {
		return fmt.Errorf("redis.host must not be empty when redis is enabled")
	}
	return nil
}
