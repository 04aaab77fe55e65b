// Package config wraps viper with nil-safe accessors and the apidex
// defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. APIDEX_SERVER_PORT.
const EnvPrefix = "APIDEX"

// Config is a read-only view over a viper instance. The zero value and a
// Config built from a nil viper return zero values for every key.
type Config struct {
	v *viper.Viper
}

// New wraps v.
func New(v *viper.Viper) *Config {
	return &Config{v: v}
}

// Defaults lists every known key with its default value.
func Defaults() map[string]any {
	return map[string]any{
		"server.host":                "0.0.0.0",
		"server.port":                "8080",
		"server.read_timeout":        "15s",
		"server.write_timeout":       "15s",
		"server.idle_timeout":        "60s",
		"server.shutdown_timeout":    "10s",
		"server.rate_limit.enabled":  true,
		"server.rate_limit.requests": 120,
		"server.rate_limit.window":   "1m",
		"catalog.path":               "",
		"catalog.strict":             false,
		"catalog.locale":             "en",
		"catalog.featured":           6,
		"catalog.related_limit":      3,
		"cache.ttl":                  "5m",
		"cache.cleanup":              "10m",
		"log.level":                  "info",
	}
}

// Load reads the YAML file at path on top of the defaults and environment
// overrides. An empty path skips the file; a missing one is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, val := range Defaults() {
		v.SetDefault(key, val)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}
	return New(v), nil
}

// Viper exposes the underlying instance for flag binding.
func (c *Config) Viper() *viper.Viper {
	if c == nil {
		return nil
	}
	return c.v
}

// GetString returns the value of key as a string.
func (c *Config) GetString(key string) string {
	if c == nil || c.v == nil {
		return ""
	}
	return c.v.GetString(key)
}

// GetInt returns the value of key as an int.
func (c *Config) GetInt(key string) int {
	if c == nil || c.v == nil {
		return 0
	}
	return c.v.GetInt(key)
}

// GetBool returns the value of key as a bool.
func (c *Config) GetBool(key string) bool {
	if c == nil || c.v == nil {
		return false
	}
	return c.v.GetBool(key)
}

// GetDuration returns the value of key as a duration.
func (c *Config) GetDuration(key string) time.Duration {
	if c == nil || c.v == nil {
		return 0
	}
	return c.v.GetDuration(key)
}

// IsSet reports whether key has a value from any source.
func (c *Config) IsSet(key string) bool {
	if c == nil || c.v == nil {
		return false
	}
	return c.v.IsSet(key)
}

// Sub returns the subtree under key. Missing keys give an empty Config,
// never nil.
func (c *Config) Sub(key string) *Config {
	if c == nil || c.v == nil {
		return &Config{}
	}
	return &Config{v: c.v.Sub(key)}
}

// Unmarshal decodes the whole config into target using mapstructure tags.
func (c *Config) Unmarshal(target any) error {
	if c == nil || c.v == nil {
		return nil
	}
	return c.v.Unmarshal(target)
}

// Addr returns host:port for the HTTP server.
func (c *Config) Addr() string {
	host, port := c.GetString("server.host"), c.GetString("server.port")
	if host == "" && port == "" {
		return "0.0.0.0:8080"
	}
	return host + ":" + port
}
