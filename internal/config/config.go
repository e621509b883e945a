// Package config provides centralized configuration management for
// DomainScout. Defaults, an optional YAML file, and DOMAINSCOUT_*
// environment variables layer in that order.
package config

import (
	"time"
)

// Config represents the complete application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Store   StoreConfig   `mapstructure:"store"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Checks  ChecksConfig  `mapstructure:"checks"`
	Probes  ProbesConfig  `mapstructure:"probes"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`

	RateLimits      map[string]int `mapstructure:"rate_limits"`
	RateLimitMargin float64        `mapstructure:"rate_limit_margin"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// StoreConfig contains database configuration for libsql/Turso.
type StoreConfig struct {
	Driver    string `mapstructure:"driver"`
	Path      string `mapstructure:"path"`
	URL       string `mapstructure:"url"`
	AuthToken string `mapstructure:"auth_token"`
}

// CacheConfig contains signal cache TTL configuration.
type CacheConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	AvailableTTL time.Duration `mapstructure:"available_ttl"`
	TakenTTL     time.Duration `mapstructure:"taken_ttl"`
	ErrorTTL     time.Duration `mapstructure:"error_ttl"`
}

// ChecksConfig controls how variations are generated and scheduled.
type ChecksConfig struct {
	Suffixes    []string      `mapstructure:"suffixes"`
	Extensions  []string      `mapstructure:"extensions"`
	Workers     int           `mapstructure:"workers"`
	DomainDelay time.Duration `mapstructure:"domain_delay"`
	NameDelay   time.Duration `mapstructure:"name_delay"`
}

// ProbesConfig contains per-signal probe settings.
type ProbesConfig struct {
	DNSTimeout   time.Duration     `mapstructure:"dns_timeout"`
	WhoisTimeout time.Duration     `mapstructure:"whois_timeout"`
	HTTPTimeout  time.Duration     `mapstructure:"http_timeout"`
	WhoisServers map[string]string `mapstructure:"whois_servers"`
}

// OutputConfig controls where run artifacts are written.
type OutputConfig struct {
	Directory string `mapstructure:"directory"`
	Format    string `mapstructure:"format"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level controls the minimum log level.
	// Valid values: debug, info, warn, error
	Level string `mapstructure:"level"`
}

// Defaults returns the built-in configuration values.
func Defaults() map[string]any {
	return map[string]any{
		"server.host":             "127.0.0.1",
		"server.port":             8710,
		"server.read_timeout":     "10s",
		"server.write_timeout":    "120s",
		"server.idle_timeout":     "60s",
		"server.shutdown_timeout": "10s",

		"store.driver": "libsql",
		"store.path":   "",

		"cache.enabled":       true,
		"cache.available_ttl": "1h",
		"cache.taken_ttl":     "24h",
		"cache.error_ttl":     "10m",

		"checks.workers":      5,
		"checks.domain_delay": "500ms",
		"checks.name_delay":   "1s",

		"probes.dns_timeout":   "5s",
		"probes.whois_timeout": "10s",
		"probes.http_timeout":  "10s",

		"output.directory": ".",
		"output.format":    "table",

		"logging.level": "info",

		"rate_limit_margin": 0.8,
	}
}
