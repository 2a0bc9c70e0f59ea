package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Sources   SourcesConfig   `yaml:"sources"`
	Cache     CacheConfig     `yaml:"cache"`
	Resolver  ResolverConfig  `yaml:"resolver"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type,X-Request-Id"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SourcesConfig holds settings shared by the upstream dictionary sources.
type SourcesConfig struct {
	UserAgent       string  `yaml:"user_agent"         env:"SOURCES_USER_AGENT"         env-default:"padezh/1.0 (declension resolver)"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec" env:"SOURCES_RATE_LIMIT_PER_SEC" env-default:"0"`
	MaxBodyBytes    int64   `yaml:"max_body_bytes"     env:"SOURCES_MAX_BODY_BYTES"     env-default:"4194304"`

	RuWiktionary RuWiktionaryConfig `yaml:"ru_wiktionary"`
	EnWiktionary EnWiktionaryConfig `yaml:"en_wiktionary"`
}

// RuWiktionaryConfig configures the primary HTML table source.
type RuWiktionaryConfig struct {
	Disabled bool          `yaml:"disabled" env:"RU_WIKTIONARY_DISABLED"`
	BaseURL  string        `yaml:"base_url" env:"RU_WIKTIONARY_BASE_URL" env-default:"https://ru.wiktionary.org"`
	Timeout  time.Duration `yaml:"timeout"  env:"RU_WIKTIONARY_TIMEOUT"  env-default:"8s"`
}

// EnWiktionaryConfig configures the secondary wikitext source.
type EnWiktionaryConfig struct {
	Disabled bool          `yaml:"disabled" env:"EN_WIKTIONARY_DISABLED"`
	BaseURL  string        `yaml:"base_url" env:"EN_WIKTIONARY_BASE_URL" env-default:"https://en.wiktionary.org"`
	Timeout  time.Duration `yaml:"timeout"  env:"EN_WIKTIONARY_TIMEOUT"  env-default:"5s"`
}

// CacheConfig holds resolver cache settings. Zero TTL keeps entries for the
// process lifetime; zero MaxEntries means unbounded.
type CacheConfig struct {
	TTL        time.Duration `yaml:"ttl"         env:"CACHE_TTL"         env-default:"0s"`
	MaxEntries int           `yaml:"max_entries" env:"CACHE_MAX_ENTRIES" env-default:"0"`
}

// ResolverConfig holds batch resolution settings.
type ResolverConfig struct {
	Concurrency int `yaml:"concurrency" env:"RESOLVER_CONCURRENCY" env-default:"4"`
}

// RateLimitConfig holds inbound per-IP rate limiting for the REST API.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"120"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"1m"`
}

// Addr returns the host:port the server listens on.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
