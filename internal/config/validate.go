package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Sources.validate(); err != nil {
		return fmt.Errorf("sources: %w", err)
	}

	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must be >= 0 (got %s)", c.Cache.TTL)
	}
	if c.Cache.MaxEntries < 0 {
		return fmt.Errorf("cache.max_entries must be >= 0 (got %d)", c.Cache.MaxEntries)
	}

	if c.Resolver.Concurrency < 1 {
		return fmt.Errorf("resolver.concurrency must be >= 1 (got %d)", c.Resolver.Concurrency)
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (s *SourcesConfig) validate() error {
	if s.RateLimitPerSec < 0 {
		return fmt.Errorf("rate_limit_per_sec must be >= 0 (got %v)", s.RateLimitPerSec)
	}
	if s.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be > 0 (got %d)", s.MaxBodyBytes)
	}

	if !s.RuWiktionary.Disabled {
		if err := validateBaseURL(s.RuWiktionary.BaseURL); err != nil {
			return fmt.Errorf("ru_wiktionary.base_url: %w", err)
		}
		if s.RuWiktionary.Timeout <= 0 {
			return fmt.Errorf("ru_wiktionary.timeout must be > 0 (got %s)", s.RuWiktionary.Timeout)
		}
	}
	if !s.EnWiktionary.Disabled {
		if err := validateBaseURL(s.EnWiktionary.BaseURL); err != nil {
			return fmt.Errorf("en_wiktionary.base_url: %w", err)
		}
		if s.EnWiktionary.Timeout <= 0 {
			return fmt.Errorf("en_wiktionary.timeout must be > 0 (got %s)", s.EnWiktionary.Timeout)
		}
	}

	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("host is empty (got %q)", raw)
	}
	return nil
}
