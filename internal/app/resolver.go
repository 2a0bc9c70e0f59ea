package app

import (
	"log/slog"

	"github.com/heartmarshall/padezh/internal/adapter/cache"
	"github.com/heartmarshall/padezh/internal/adapter/provider/enwiktionary"
	"github.com/heartmarshall/padezh/internal/adapter/provider/httpfetch"
	"github.com/heartmarshall/padezh/internal/adapter/provider/ruwiktionary"
	"github.com/heartmarshall/padezh/internal/config"
	"github.com/heartmarshall/padezh/internal/rules"
	"github.com/heartmarshall/padezh/internal/service/declension"
	"github.com/heartmarshall/padezh/internal/wikitext"
)

// NewResolver wires the declension service from configuration: ru.wiktionary,
// the irregular table, en.wiktionary and the suffix rules, in that order.
// Disabled sources are left out of the chain. Both sources share one
// outbound rate limiter.
func NewResolver(cfg *config.Config, logger *slog.Logger) *declension.Service {
	limiter := httpfetch.NewLimiter(cfg.Sources.RateLimitPerSec)
	gen := rules.NewGenerator()

	var strategies []declension.Strategy
	if rc := cfg.Sources.RuWiktionary; !rc.Disabled {
		client := httpfetch.New(httpfetch.Options{
			Timeout:      rc.Timeout,
			UserAgent:    cfg.Sources.UserAgent,
			MaxBodyBytes: cfg.Sources.MaxBodyBytes,
		}, limiter, logger)
		strategies = append(strategies, declension.Primary(ruwiktionary.NewProviderWithURL(rc.BaseURL, client, logger)))
	}

	strategies = append(strategies, declension.Irregular())

	if ec := cfg.Sources.EnWiktionary; !ec.Disabled {
		client := httpfetch.New(httpfetch.Options{
			Timeout:      ec.Timeout,
			UserAgent:    cfg.Sources.UserAgent,
			MaxBodyBytes: cfg.Sources.MaxBodyBytes,
		}, limiter, logger)
		parser := wikitext.NewParser(gen)
		strategies = append(strategies, declension.Secondary(enwiktionary.NewProviderWithURL(ec.BaseURL, client, parser, logger)))
	}

	strategies = append(strategies, declension.Rules(gen))

	names := make([]string, len(strategies))
	for i, st := range strategies {
		names[i] = st.Name().String()
	}
	logger.Info("declension resolver configured",
		slog.Any("sources", names),
		slog.Duration("cache_ttl", cfg.Cache.TTL),
		slog.Int("cache_max_entries", cfg.Cache.MaxEntries),
	)

	return declension.NewService(logger, cache.New(cfg.Cache.MaxEntries, cfg.Cache.TTL), strategies...)
}

