// Package declension resolves a Russian noun to its full case paradigm by
// walking an ordered chain of sources and keeping the first result that
// passes validation.
package declension

import (
	"log/slog"
	"sync/atomic"

	"github.com/heartmarshall/padezh/internal/adapter/cache"
	"github.com/heartmarshall/padezh/internal/domain"
	"github.com/heartmarshall/padezh/internal/validate"
)

type declensionCache interface {
	Get(word string) (*domain.Declension, bool)
	Add(word string, d *domain.Declension)
	Purge()
	Stats() cache.Stats
}

// Stats reports cache usage and how many words each origin resolved.
type Stats struct {
	Cache    cache.Stats             `json:"cache"`
	Resolved map[domain.Origin]int64 `json:"resolved"`
}

// Service is the resolver. It is safe for concurrent use.
type Service struct {
	log        *slog.Logger
	cache      declensionCache
	strategies []Strategy
	check      func(*domain.Declension) error
	resolved   map[domain.Origin]*atomic.Int64
}

// NewService creates a resolver that tries strategies in the given order.
func NewService(logger *slog.Logger, c declensionCache, strategies ...Strategy) *Service {
	resolved := map[domain.Origin]*atomic.Int64{
		domain.OriginPlaceholder: new(atomic.Int64),
	}
	for _, st := range strategies {
		resolved[st.Name()] = new(atomic.Int64)
	}

	return &Service{
		log:        logger.With("service", "declension"),
		cache:      c,
		strategies: strategies,
		check:      validate.Check,
		resolved:   resolved,
	}
}

// ClearCache drops every cached declension.
func (s *Service) ClearCache() {
	s.cache.Purge()
	s.log.Info("declension cache cleared")
}

// Stats returns a snapshot of the resolver counters.
func (s *Service) Stats() Stats {
	out := Stats{
		Cache:    s.cache.Stats(),
		Resolved: make(map[domain.Origin]int64, len(s.resolved)),
	}
	for origin, n := range s.resolved {
		out.Resolved[origin] = n.Load()
	}
	return out
}

func (s *Service) count(origin domain.Origin) {
	if n, ok := s.resolved[origin]; ok {
		n.Add(1)
	}
}
