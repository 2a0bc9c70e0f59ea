package declension

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/padezh/internal/domain"
)

// Resolve returns the declension of word. A cached result is returned as the
// identical pointer, so callers must not modify it. When every source fails
// the result is an uncached placeholder with IsFallback set.
//
// The only error is ctx.Err(), returned when the caller gives up before a
// result exists.
func (s *Service) Resolve(ctx context.Context, word string, meta domain.Metadata) (*domain.Declension, error) {
	key := domain.NormalizeWord(word)

	if d, ok := s.cache.Get(key); ok {
		return d, nil
	}

	for _, st := range s.strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		d, err := st.Resolve(ctx, key, meta)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			s.log.WarnContext(ctx, "declension source failed",
				slog.String("word", key),
				slog.String("source", st.Name().String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		if d == nil {
			s.log.DebugContext(ctx, "declension source has no entry",
				slog.String("word", key),
				slog.String("source", st.Name().String()),
			)
			continue
		}
		if err := s.check(d); err != nil {
			s.log.DebugContext(ctx, "declension rejected",
				slog.String("word", key),
				slog.String("source", st.Name().String()),
				slog.String("reason", err.Error()),
			)
			continue
		}

		d.Enrich(meta)
		d.Ensure()
		s.cache.Add(key, d)
		s.count(st.Name())

		s.log.InfoContext(ctx, "declension resolved",
			slog.String("word", key),
			slog.String("source", st.Name().String()),
		)
		return d, nil
	}

	s.count(domain.OriginPlaceholder)
	s.log.WarnContext(ctx, "declension unavailable from every source",
		slog.String("word", key),
	)
	return domain.PlaceholderDeclension(key, meta), nil
}
