package declension

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/padezh/internal/domain"
)

// Request is one word of a batch together with its optional metadata.
type Request struct {
	Word string
	Meta domain.Metadata
}

// ResolveMany resolves reqs with at most concurrency words in flight. The
// results are in request order. A cancelled ctx stops the batch and its error
// is returned.
func (s *Service) ResolveMany(ctx context.Context, reqs []Request, concurrency int) ([]*domain.Declension, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	out := make([]*domain.Declension, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, req := range reqs {
		g.Go(func() error {
			d, err := s.Resolve(gctx, req.Word, req.Meta)
			if err != nil {
				return err
			}
			out[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
