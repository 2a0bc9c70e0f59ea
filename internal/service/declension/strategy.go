package declension

import (
	"context"

	"github.com/heartmarshall/padezh/internal/domain"
	"github.com/heartmarshall/padezh/internal/irregular"
)

// Strategy is one source in the resolution chain. Resolve returns nil, nil
// when the source has nothing for word.
type Strategy interface {
	Name() domain.Origin
	Resolve(ctx context.Context, word string, meta domain.Metadata) (*domain.Declension, error)
}

type primarySource interface {
	FetchDeclension(ctx context.Context, word string) (*domain.Declension, error)
}

type secondarySource interface {
	FetchDeclension(ctx context.Context, word string, meta domain.Metadata) (*domain.Declension, error)
}

type ruleGenerator interface {
	Generate(word string, meta domain.Metadata) *domain.Declension
}

// Primary wraps the ru.wiktionary HTML source. Metadata is not consulted.
func Primary(src primarySource) Strategy { return primary{src: src} }

type primary struct{ src primarySource }

func (primary) Name() domain.Origin { return domain.OriginRuWiktionary }

func (p primary) Resolve(ctx context.Context, word string, _ domain.Metadata) (*domain.Declension, error) {
	return p.src.FetchDeclension(ctx, word)
}

// Irregular serves the curated table of nouns whose paradigms no rule covers.
func Irregular() Strategy { return irregularTable{} }

type irregularTable struct{}

func (irregularTable) Name() domain.Origin { return domain.OriginIrregular }

func (irregularTable) Resolve(_ context.Context, word string, _ domain.Metadata) (*domain.Declension, error) {
	d, ok := irregular.Lookup(word)
	if !ok {
		return nil, nil
	}
	return d, nil
}

// Secondary wraps the en.wiktionary wikitext source.
func Secondary(src secondarySource) Strategy { return secondary{src: src} }

type secondary struct{ src secondarySource }

func (secondary) Name() domain.Origin { return domain.OriginEnWiktionary }

func (s secondary) Resolve(ctx context.Context, word string, meta domain.Metadata) (*domain.Declension, error) {
	return s.src.FetchDeclension(ctx, word, meta)
}

// Rules is the last resort: suffix rules that always produce a candidate.
func Rules(gen ruleGenerator) Strategy { return ruleBased{gen: gen} }

type ruleBased struct{ gen ruleGenerator }

func (ruleBased) Name() domain.Origin { return domain.OriginRules }

func (r ruleBased) Resolve(_ context.Context, word string, meta domain.Metadata) (*domain.Declension, error) {
	return r.gen.Generate(word, meta), nil
}
