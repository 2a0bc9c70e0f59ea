package ruwiktionary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/heartmarshall/padezh/internal/adapter/provider/httpfetch"
	"github.com/heartmarshall/padezh/internal/domain"
)

const defaultBaseURL = "https://ru.wiktionary.org"

// Provider fetches declension tables from ru.wiktionary's REST HTML endpoint.
type Provider struct {
	baseURL string
	client  *httpfetch.Client
	log     *slog.Logger
}

// NewProvider creates a Provider for the public ru.wiktionary site.
func NewProvider(client *httpfetch.Client, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, client, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, client *httpfetch.Client, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		log:     logger.With("adapter", "ruwiktionary"),
	}
}

// FetchDeclension fetches and parses the page for word.
// Returns nil, nil if the page does not exist or carries no usable table.
func (p *Provider) FetchDeclension(ctx context.Context, word string) (*domain.Declension, error) {
	reqURL := p.baseURL + "/api/rest_v1/page/html/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "ruwiktionary request", slog.String("word", word))

	body, err := p.client.Get(ctx, reqURL, "text/html")
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ruwiktionary: fetch %q: %w", word, err)
	}

	d, err := ParseHTML(word, body)
	if err != nil {
		return nil, fmt.Errorf("ruwiktionary: parse %q: %w", word, err)
	}
	if d == nil {
		p.log.DebugContext(ctx, "ruwiktionary no declension table", slog.String("word", word))
		return nil, nil
	}

	d.SourceURL = PageURL(word)

	p.log.DebugContext(ctx, "ruwiktionary response",
		slog.String("word", word),
		slog.Int("singular", d.Forms.Singular.PresentCount()),
		slog.Int("plural", d.Forms.Plural.PresentCount()),
	)

	return d, nil
}

// PageURL returns the human-facing article URL for word.
func PageURL(word string) string {
	return defaultBaseURL + "/wiki/" + url.PathEscape(word)
}
