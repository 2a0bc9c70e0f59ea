// Package enwiktionary is the secondary declension source: it fetches raw
// wikitext through the MediaWiki parse API and hands it to the wikitext
// extractors.
package enwiktionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/heartmarshall/padezh/internal/adapter/provider/httpfetch"
	"github.com/heartmarshall/padezh/internal/domain"
	"github.com/heartmarshall/padezh/internal/wikitext"
)

const defaultBaseURL = "https://en.wiktionary.org"

// parseResponse is the envelope returned by action=parse&prop=wikitext.
type parseResponse struct {
	Parse *struct {
		Title    string `json:"title"`
		Wikitext struct {
			Text string `json:"*"`
		} `json:"wikitext"`
	} `json:"parse"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// Provider fetches wikitext pages from en.wiktionary.
type Provider struct {
	baseURL string
	client  *httpfetch.Client
	parser  *wikitext.Parser
	log     *slog.Logger
}

// NewProvider creates a Provider for the public en.wiktionary site.
func NewProvider(client *httpfetch.Client, parser *wikitext.Parser, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, client, parser, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, client *httpfetch.Client, parser *wikitext.Parser, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		parser:  parser,
		log:     logger.With("adapter", "enwiktionary"),
	}
}

// FetchWikitext returns the raw wikitext of the page for word.
// Returns "", nil if the page does not exist.
func (p *Provider) FetchWikitext(ctx context.Context, word string) (string, error) {
	q := url.Values{}
	q.Set("action", "parse")
	q.Set("page", word)
	q.Set("prop", "wikitext")
	q.Set("format", "json")
	q.Set("origin", "*")
	reqURL := p.baseURL + "/w/api.php?" + q.Encode()

	p.log.DebugContext(ctx, "enwiktionary request", slog.String("word", word))

	body, err := p.client.Get(ctx, reqURL, "application/json")
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("enwiktionary: fetch %q: %w", word, err)
	}

	var resp parseResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("enwiktionary: decode json: %w", err)
	}

	if resp.Error != nil {
		// The API reports a missing page as an error envelope with status 200.
		if resp.Error.Code == "missingtitle" {
			return "", nil
		}
		return "", fmt.Errorf("enwiktionary: api error %s: %s", resp.Error.Code, resp.Error.Info)
	}
	if resp.Parse == nil {
		return "", fmt.Errorf("enwiktionary: %w: response has no parse section", domain.ErrUnavailable)
	}

	return resp.Parse.Wikitext.Text, nil
}

// FetchDeclension fetches the page for word and builds a declension from it.
// Returns nil, nil if the page does not exist.
func (p *Provider) FetchDeclension(ctx context.Context, word string, meta domain.Metadata) (*domain.Declension, error) {
	wt, err := p.FetchWikitext(ctx, word)
	if err != nil {
		return nil, err
	}
	if wt == "" {
		return nil, nil
	}

	d := p.parser.Parse(word, wt, meta)
	d.SourceURL = PageURL(word)
	d.FromPrimarySource = true

	p.log.DebugContext(ctx, "enwiktionary response",
		slog.String("word", word),
		slog.Int("wikitext_bytes", len(wt)),
		slog.Int("singular", d.Forms.Singular.PresentCount()),
		slog.Int("plural", d.Forms.Plural.PresentCount()),
	)

	return d, nil
}

// PageURL returns the human-facing article URL for word.
func PageURL(word string) string {
	return defaultBaseURL + "/wiki/" + url.PathEscape(word)
}
