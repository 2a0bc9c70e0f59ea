// Package httpfetch is the outbound HTTP client shared by the dictionary
// source adapters: bounded timeouts, a fixed User-Agent, an optional
// process-wide rate limit and a response size cap.
package httpfetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/padezh/internal/domain"
)

const (
	defaultTimeout      = 8 * time.Second
	defaultUserAgent    = "padezh/1.0"
	defaultMaxBodyBytes = 4 << 20
)

// Options configures a Client. Zero values select the defaults; a zero
// RatePerSec disables rate limiting.
type Options struct {
	Timeout      time.Duration
	UserAgent    string
	RatePerSec   float64
	MaxBodyBytes int64
}

// Client performs GET requests against upstream sources.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
	maxBody    int64
	log        *slog.Logger
}

// New creates a Client. The limiter may be shared between clients so that
// all sources draw from the same budget; pass nil to use opts.RatePerSec.
func New(opts Options, limiter *rate.Limiter, logger *slog.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}
	if limiter == nil {
		limiter = NewLimiter(opts.RatePerSec)
	}

	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		limiter:    limiter,
		userAgent:  opts.UserAgent,
		maxBody:    opts.MaxBodyBytes,
		log:        logger.With("adapter", "httpfetch"),
	}
}

// NewLimiter returns a limiter allowing perSec requests per second with a
// burst of one. Zero or negative perSec means unlimited.
func NewLimiter(perSec float64) *rate.Limiter {
	if perSec <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(perSec), 1)
}

// Get fetches url and returns the response body. A 404 yields
// domain.ErrNotFound; any other non-200 status, transport failure or
// oversized body yields an error wrapping domain.ErrUnavailable. Context
// cancellation is returned as the context's error.
func (c *Client) Get(ctx context.Context, url, accept string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("httpfetch: rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("httpfetch: create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("httpfetch: %w: %w", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "upstream response",
		slog.String("url", url),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("httpfetch: %w: unexpected status %d", domain.ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("httpfetch: %w: read body: %w", domain.ErrUnavailable, err)
	}
	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("httpfetch: %w: body exceeds %d bytes", domain.ErrUnavailable, c.maxBody)
	}

	return body, nil
}

