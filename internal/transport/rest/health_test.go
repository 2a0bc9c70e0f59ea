package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heartmarshall/padezh/internal/adapter/cache"
	"github.com/heartmarshall/padezh/internal/domain"
	"github.com/heartmarshall/padezh/internal/service/declension"
)

type statsProviderMock struct {
	stats declension.Stats
}

func (m *statsProviderMock) Stats() declension.Stats {
	return m.stats
}

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&statsProviderMock{}, "test-version")

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	rec := httptest.NewRecorder()

	h.Live(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}

	if resp.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}

	if resp.Resolver != nil {
		t.Error("liveness probe must not report resolver stats")
	}
}

func TestHealth_ReportsResolverStats(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&statsProviderMock{stats: declension.Stats{
		Cache: cache.Stats{Entries: 3, Hits: 7, Misses: 4},
		Resolved: map[domain.Origin]int64{
			domain.OriginRuWiktionary: 2,
			domain.OriginIrregular:    1,
		},
	}}, "v1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Version != "v1.0.0" {
		t.Errorf("expected version 'v1.0.0', got %q", resp.Version)
	}
	if resp.Resolver == nil {
		t.Fatal("expected resolver stats in response")
	}
	if resp.Resolver.Cache.Entries != 3 || resp.Resolver.Cache.Hits != 7 {
		t.Errorf("unexpected cache stats: %+v", resp.Resolver.Cache)
	}
	if got := resp.Resolver.Resolved[domain.OriginRuWiktionary]; got != 2 {
		t.Errorf("expected 2 ru-wiktionary resolutions, got %d", got)
	}
}
