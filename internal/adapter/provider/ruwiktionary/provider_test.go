package ruwiktionary

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/heartmarshall/padezh/internal/adapter/provider/httpfetch"
	"github.com/heartmarshall/padezh/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestProvider(t *testing.T, h http.HandlerFunc, timeout time.Duration) *Provider {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	client := httpfetch.New(httpfetch.Options{Timeout: timeout}, nil, newTestLogger())
	return NewProviderWithURL(srv.URL+"/", client, newTestLogger())
}

func TestProvider_FetchDeclension_Success(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/rest_v1/page/html/стол" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "text/html" {
			t.Errorf("Accept = %q, want text/html", got)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(stolHTML))
	}, time.Second)

	d, err := p.FetchDeclension(context.Background(), "стол")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d == nil {
		t.Fatal("expected non-nil declension")
	}
	if got := d.Form(domain.NumberPlural, domain.CaseGenitive); got != "столов" {
		t.Errorf("plural genitive = %q, want столов", got)
	}
	if d.SourceURL != PageURL("стол") {
		t.Errorf("SourceURL = %q, want %q", d.SourceURL, PageURL("стол"))
	}
	if d.Origin != domain.OriginRuWiktionary {
		t.Errorf("Origin = %q", d.Origin)
	}
}

func TestProvider_FetchDeclension_NotFound(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, time.Second)

	d, err := p.FetchDeclension(context.Background(), "xyzabc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != nil {
		t.Fatalf("expected nil declension, got %+v", d)
	}
}

func TestProvider_FetchDeclension_NoTable(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>Нет таблицы</p></body></html>"))
	}, time.Second)

	d, err := p.FetchDeclension(context.Background(), "стол")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != nil {
		t.Fatalf("expected nil declension, got %+v", d)
	}
}

func TestProvider_FetchDeclension_ServerError(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}, time.Second)

	d, err := p.FetchDeclension(context.Background(), "стол")
	if err == nil {
		t.Fatal("expected error for 503")
	}
	if d != nil {
		t.Fatalf("expected nil declension, got %+v", d)
	}
}

func TestProvider_FetchDeclension_Timeout(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	t.Cleanup(func() { close(block) })

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}, 50*time.Millisecond)

	start := time.Now()
	d, err := p.FetchDeclension(context.Background(), "стол")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if d != nil {
		t.Fatal("expected nil declension on timeout")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("fetch took %v, timeout not enforced", elapsed)
	}
}
