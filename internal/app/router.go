package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/padezh/internal/config"
	"github.com/heartmarshall/padezh/internal/service/declension"
	"github.com/heartmarshall/padezh/internal/transport/middleware"
	"github.com/heartmarshall/padezh/internal/transport/rest"
)

// NewRouter builds the REST API around svc. The returned stop function
// releases the rate limiter and must be called on shutdown.
func NewRouter(cfg *config.Config, svc *declension.Service, logger *slog.Logger) (http.Handler, func()) {
	health := rest.NewHealthHandler(svc, BuildVersion())
	decl := rest.NewDeclensionHandler(svc, logger)
	nounList := rest.NewNounsHandler()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /api/v1/declension/{word}", decl.Get)
	mux.HandleFunc("GET /api/v1/nouns", nounList.List)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.RateLimit.RequestsPerMinute),
	)(mux)

	return handler, limiter.Stop
}
