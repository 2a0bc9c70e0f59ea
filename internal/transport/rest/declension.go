package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/padezh/internal/domain"
	"github.com/heartmarshall/padezh/internal/nouns"
	"github.com/heartmarshall/padezh/internal/validate"
	"github.com/heartmarshall/padezh/pkg/ctxutil"
)

type declensionResolver interface {
	Resolve(ctx context.Context, word string, meta domain.Metadata) (*domain.Declension, error)
}

// DeclensionHandler serves declension lookups.
type DeclensionHandler struct {
	resolver declensionResolver
	log      *slog.Logger
}

// NewDeclensionHandler creates a DeclensionHandler.
func NewDeclensionHandler(resolver declensionResolver, logger *slog.Logger) *DeclensionHandler {
	return &DeclensionHandler{
		resolver: resolver,
		log:      logger.With("handler", "declension"),
	}
}

// DeclensionResponse wraps a resolved declension. Placeholder results are
// returned with status 200 and Valid false.
type DeclensionResponse struct {
	Declension *domain.Declension `json:"declension"`
	Valid      bool               `json:"valid"`
}

// Get resolves a single word.
// GET /api/v1/declension/{word}?gender=&animacy=&translation=&transliteration=
func (h *DeclensionHandler) Get(w http.ResponseWriter, r *http.Request) {
	word := domain.NormalizeWord(r.PathValue("word"))
	if word == "" {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}

	q := r.URL.Query()
	meta := domain.Metadata{
		Gender:          domain.ParseGender(q.Get("gender")),
		Animacy:         domain.ParseAnimacy(q.Get("animacy")),
		Translation:     q.Get("translation"),
		Transliteration: q.Get("transliteration"),
	}
	// The curated list fills whatever the caller left out.
	if n, ok := nouns.Find(word); ok {
		meta = meta.WithDefaults(n.Metadata())
	}

	d, err := h.resolver.Resolve(r.Context(), word, meta)
	if err != nil {
		log := ctxutil.Logger(r.Context(), h.log)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			log.InfoContext(r.Context(), "declension request abandoned", slog.String("word", word))
			writeError(w, http.StatusServiceUnavailable, "request cancelled")
			return
		}
		log.ErrorContext(r.Context(), "resolve declension",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, DeclensionResponse{
		Declension: d,
		Valid:      validate.IsValidDeclension(d),
	})
}

// NounsHandler serves the curated noun list.
type NounsHandler struct{}

// NewNounsHandler creates a NounsHandler.
func NewNounsHandler() *NounsHandler { return &NounsHandler{} }

// List returns the nouns at the requested difficulty tier or below.
// GET /api/v1/nouns?difficulty=common&gender=feminine
func (h *NounsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	difficulty := nouns.DifficultyAdvanced
	if v := q.Get("difficulty"); v != "" {
		d, err := nouns.ParseDifficulty(v)
		if err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}
		difficulty = d
	}

	var list []nouns.Noun
	if v := q.Get("gender"); v != "" {
		g := domain.ParseGender(v)
		if g == "" {
			writeError(w, http.StatusBadRequest, "unknown gender")
			return
		}
		list = nouns.ByGender(g, difficulty)
	} else {
		list = nouns.ByDifficulty(difficulty)
	}
	if list == nil {
		list = []nouns.Noun{}
	}

	writeJSON(w, http.StatusOK, list)
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
