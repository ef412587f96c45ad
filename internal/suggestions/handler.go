package suggestions

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/middleware"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/profile"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/telemetry/metrics"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/telemetry/tracing"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=suggestions_test

type profileGetter interface {
	Get(ctx context.Context) (*profile.Profile, error)
}

type suggestionsGenerator interface {
	Generate(ctx context.Context, p *profile.Profile) ([]Suggestion, error)
}

type suggestionsCache interface {
	Get(ctx context.Context) ([]Suggestion, bool)
	Set(ctx context.Context, suggestions []Suggestion) error
}

type Response struct {
	Suggestions []Suggestion `json:"suggestions"`
	Cached      bool         `json:"cached"`
}

type Handler struct {
	profiles profileGetter
	engine   suggestionsGenerator
	cache    suggestionsCache
}

func NewHandler(profiles profileGetter, engine suggestionsGenerator, cache suggestionsCache) *Handler {
	return &Handler{
		profiles: profiles,
		engine:   engine,
		cache:    cache,
	}
}

// SetupRoutes registers the suggestions endpoint behind a per-route
// rate limit; generation is too expensive for hammering.
func (handler *Handler) SetupRoutes(
	r *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	allowedPerMin int,
) {
	r.Handle(
		"/suggestions",
		middleware.RateLimit(rateLimiter, "get-suggestions", allowedPerMin, metricsManager)(
			http.HandlerFunc(handler.HandleGet),
		),
	).Methods("GET", "OPTIONS").Name("get-suggestions")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.suggestions.get")
	defer span.End()

	if cached, ok := handler.cache.Get(ctx); ok {
		handler.writeSuggestions(w, cached, true)
		return
	}

	p, err := handler.profiles.Get(ctx)
	if err != nil {
		log.Errorf("suggestions, failed to get profile: %s", err)
		http.Error(w, "failed to generate suggestions", http.StatusInternalServerError)
		return
	}

	suggestions, err := handler.engine.Generate(ctx, p)
	if err != nil {
		// partial fetch failures still produce usable suggestions
		log.Errorf("suggestions generated with errors: %s", err)
	}
	if suggestions == nil {
		suggestions = []Suggestion{}
	}

	if err := handler.cache.Set(ctx, suggestions); err != nil {
		log.Errorf("failed to cache suggestions: %s", err)
	}

	handler.writeSuggestions(w, suggestions, false)
}

func (handler *Handler) writeSuggestions(w http.ResponseWriter, suggestions []Suggestion, cached bool) {
	respJson, err := json.Marshal(Response{Suggestions: suggestions, Cached: cached})
	if err != nil {
		log.Errorf("failed to marshal suggestions: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
