package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aumai/kisanmitra/internal/advisory"
	"github.com/aumai/kisanmitra/internal/market"
	"github.com/aumai/kisanmitra/internal/pests"
	"github.com/aumai/kisanmitra/internal/sse"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(store market.Store, catalog *pests.Catalog, router *advisory.Router,
	broker *sse.Broker, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(store, catalog, router, broker)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Mandi prices.
	r.Get("/prices", h.ListPrices)
	r.Get("/prices/trend", h.PriceTrend)
	r.Post("/prices", h.AddPrice)

	// Pest catalogue.
	r.Get("/pests", h.ListPests)
	r.Get("/pests/identify", h.IdentifyPests)

	// Advisory.
	r.Post("/ask", h.Ask)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
