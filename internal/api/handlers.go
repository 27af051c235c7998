package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aumai/kisanmitra/internal/advisory"
	"github.com/aumai/kisanmitra/internal/apperr"
	"github.com/aumai/kisanmitra/internal/market"
	"github.com/aumai/kisanmitra/internal/models"
	"github.com/aumai/kisanmitra/internal/pests"
	"github.com/aumai/kisanmitra/internal/sse"
)

// Handler holds API route handlers over the three advisory engines.
type Handler struct {
	store   market.Store
	catalog *pests.Catalog
	router  *advisory.Router
	broker  *sse.Broker // may be nil (no event publishing)
}

// NewHandler creates a new Handler. broker may be nil.
func NewHandler(store market.Store, catalog *pests.Catalog, router *advisory.Router, broker *sse.Broker) *Handler {
	return &Handler{store: store, catalog: catalog, router: router, broker: broker}
}

// ListPrices handles GET /prices?commodity=&state=.
// Records come back sorted by date descending.
func (h *Handler) ListPrices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	commodity := q.Get("commodity")
	if commodity == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'commodity' is required"))
		return
	}

	prices, err := h.store.Query(commodity, q.Get("state"))
	if err != nil {
		slog.Error("price query failed", slog.String("commodity", commodity), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, PriceListResponse{Prices: prices, Total: len(prices)})
}

// PriceTrend handles GET /prices/trend?commodity=&market=.
// Records come back in chronological order for trend plotting.
func (h *Handler) PriceTrend(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	commodity := q.Get("commodity")
	mkt := q.Get("market")
	if commodity == "" || mkt == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameters 'commodity' and 'market' are required"))
		return
	}

	prices, err := h.store.Trend(commodity, mkt)
	if err != nil {
		slog.Error("price trend failed", slog.String("commodity", commodity), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, PriceListResponse{Prices: prices, Total: len(prices)})
}

// AddPrice handles POST /prices. The record is validated here, at the
// construction boundary, before it reaches the store.
func (h *Handler) AddPrice(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var rec models.PriceRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := rec.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(apperr.ErrInvalidRecord.Error()+": "+err.Error()))
		return
	}
	if err := h.store.Add(rec); err != nil {
		slog.Error("add price failed", slog.String("commodity", rec.Commodity), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if h.broker != nil {
		h.broker.PublishPriceAdded(rec.Commodity, rec.Market, rec.Date)
	}
	writeJSON(w, http.StatusCreated, rec)
}

// ListPests handles GET /pests and GET /pests?crop=.
func (h *Handler) ListPests(w http.ResponseWriter, r *http.Request) {
	var result []models.Pest
	if crop := r.URL.Query().Get("crop"); crop != "" {
		result = h.catalog.ByCrop(crop)
	} else {
		result = h.catalog.All()
	}
	writeJSON(w, http.StatusOK, PestListResponse{Pests: result, Total: len(result)})
}

// IdentifyPests handles GET /pests/identify?symptoms=a,b,c.
func (h *Handler) IdentifyPests(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("symptoms")
	if raw == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'symptoms' is required"))
		return
	}
	symptoms := splitSymptoms(raw)
	result := h.catalog.Identify(symptoms)
	writeJSON(w, http.StatusOK, PestListResponse{Pests: result, Total: len(result)})
}

// Ask handles POST /ask. Every query resolves to a response; an empty or
// unmatched query gets the fallback answer, never an error.
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Language == "" {
		req.Language = "en"
	}
	resp := h.router.Respond(models.Query{
		Text:     req.Query,
		Language: req.Language,
		Location: req.Location,
	})
	writeJSON(w, http.StatusOK, resp)
}

// splitSymptoms splits a comma-separated symptom list, dropping empties.
func splitSymptoms(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
