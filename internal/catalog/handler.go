package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/HerbHall/apidex/internal/server"
	pkgcatalog "github.com/HerbHall/apidex/pkg/catalog"
)

// QueryResponse is the response for GET /api/v1/apis.
type QueryResponse struct {
	Count int                    `json:"count"`
	Query Query                  `json:"query"`
	APIs  []pkgcatalog.APIRecord `json:"apis"`
}

// Handler serves the catalog API.
type Handler struct {
	engine *Engine
	cache  *queryCache
	logger *zap.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*handlerOptions)

type handlerOptions struct {
	cacheTTL     time.Duration
	cacheCleanup time.Duration
}

// WithCache sets the query cache expiry and cleanup interval.
func WithCache(ttl, cleanup time.Duration) HandlerOption {
	return func(o *handlerOptions) {
		o.cacheTTL = ttl
		o.cacheCleanup = cleanup
	}
}

// NewHandler creates a new catalog API handler.
func NewHandler(engine *Engine, logger *zap.Logger, opts ...HandlerOption) *Handler {
	var o handlerOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Handler{
		engine: engine,
		cache:  newQueryCache(o.cacheTTL, o.cacheCleanup, logger),
		logger: logger,
	}
}

// RegisterRoutes implements server.RouteRegistrar.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/apis", h.handleQuery)
	mux.HandleFunc("GET /api/v1/apis/{id}", h.handleDetail)
	mux.HandleFunc("GET /api/v1/apis/{id}/related", h.handleRelated)
	mux.HandleFunc("GET /api/v1/categories", h.handleCategories)
	mux.HandleFunc("GET /api/v1/categories/{slug}", h.handleCategory)
	mux.HandleFunc("GET /api/v1/facets", h.handleFacets)
	mux.HandleFunc("GET /api/v1/featured", h.handleFeatured)
	mux.HandleFunc("GET /api/v1/stats", h.handleStats)
}

// handleQuery searches, filters and sorts the catalog.
//
//	@Summary		Query APIs
//	@Description	Returns APIs whose name or description contains q (case-insensitive), filtered by exact category and auth type, sorted by name or category.
//	@Tags			apis
//	@Produce		json
//	@Param			q			query		string	false	"Substring to search in name and description"
//	@Param			category	query		string	false	"Exact category label, or all"	default(all)
//	@Param			auth		query		string	false	"Exact auth type, or all"		default(all)
//	@Param			sort		query		string	false	"Sort key"						Enums(name, category)	default(name)
//	@Success		200			{object}	QueryResponse
//	@Failure		400			{object}	server.Problem
//	@Router			/apis [get]
func (h *Handler) handleQuery(w http.ResponseWriter, r *http.Request) {
	requestsTotal.WithLabelValues("query").Inc()

	params := r.URL.Query()
	sortKey, err := ParseSortKey(params.Get("sort"))
	if err != nil {
		server.BadRequest(w, err.Error(), r.URL.Path)
		return
	}

	q := Query{
		Search:   params.Get("q"),
		Category: params.Get("category"),
		AuthType: params.Get("auth"),
		Sort:     sortKey,
	}.Normalize()

	records, ok := h.cache.get(q)
	if !ok {
		records = h.engine.Query(q)
		h.cache.set(q, records)
	}
	queryResults.Observe(float64(len(records)))

	writeJSON(w, http.StatusOK, QueryResponse{
		Count: len(records),
		Query: q,
		APIs:  records,
	})
}

// handleDetail returns one API with its related APIs.
//
//	@Summary		Get API detail
//	@Description	Returns the API with the given id and up to three other APIs in the same category.
//	@Tags			apis
//	@Produce		json
//	@Param			id	path		string	true	"API id"
//	@Success		200	{object}	Detail
//	@Failure		404	{object}	server.Problem
//	@Router			/apis/{id} [get]
func (h *Handler) handleDetail(w http.ResponseWriter, r *http.Request) {
	requestsTotal.WithLabelValues("detail").Inc()

	detail, err := h.engine.Detail(r.PathValue("id"))
	if err != nil {
		h.writeLookupError(w, r, "api", err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// handleRelated returns the related APIs for one API.
//
//	@Summary		List related APIs
//	@Description	Returns up to three other APIs in the same category, in catalog order.
//	@Tags			apis
//	@Produce		json
//	@Param			id	path		string	true	"API id"
//	@Success		200	{array}		pkgcatalog.APIRecord
//	@Failure		404	{object}	server.Problem
//	@Router			/apis/{id}/related [get]
func (h *Handler) handleRelated(w http.ResponseWriter, r *http.Request) {
	requestsTotal.WithLabelValues("related").Inc()

	related, err := h.engine.Related(r.PathValue("id"))
	if err != nil {
		h.writeLookupError(w, r, "api", err)
		return
	}
	writeJSON(w, http.StatusOK, related)
}

// handleCategories returns the category overview.
//
//	@Summary		List categories
//	@Description	Returns every category in first-seen order with its slug, size and a three-API preview.
//	@Tags			categories
//	@Produce		json
//	@Success		200	{array}	CategorySummary
//	@Router			/categories [get]
func (h *Handler) handleCategories(w http.ResponseWriter, _ *http.Request) {
	requestsTotal.WithLabelValues("categories").Inc()
	writeJSON(w, http.StatusOK, h.engine.Summaries())
}

// handleCategory returns the APIs of one category.
//
//	@Summary		Get category
//	@Description	Resolves a category slug and returns its APIs in catalog order.
//	@Tags			categories
//	@Produce		json
//	@Param			slug	path		string	true	"Category slug"	example(ai-machine-learning)
//	@Success		200		{object}	CategoryView
//	@Failure		404		{object}	server.Problem
//	@Router			/categories/{slug} [get]
func (h *Handler) handleCategory(w http.ResponseWriter, r *http.Request) {
	requestsTotal.WithLabelValues("category").Inc()

	view, err := h.engine.ByCategorySlug(r.PathValue("slug"))
	if err != nil {
		h.writeLookupError(w, r, "category", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// handleFacets returns the available filter values.
//
//	@Summary		List filter values
//	@Description	Returns the distinct categories and auth types, each list starting with "all".
//	@Tags			apis
//	@Produce		json
//	@Success		200	{object}	Facets
//	@Router			/facets [get]
func (h *Handler) handleFacets(w http.ResponseWriter, _ *http.Request) {
	requestsTotal.WithLabelValues("facets").Inc()
	writeJSON(w, http.StatusOK, h.engine.Facets())
}

// handleFeatured returns the featured APIs.
//
//	@Summary		List featured APIs
//	@Tags			apis
//	@Produce		json
//	@Success		200	{array}	pkgcatalog.APIRecord
//	@Router			/featured [get]
func (h *Handler) handleFeatured(w http.ResponseWriter, _ *http.Request) {
	requestsTotal.WithLabelValues("featured").Inc()
	writeJSON(w, http.StatusOK, h.engine.Featured())
}

// handleStats returns catalog totals.
//
//	@Summary		Catalog statistics
//	@Tags			apis
//	@Produce		json
//	@Success		200	{object}	Stats
//	@Router			/stats [get]
func (h *Handler) handleStats(w http.ResponseWriter, _ *http.Request) {
	requestsTotal.WithLabelValues("stats").Inc()
	writeJSON(w, http.StatusOK, h.engine.Stats())
}

// writeLookupError maps not-found lookups to 404 and anything else to 500.
func (h *Handler) writeLookupError(w http.ResponseWriter, r *http.Request, kind string, err error) {
	if errors.Is(err, pkgcatalog.ErrNotFound) {
		notFoundTotal.WithLabelValues(kind).Inc()
		server.NotFound(w, err.Error(), r.URL.Path)
		return
	}
	h.logger.Error("catalog lookup failed", zap.String("kind", kind), zap.Error(err))
	server.InternalError(w, "failed to read catalog", r.URL.Path)
}

// -- helpers --

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
