package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chirouter "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/propfind-io/propfind/internal/domain"
	"github.com/propfind-io/propfind/internal/domain/listing"
	"github.com/propfind-io/propfind/internal/domain/search/params"
	cataloguc "github.com/propfind-io/propfind/internal/usecase/catalog"
	healthuc "github.com/propfind-io/propfind/internal/usecase/health"
	searchuc "github.com/propfind-io/propfind/internal/usecase/search"
)

// errorCode identifies a class of API error in responses.
type errorCode string

const (
	codeBadRequest       errorCode = "bad_request"
	codeValidationFailed errorCode = "validation_failed"
	codeListingNotFound  errorCode = "listing_not_found"
	codeUnauthorized     errorCode = "unauthorized"
	codeStoreUnavailable errorCode = "store_unavailable"
	codeInternalError    errorCode = "internal_error"
)

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the listing catalog and search pipeline over HTTP.
type Server struct {
	search        *searchuc.Service
	catalog       *cataloguc.Service
	health        *healthuc.Service
	parser        *params.Parser
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	catalog *cataloguc.Service,
	health *healthuc.Service,
	parser *params.Parser,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:  search,
		catalog: catalog,
		health:  health,
		parser:  parser,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeListingNotFound),
		sentinelHandler(domain.ErrInvalidListing, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrStoreUnavailable, http.StatusServiceUnavailable, codeStoreUnavailable),
	}
	return s
}

// Routes mounts all API endpoints on the given router. Browsing
// endpoints stay public; auth wraps the write endpoints only.
func (s *Server) Routes(r chirouter.Router, auth func(http.Handler) http.Handler) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1/listings", func(r chirouter.Router) {
		r.Get("/", s.SearchListings)
		r.Get("/{id}", s.GetListing)
		r.With(auth).Post("/", s.CreateListing)
		r.With(auth).Put("/{id}", s.UpsertListing)
		r.With(auth).Delete("/{id}", s.DeleteListing)
	})
}

// SearchListings handles GET /api/v1/listings.
// Every query parameter is optional; malformed values degrade to the
// unfiltered default rather than failing the request.
func (s *Server) SearchListings(w http.ResponseWriter, r *http.Request) {
	f, key, req := s.parser.Parse(r.URL.Query())

	page := s.search.Search(r.Context(), f, key, req)

	items := make([]listingResponse, len(page.Items()))
	for i := range page.Items() {
		items[i] = listingToResponse(&page.Items()[i])
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Items:      items,
		Total:      page.Total(),
		Page:       page.Page(),
		Limit:      page.Limit(),
		TotalPages: page.TotalPages(),
		HasMore:    page.HasMore(),
	})
}

// CreateListing handles POST /api/v1/listings.
func (s *Server) CreateListing(w http.ResponseWriter, r *http.Request) {
	var req listingPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	l := listingFromPayload("", req)
	created, err := s.catalog.Create(r.Context(), &l)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/listings/"+created.ID)
	writeJSON(w, http.StatusCreated, listingToResponse(&created))
}

// GetListing handles GET /api/v1/listings/{id}.
func (s *Server) GetListing(w http.ResponseWriter, r *http.Request) {
	id := chirouter.URLParam(r, "id")

	l, err := s.catalog.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listingToResponse(&l))
}

// UpsertListing handles PUT /api/v1/listings/{id}.
func (s *Server) UpsertListing(w http.ResponseWriter, r *http.Request) {
	id := chirouter.URLParam(r, "id")

	var req listingPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	l := listingFromPayload(id, req)
	created, err := s.catalog.Upsert(r.Context(), &l)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		w.Header().Set("Location", "/api/v1/listings/"+l.ID)
	}
	writeJSON(w, status, listingToResponse(&l))
}

// DeleteListing handles DELETE /api/v1/listings/{id}.
func (s *Server) DeleteListing(w http.ResponseWriter, r *http.Request) {
	id := chirouter.URLParam(r, "id")

	if err := s.catalog.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrInvalidListing,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

// --- DTOs ---

// listingPayload is the request body for create and upsert.
type listingPayload struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	Status   string `json:"status"`
	Type     string `json:"type,omitempty"`
	Subtype  string `json:"subtype,omitempty"`
	Category string `json:"category,omitempty"`

	Price     float64 `json:"price"`
	Area      string  `json:"area,omitempty"`
	City      string  `json:"city,omitempty"`
	Developer string  `json:"developer,omitempty"`

	Beds      *int     `json:"beds,omitempty"`
	Baths     *int     `json:"baths,omitempty"`
	Sqft      *float64 `json:"sqft,omitempty"`
	Furnished *bool    `json:"furnished,omitempty"`

	Parking     string `json:"parking,omitempty"`
	PropertyAge string `json:"property_age,omitempty"`
	Completion  string `json:"completion,omitempty"`

	Features []string `json:"features,omitempty"`
	Featured bool     `json:"featured,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// listingResponse is one listing in API responses.
type listingResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	Status   string `json:"status"`
	Type     string `json:"type,omitempty"`
	Subtype  string `json:"subtype,omitempty"`
	Category string `json:"category,omitempty"`

	Price     float64 `json:"price"`
	Area      string  `json:"area,omitempty"`
	City      string  `json:"city,omitempty"`
	Developer string  `json:"developer,omitempty"`

	Beds      *int     `json:"beds,omitempty"`
	Baths     *int     `json:"baths,omitempty"`
	Sqft      *float64 `json:"sqft,omitempty"`
	Furnished *bool    `json:"furnished,omitempty"`

	Parking     string `json:"parking,omitempty"`
	PropertyAge string `json:"property_age,omitempty"`
	Completion  string `json:"completion,omitempty"`

	Features []string `json:"features,omitempty"`
	Featured bool     `json:"featured"`

	CreatedAt time.Time `json:"created_at"`
}

// searchResponse is the paginated search envelope.
type searchResponse struct {
	Items      []listingResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	HasMore    bool              `json:"has_more"`
}

type healthResponse struct {
	Status string                          `json:"status"`
	Checks map[string]healthuc.CheckResult `json:"checks"`
}

// listingFromPayload builds a domain listing. The path ID wins over the
// body ID so PUT cannot move a record.
func listingFromPayload(pathID string, req listingPayload) listing.Listing {
	l := listing.Listing{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Status:      listing.Status(req.Status),
		Type:        req.Type,
		Subtype:     req.Subtype,
		Category:    req.Category,
		Price:       req.Price,
		Area:        req.Area,
		City:        req.City,
		Developer:   req.Developer,
		Beds:        req.Beds,
		Baths:       req.Baths,
		Sqft:        req.Sqft,
		Furnished:   req.Furnished,
		Parking:     req.Parking,
		PropertyAge: req.PropertyAge,
		Completion:  req.Completion,
		Features:    req.Features,
		Featured:    req.Featured,
	}
	if pathID != "" {
		l.ID = pathID
	}
	if req.CreatedAt != nil {
		l.CreatedAt = req.CreatedAt.UTC()
	}
	return l
}

func listingToResponse(l *listing.Listing) listingResponse {
	return listingResponse{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Status:      string(l.Status),
		Type:        l.Type,
		Subtype:     l.Subtype,
		Category:    l.Category,
		Price:       l.Price,
		Area:        l.Area,
		City:        l.City,
		Developer:   l.Developer,
		Beds:        l.Beds,
		Baths:       l.Baths,
		Sqft:        l.Sqft,
		Furnished:   l.Furnished,
		Parking:     l.Parking,
		PropertyAge: l.PropertyAge,
		Completion:  l.Completion,
		Features:    l.Features,
		Featured:    l.Featured,
		CreatedAt:   l.CreatedAt,
	}
}
