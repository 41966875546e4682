package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/tapcellar/searchgate/internal/domain"
	"github.com/tapcellar/searchgate/internal/domain/record"
	"github.com/tapcellar/searchgate/internal/domain/resource"
	"github.com/tapcellar/searchgate/internal/domain/search/query"
	healthuc "github.com/tapcellar/searchgate/internal/usecase/health"
	searchuc "github.com/tapcellar/searchgate/internal/usecase/search"
)

// Server exposes the search API over chi.
type Server struct {
	search *searchuc.Service
	health *healthuc.Service
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	return &Server{search: search, health: health, logger: logger}
}

// Routes mounts all API routes on a chi router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/api/inventory/search", s.SearchInventory)
	r.Get("/api/orders/search", s.SearchOrders)
	r.Get("/api/users/search", s.SearchUsers)
	r.Get("/api/reviews/search", s.SearchReviews)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// defaultMessages are the fallback error messages per resource kind, used
// when the provider gave no structured error body.
var defaultMessages = map[resource.Kind]string{
	resource.Inventory: "Error searching inventory",
	resource.Orders:    "Error searching orders",
	resource.Users:     "Error searching users",
	resource.Reviews:   "Error searching reviews",
}

// SearchInventory handles GET /api/inventory/search.
func (s *Server) SearchInventory(w http.ResponseWriter, r *http.Request) {
	params, violations := bindParams(r, resource.Inventory)
	if len(violations) > 0 {
		writeValidationErrors(w, violations)
		return
	}

	records, total, err := s.search.Inventory(r.Context(), params)
	if err != nil {
		s.handleSearchError(w, r, resource.Inventory, err)
		return
	}

	items := make([]inventoryJSON, len(records))
	for i := range records {
		items[i] = inventoryToJSON(&records[i])
	}
	writeJSON(w, http.StatusOK, envelope{Results: items, Total: total})
}

// SearchOrders handles GET /api/orders/search.
func (s *Server) SearchOrders(w http.ResponseWriter, r *http.Request) {
	params, violations := bindParams(r, resource.Orders)
	if len(violations) > 0 {
		writeValidationErrors(w, violations)
		return
	}

	records, total, err := s.search.Orders(r.Context(), callerIdentity(r), params)
	if err != nil {
		s.handleSearchError(w, r, resource.Orders, err)
		return
	}

	items := make([]orderJSON, len(records))
	for i := range records {
		items[i] = orderToJSON(&records[i])
	}
	writeJSON(w, http.StatusOK, envelope{Results: items, Total: total})
}

// SearchUsers handles GET /api/users/search.
func (s *Server) SearchUsers(w http.ResponseWriter, r *http.Request) {
	params, violations := bindParams(r, resource.Users)
	if len(violations) > 0 {
		writeValidationErrors(w, violations)
		return
	}

	records, total, err := s.search.Users(r.Context(), callerIdentity(r), params)
	if err != nil {
		s.handleSearchError(w, r, resource.Users, err)
		return
	}

	items := make([]userJSON, len(records))
	for i := range records {
		items[i] = userToJSON(&records[i])
	}
	writeJSON(w, http.StatusOK, envelope{Results: items, Total: total})
}

// SearchReviews handles GET /api/reviews/search.
func (s *Server) SearchReviews(w http.ResponseWriter, r *http.Request) {
	params, violations := bindParams(r, resource.Reviews)
	if len(violations) > 0 {
		writeValidationErrors(w, violations)
		return
	}

	records, total, err := s.search.Reviews(r.Context(), params)
	if err != nil {
		s.handleSearchError(w, r, resource.Reviews, err)
		return
	}

	items := make([]reviewJSON, len(records))
	for i := range records {
		items[i] = reviewToJSON(&records[i])
	}
	writeJSON(w, http.StatusOK, envelope{Results: items, Total: total})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": string(report.Status),
		"checks": checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// callerIdentity returns the verified identity attached by the auth
// middleware, or nil for anonymous requests.
func callerIdentity(r *http.Request) *domain.Identity {
	if ident, ok := domain.IdentityFromContext(r.Context()); ok {
		return &ident
	}
	return nil
}

// bindParams extracts and validates the recognized query parameters for a
// resource kind. All violations are collected so the caller gets the full
// list, never a partial one.
func bindParams(r *http.Request, kind resource.Kind) (query.Params, []string) {
	values := r.URL.Query()
	var violations []string

	text := bindString(values, "query", &violations)

	var typeFilter, flavorFilter, statusFilter string
	switch kind {
	case resource.Inventory:
		typeFilter = bindString(values, "type", &violations)
		flavorFilter = bindString(values, "flavor", &violations)
	case resource.Orders:
		statusFilter = bindString(values, "status", &violations)
	case resource.Users, resource.Reviews:
		// free-text query only
	}

	pageNum := bindPositiveInt(values, "page", &violations)
	limit := bindPositiveInt(values, "limit", &violations)

	if len(violations) > 0 {
		return query.Params{}, violations
	}

	params, err := query.New(text, typeFilter, flavorFilter, statusFilter, pageNum, limit)
	if err != nil {
		return query.Params{}, []string{err.Error()}
	}
	return params, nil
}

func bindString(values url.Values, name string, violations *[]string) string {
	var dest *string
	if err := runtime.BindQueryParameter("form", true, false, name, values, &dest); err != nil {
		*violations = append(*violations, fmt.Sprintf("%s must be a string", name))
		return ""
	}
	if dest == nil {
		return ""
	}
	return *dest
}

func bindPositiveInt(values url.Values, name string, violations *[]string) int {
	var dest *int
	if err := runtime.BindQueryParameter("form", true, false, name, values, &dest); err != nil {
		*violations = append(*violations, fmt.Sprintf("%s must be a positive integer", name))
		return 0
	}
	if dest == nil {
		return 0
	}
	if *dest <= 0 {
		*violations = append(*violations, fmt.Sprintf("%s must be a positive integer", name))
		return 0
	}
	return *dest
}

// handleSearchError maps orchestrator failures to the uniform error bodies.
// If the caller is already gone, nothing is written.
func (s *Server) handleSearchError(w http.ResponseWriter, r *http.Request, kind resource.Kind, err error) {
	if r.Context().Err() != nil {
		return
	}

	if errors.Is(err, domain.ErrUnauthorized) {
		writeJSON(w, http.StatusUnauthorized, messageBody{Message: "Authentication required"})
		return
	}

	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		s.logger.Warn("upstream error",
			zap.String("resource", kind.String()),
			zap.Int("status", ue.Status()),
			zap.Error(err),
		)
		body := messageBody{Message: ue.Message}
		if body.Message == "" {
			body.Message = defaultMessages[kind]
			body.Error = ue.Detail
		}
		writeJSON(w, ue.Status(), body)
		return
	}

	s.logger.Error("internal error", zap.String("resource", kind.String()), zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, messageBody{Message: defaultMessages[kind]})
}

// envelope is the success response wrapper.
type envelope struct {
	Results any `json:"results"`
	Total   int `json:"total"`
}

// messageBody is the error response body for auth and upstream failures.
type messageBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type fieldError struct {
	Msg string `json:"msg"`
}

type validationBody struct {
	Errors []fieldError `json:"errors"`
}

func writeValidationErrors(w http.ResponseWriter, violations []string) {
	errs := make([]fieldError, len(violations))
	for i, v := range violations {
		errs[i] = fieldError{Msg: v}
	}
	writeJSON(w, http.StatusBadRequest, validationBody{Errors: errs})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Response records keep the canonical PascalCase field names.

type inventoryJSON struct {
	ID           int        `json:"Id"`
	Name         string     `json:"Name"`
	Type         string     `json:"Type"`
	Description  string     `json:"Description"`
	TasteProfile *tasteJSON `json:"TasteProfile,omitempty"`
}

type tasteJSON struct {
	PrimaryFlavor string `json:"PrimaryFlavor,omitempty"`
	Sweetness     string `json:"Sweetness,omitempty"`
	Bitterness    string `json:"Bitterness,omitempty"`
}

type orderJSON struct {
	ID         int     `json:"Id"`
	OwnerID    int     `json:"OwnerId"`
	TotalPrice float64 `json:"TotalPrice"`
	Status     string  `json:"Status"`
}

type userJSON struct {
	ID    int    `json:"Id"`
	Name  string `json:"Name"`
	Email string `json:"Email"`
}

type reviewJSON struct {
	ID        int     `json:"Id"`
	UserID    int     `json:"UserId"`
	ProductID int     `json:"ProductId"`
	Rating    float64 `json:"Rating"`
	Message   string  `json:"Message"`
	CreatedAt string  `json:"CreatedAt,omitempty"`
}

func inventoryToJSON(rec *record.Inventory) inventoryJSON {
	item := inventoryJSON{
		ID:          rec.ID(),
		Name:        rec.Name(),
		Type:        rec.Type(),
		Description: rec.Description(),
	}
	if taste := rec.Taste(); !taste.IsEmpty() {
		item.TasteProfile = &tasteJSON{
			PrimaryFlavor: taste.PrimaryFlavor(),
			Sweetness:     taste.Sweetness(),
			Bitterness:    taste.Bitterness(),
		}
	}
	return item
}

func orderToJSON(rec *record.Order) orderJSON {
	return orderJSON{
		ID:         rec.ID(),
		OwnerID:    rec.OwnerID(),
		TotalPrice: rec.TotalPrice(),
		Status:     rec.Status(),
	}
}

func userToJSON(rec *record.User) userJSON {
	return userJSON{
		ID:    rec.ID(),
		Name:  rec.Name(),
		Email: rec.Email(),
	}
}

func reviewToJSON(rec *record.Review) reviewJSON {
	item := reviewJSON{
		ID:        rec.ID(),
		UserID:    rec.UserID(),
		ProductID: rec.ProductID(),
		Rating:    rec.Rating(),
		Message:   rec.Message(),
	}
	if !rec.CreatedAt().IsZero() {
		item.CreatedAt = rec.CreatedAt().UTC().Format(time.RFC3339)
	}
	return item
}
