package handlers

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/alphanet-products/leonardo-backend/pkg/services"
)

// MetricsHandler serves the read-only metrics endpoints under
// /api/v1/metrics.
type MetricsHandler struct {
	service services.MetricsService
	logger  *zap.Logger
}

// NewMetricsHandler creates a new metrics handler.
func NewMetricsHandler(service services.MetricsService, logger *zap.Logger) *MetricsHandler {
	return &MetricsHandler{
		service: service,
		logger:  logger.Named("handlers.metrics"),
	}
}

// RegisterRoutes registers the metrics routes on the mux. The catch-all
// route turns every unmatched path into a 404 envelope.
func (h *MetricsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/metrics/scalar", h.GetScalarMetrics)
	mux.HandleFunc("GET /api/v1/metrics/by-center", h.GetCenterMetrics)
	mux.HandleFunc("GET /api/v1/metrics/by-program", h.GetProgramMetrics)
	mux.HandleFunc("GET /api/v1/metrics/by-department", h.GetDepartmentMetrics)
	mux.HandleFunc("GET /api/v1/metrics/github-users", h.GetGitHubUsersMetrics)
	mux.HandleFunc("GET /api/v1/metrics/english-level", h.GetEnglishLevelMetrics)
	mux.HandleFunc("GET /api/v1/metrics/apprentice-count", h.GetApprenticeCountMetrics)
	mux.HandleFunc("GET /api/v1/metrics/recommended-instructors", h.GetRecommendedInstructorMetrics)
	mux.HandleFunc("/", h.NotFound)
}

func (h *MetricsHandler) GetScalarMetrics(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetScalarMetrics(r.Context())
	if err != nil {
		WriteError(w, r, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

func (h *MetricsHandler) GetCenterMetrics(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetCenterMetrics(r.Context())
	if err != nil {
		WriteError(w, r, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

func (h *MetricsHandler) GetProgramMetrics(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetProgramMetrics(r.Context())
	if err != nil {
		WriteError(w, r, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

func (h *MetricsHandler) GetDepartmentMetrics(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetDepartmentMetrics(r.Context())
	if err != nil {
		WriteError(w, r, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

func (h *MetricsHandler) GetGitHubUsersMetrics(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetGitHubUsersMetrics(r.Context())
	if err != nil {
		WriteError(w, r, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

func (h *MetricsHandler) GetEnglishLevelMetrics(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetEnglishLevelMetrics(r.Context())
	if err != nil {
		WriteError(w, r, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

func (h *MetricsHandler) GetApprenticeCountMetrics(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetApprenticeCountMetrics(r.Context())
	if err != nil {
		WriteError(w, r, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

func (h *MetricsHandler) GetRecommendedInstructorMetrics(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetRecommendedInstructorMetrics(r.Context())
	if err != nil {
		WriteError(w, r, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// NotFound writes a 404 envelope for paths no route matches.
func (h *MetricsHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteErrorEnvelope(w, r, http.StatusNotFound,
		"Requested data not found",
		fmt.Sprintf("No endpoint found for %s %s", r.Method, r.URL.Path), nil)
}
