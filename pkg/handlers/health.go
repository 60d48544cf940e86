package handlers

import (
	"net/http"
)

// HealthHandler serves the public liveness and info endpoints.
type HealthHandler struct {
	appName string
	version string
	profile string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(appName, version, profile string) *HealthHandler {
	return &HealthHandler{appName: appName, version: version, profile: profile}
}

// RegisterRoutes registers the health routes on the mux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /actuator/health", h.Health)
	mux.HandleFunc("GET /actuator/info", h.Info)
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "UP"})
}

func (h *HealthHandler) Info(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"app": map[string]string{
			"name":    h.appName,
			"version": h.version,
			"profile": h.profile,
		},
	})
}
