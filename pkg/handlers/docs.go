package handlers

import (
	"net/http"
)

const apiKeySecurityScheme = "ApiKeyAuth"

const swaggerUIPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>SENASoft Metrics API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      SwaggerUIBundle({
        url: "/v3/api-docs",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>
`

const apiDescription = `API for obtaining metrics of SENA apprentices, training centers and programs.

## Authentication
This API uses API Key authentication. Include your API key in the request header:
` + "```\nX-API-Key: your_api_key_here\n```" + `

## Public Endpoints
The following endpoints are publicly accessible:
- ` + "`/actuator/health`" + ` - Health check
- ` + "`/actuator/info`" + ` - Application information
- ` + "`/swagger-ui/**`" + ` - API documentation
- ` + "`/api-docs/**`" + ` - OpenAPI specification

## Protected Endpoints
All ` + "`/api/v1/**`" + ` endpoints require valid API key authentication.
`

// DocsHandler serves the OpenAPI document and an interactive documentation
// page. The document is assembled once at construction.
type DocsHandler struct {
	document map[string]any
}

// NewDocsHandler builds the OpenAPI document for the running configuration.
// The server URL follows the active profile and the security scheme is only
// advertised when authentication is enabled.
func NewDocsHandler(version, profile string, securityEnabled bool) *DocsHandler {
	doc := map[string]any{
		"openapi": "3.0.1",
		"info": map[string]any{
			"title":       "SENASoft Metrics API",
			"version":     version,
			"description": apiDescription,
			"contact": map[string]any{
				"name":  "AlphaNet Products",
				"email": "fabian.iglesias.m@gmail.com",
			},
			"license": map[string]any{
				"name": "MIT License",
				"url":  "https://opensource.org/licenses/MIT",
			},
		},
		"paths": metricsPaths(),
	}

	if profile == "aws" {
		doc["servers"] = []map[string]any{
			{"url": "https://3.134.102.125.nip.io", "description": "Production Server"},
		}
	} else {
		doc["servers"] = []map[string]any{
			{"url": "http://localhost:8080", "description": "Local Development"},
		}
	}

	if securityEnabled {
		doc["components"] = map[string]any{
			"securitySchemes": map[string]any{
				apiKeySecurityScheme: map[string]any{
					"type":        "apiKey",
					"in":          "header",
					"name":        "X-API-Key",
					"description": "API Key for authentication. Contact administrator to obtain your key.",
				},
			},
		}
		doc["security"] = []map[string]any{
			{apiKeySecurityScheme: []string{}},
		}
	}

	return &DocsHandler{document: doc}
}

func metricsPaths() map[string]any {
	endpoints := []struct {
		path    string
		summary string
	}{
		{"/api/v1/metrics/scalar", "Scalar metrics of the dataset"},
		{"/api/v1/metrics/by-center", "Metrics grouped by training center"},
		{"/api/v1/metrics/by-program", "Apprentice counts per training program"},
		{"/api/v1/metrics/by-department", "Apprentice totals per department"},
		{"/api/v1/metrics/github-users", "GitHub platform users per training center"},
		{"/api/v1/metrics/english-level", "English B1/B2 levels per training center"},
		{"/api/v1/metrics/apprentice-count", "Apprentice count per training center"},
		{"/api/v1/metrics/recommended-instructors", "Recommended instructors per training center"},
	}

	paths := make(map[string]any, len(endpoints))
	for _, e := range endpoints {
		paths[e.path] = map[string]any{
			"get": map[string]any{
				"summary": e.summary,
				"tags":    []string{"Metrics"},
				"responses": map[string]any{
					"200": map[string]any{
						"description": "OK",
						"content": map[string]any{
							"application/json": map[string]any{},
						},
					},
					"401": map[string]any{"description": "Unauthorized"},
					"500": map[string]any{"description": "Internal Server Error"},
				},
			},
		}
	}
	return paths
}

// RegisterRoutes registers the documentation routes on the mux.
func (h *DocsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /v3/api-docs", h.Document)
	mux.HandleFunc("GET /api-docs", h.Document)
	mux.HandleFunc("GET /swagger-ui.html", h.UI)
	mux.HandleFunc("GET /swagger-ui/", h.UI)
}

func (h *DocsHandler) Document(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.document)
}

func (h *DocsHandler) UI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(swaggerUIPage))
}
