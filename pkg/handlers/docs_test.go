package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docsRequest(t *testing.T, h *DocsHandler, path string) *httptest.ResponseRecorder {
	t.Helper()

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestDocsHandler_Document(t *testing.T) {
	h := NewDocsHandler("1.0.0", "dev", true)

	for _, path := range []string{"/v3/api-docs", "/api-docs"} {
		rec := docsRequest(t, h, path)
		assert.Equal(t, http.StatusOK, rec.Code, "path %s", path)

		var doc map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

		info := doc["info"].(map[string]any)
		assert.Equal(t, "SENASoft Metrics API", info["title"])
		assert.Equal(t, "1.0.0", info["version"])

		paths := doc["paths"].(map[string]any)
		assert.Len(t, paths, 8)
		assert.Contains(t, paths, "/api/v1/metrics/scalar")
		assert.Contains(t, paths, "/api/v1/metrics/recommended-instructors")
	}
}

func TestDocsHandler_SecuritySchemeWhenEnabled(t *testing.T) {
	rec := docsRequest(t, NewDocsHandler("1.0.0", "dev", true), "/v3/api-docs")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

	components := doc["components"].(map[string]any)
	schemes := components["securitySchemes"].(map[string]any)
	scheme := schemes["ApiKeyAuth"].(map[string]any)
	assert.Equal(t, "apiKey", scheme["type"])
	assert.Equal(t, "header", scheme["in"])
	assert.Equal(t, "X-API-Key", scheme["name"])
}

func TestDocsHandler_NoSecuritySchemeWhenDisabled(t *testing.T) {
	rec := docsRequest(t, NewDocsHandler("1.0.0", "dev", false), "/v3/api-docs")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

	assert.NotContains(t, doc, "components")
	assert.NotContains(t, doc, "security")
}

func TestDocsHandler_ServerByProfile(t *testing.T) {
	tests := []struct {
		profile string
		url     string
	}{
		{"dev", "http://localhost:8080"},
		{"aws", "https://3.134.102.125.nip.io"},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			rec := docsRequest(t, NewDocsHandler("1.0.0", tt.profile, true), "/v3/api-docs")

			var doc map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

			servers := doc["servers"].([]any)
			require.Len(t, servers, 1)
			assert.Equal(t, tt.url, servers[0].(map[string]any)["url"])
		})
	}
}

func TestDocsHandler_UI(t *testing.T) {
	h := NewDocsHandler("1.0.0", "dev", true)

	for _, path := range []string{"/swagger-ui.html", "/swagger-ui/"} {
		rec := docsRequest(t, h, path)
		assert.Equal(t, http.StatusOK, rec.Code, "path %s", path)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), "/v3/api-docs")
	}
}
