package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_Health(t *testing.T) {
	mux := http.NewServeMux()
	NewHealthHandler("leonardo-backend", "1.0.0", "dev").RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/actuator/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"UP"}`, rec.Body.String())
}

func TestHealthHandler_Info(t *testing.T) {
	mux := http.NewServeMux()
	NewHealthHandler("leonardo-backend", "1.2.3", "aws").RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/actuator/info", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "leonardo-backend", body["app"]["name"])
	assert.Equal(t, "1.2.3", body["app"]["version"])
	assert.Equal(t, "aws", body["app"]["profile"])
}
