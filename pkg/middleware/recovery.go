package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/alphanet-products/leonardo-backend/pkg/handlers"
)

// Recover returns middleware that converts handler panics into the generic
// 500 envelope instead of dropping the connection.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("Panic while handling request",
						zap.String("path", r.URL.Path),
						zap.Any("panic", rec),
						zap.Stack("stack"))
					handlers.WriteErrorEnvelope(w, r, http.StatusInternalServerError,
						"Internal server error",
						"An unexpected error occurred while processing your request", nil)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
