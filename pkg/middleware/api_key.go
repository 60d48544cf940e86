package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/alphanet-products/leonardo-backend/pkg/config"
	"github.com/alphanet-products/leonardo-backend/pkg/handlers"
)

const (
	apiKeyHeader      = "X-API-Key"
	authenticatedUser = "leonardo-gpt-agent"
)

type principalKey struct{}

// Principal returns the authenticated principal stored in the request
// context, or "" for unauthenticated requests.
func Principal(ctx context.Context) string {
	p, _ := ctx.Value(principalKey{}).(string)
	return p
}

// Paths served without authentication. Entries ending in "/" match by
// prefix, the rest match exactly.
var publicPaths = []string{
	"/actuator/health",
	"/actuator/info",
	"/swagger-ui/",
	"/swagger-ui.html",
	"/api-docs/",
	"/api-docs",
	"/v3/api-docs/",
	"/v3/api-docs",
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if strings.HasSuffix(p, "/") {
			if strings.HasPrefix(path, p) {
				return true
			}
		} else if path == p {
			return true
		}
	}
	return false
}

// rateLimitInfo tracks failed authentication attempts for one client address.
type rateLimitInfo struct {
	attempts         int
	firstAttemptTime time.Time
	lastLogTime      time.Time
}

func (r *rateLimitInfo) reset(now time.Time) {
	r.attempts = 0
	r.firstAttemptTime = now
	r.lastLogTime = now
}

// APIKeyAuth validates the X-API-Key header on every non-public request.
// Failed attempts are logged with per-address rate limiting so a flood of
// bad keys cannot drown the log.
type APIKeyAuth struct {
	apiKey string
	cfg    config.RateLimitConfig
	logger *zap.Logger
	now    func() time.Time

	mu        sync.Mutex
	rateLimit map[string]*rateLimitInfo
}

// NewAPIKeyAuth creates the authentication middleware.
func NewAPIKeyAuth(apiKey string, cfg config.RateLimitConfig, logger *zap.Logger) *APIKeyAuth {
	return &APIKeyAuth{
		apiKey:    apiKey,
		cfg:       cfg,
		logger:    logger.Named("auth"),
		now:       time.Now,
		rateLimit: make(map[string]*rateLimitInfo),
	}
}

// Handler wraps next with API key authentication.
func (a *APIKeyAuth) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestKey := r.Header.Get(apiKeyHeader)
		clientAddr := clientAddress(r)

		if requestKey != "" && subtle.ConstantTimeCompare([]byte(requestKey), []byte(a.apiKey)) == 1 {
			a.clearFailures(clientAddr)
			a.logger.Debug("API key authentication successful",
				zap.String("request", sanitizedRequestInfo(r)),
				zap.String("client_addr", clientAddr))

			ctx := context.WithValue(r.Context(), principalKey{}, authenticatedUser)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		a.recordFailure(r, clientAddr)
		handlers.WriteErrorEnvelope(w, r, http.StatusUnauthorized,
			"Unauthorized", "Full authentication is required to access this resource", nil)
	})
}

func (a *APIKeyAuth) clearFailures(clientAddr string) {
	a.mu.Lock()
	delete(a.rateLimit, clientAddr)
	a.mu.Unlock()
}

func (a *APIKeyAuth) recordFailure(r *http.Request, clientAddr string) {
	now := a.now()

	a.mu.Lock()
	info, ok := a.rateLimit[clientAddr]
	if !ok {
		info = &rateLimitInfo{firstAttemptTime: now, lastLogTime: now}
		a.rateLimit[clientAddr] = info
	}
	info.attempts++
	shouldLog := a.shouldLogFailure(info, now)
	if shouldLog {
		info.lastLogTime = now
	}
	attempts := info.attempts
	a.mu.Unlock()

	if shouldLog {
		a.logger.Warn("Authentication failed",
			zap.String("client_addr", clientAddr),
			zap.String("request", sanitizedRequestInfo(r)),
			zap.Int("failed_attempts", attempts))
	}
}

// shouldLogFailure decides whether this failure is logged. The first few
// attempts always are; after that, attempts inside the rate limit window
// are logged at most once per suppression interval, and an attempt outside
// the window resets the counters and is logged.
func (a *APIKeyAuth) shouldLogFailure(info *rateLimitInfo, now time.Time) bool {
	if info.attempts <= a.cfg.MaxAttempts {
		return true
	}
	if now.Sub(info.firstAttemptTime) < time.Duration(a.cfg.WindowMs)*time.Millisecond {
		return now.Sub(info.lastLogTime) > time.Duration(a.cfg.LogSuppressionMs)*time.Millisecond
	}
	info.reset(now)
	return true
}

// sanitizedRequestInfo renders "METHOD /path" with the query string removed
// so sensitive query parameters never reach the log.
func sanitizedRequestInfo(r *http.Request) string {
	path, _, _ := strings.Cut(r.URL.RequestURI(), "?")
	return r.Method + " " + path
}

// clientAddress derives the client address from forwarding headers, falling
// back to the connection's remote address.
func clientAddress(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
