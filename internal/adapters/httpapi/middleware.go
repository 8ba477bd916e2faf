package httpapi

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventdesk/internal/domain"
)

// Headers the browser sends with every call.
const (
	HeaderTenantID   = "X-Tenant-ID"
	HeaderTenantSlug = "X-Tenant-Slug"
	HeaderRequestID  = "X-Request-ID"
	HeaderUserEmail  = "X-User-Email"
)

// withScope reads the caller's token, tenant and locale from the request
// headers and attaches them to the request context.
func withScope(defaultLocale string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		locale := r.Header.Get("Accept-Language")
		if locale == "" {
			locale = defaultLocale
		}
		scope := domain.Scope{
			Token:      bearerToken(r.Header.Get("Authorization")),
			TenantID:   strings.TrimSpace(r.Header.Get(HeaderTenantID)),
			TenantSlug: strings.TrimSpace(r.Header.Get(HeaderTenantSlug)),
			Locale:     locale,
			RequestID:  requestID,
			Actor:      strings.TrimSpace(r.Header.Get(HeaderUserEmail)),
		}
		w.Header().Set(HeaderRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(domain.ContextWithScope(r.Context(), scope)))
	})
}

func bearerToken(header string) string {
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func withAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", domain.ScopeFromContext(r.Context()).RequestID)
	})
}
