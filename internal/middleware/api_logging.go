package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"mskn-backend/internal/logger"
)

type requestNoteKey struct{}

// requestNote lets handlers deeper in the chain report the user back to the
// logging middleware.
type requestNote struct {
	userID string
}

func noteUser(ctx context.Context, userID string) {
	if note, ok := ctx.Value(requestNoteKey{}).(*requestNote); ok {
		note.userID = userID
	}
}

// RequestLogger logs one line per request. Bodies are never logged.
func RequestLogger(next http.Handler) http.Handler {
	log := logger.For("HTTP")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if shouldSkipLogging(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		note := &requestNote{}
		wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r.WithContext(context.WithValue(r.Context(), requestNoteKey{}, note)))

		entry := log.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        sanitizePath(r.URL.Path),
			"status":      wrapped.statusCode,
			"duration_ms": float64(time.Since(start).Microseconds()) / 1000.0,
			"bytes":       wrapped.bytesWritten,
			"ip":          getClientIP(r),
		})
		if note.userID != "" {
			entry = entry.WithField("user_id", note.userID)
		}

		switch {
		case wrapped.statusCode >= 500:
			entry.Error("Request failed")
		case wrapped.statusCode >= 400:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request handled")
		}
	})
}

// shouldSkipLogging returns true for paths that shouldn't be logged
func shouldSkipLogging(path string) bool {
	return path == "/metrics" || strings.HasPrefix(path, "/health") || path == "/favicon.ico"
}

// sanitizePath truncates very long paths
func sanitizePath(path string) string {
	if len(path) > 500 {
		path = path[:500]
	}
	return path
}

// getClientIP extracts the client IP from the request
func getClientIP(r *http.Request) string {
	// Check X-Forwarded-For header (for proxies/load balancers)
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		// Take the first IP in the list
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// Fall back to RemoteAddr
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}

	return ip
}
