package middleware

import (
	"context"
	"net"
	"net/http"

	"github.com/ashik3031/inventory-management/internal/auth"
	"github.com/ashik3031/inventory-management/internal/http/ban"
	rl "github.com/ashik3031/inventory-management/internal/http/rate_limiter"
)

type contextKey string

const userIDKey = contextKey("user_id")

// AuthMiddleware rejects requests without a valid bearer token and stores the
// authenticated user id on the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := auth.TokenClaims(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		userID := 0
		if sub, ok := claims["sub"].(float64); ok {
			userID = int(sub)
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID returns the authenticated user id, or zero when the request was
// not authenticated.
func GetUserID(r *http.Request) int {
	if val, ok := r.Context().Value(userIDKey).(int); ok {
		return val
	}
	return 0
}

// RateLimitMiddleware applies a per-client token bucket, records a strike on
// every rejected request, and blocks banned clients outright.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		if ban.IsBanned(ip) {
			http.Error(w, "access temporarily blocked", http.StatusForbidden)
			return
		}

		if !rl.GetVisitor(ip).Allow() {
			ban.RecordStrike(ip, r.URL.Path)
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
