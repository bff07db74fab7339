package middleware

import (
	"context"
	"net"
	"net/http"

	goSession "github.com/MrEthical07/goSession"
	"github.com/MrEthical07/goSession/session"
)

type recordContextKey struct{}

// RecordFromContext returns the session record stored by Attach. The boolean
// is false when Attach did not run for this request.
func RecordFromContext(ctx context.Context) (session.Record, bool) {
	record, ok := ctx.Value(recordContextKey{}).(session.Record)
	return record, ok
}

// Attach decodes the session cookie once per request and stores the result in
// the request context, anonymous record included. It never blocks a request
// by itself; pair it with the Require guards for enforcement.
func Attach(codec *goSession.Codec, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
				ctx = goSession.WithClientIP(ctx, host)
			}

			record := codec.GetSession(r.WithContext(ctx), secret)
			ctx = context.WithValue(ctx, recordContextKey{}, record)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuthenticated rejects requests whose record is not authenticated.
// Responses carry no hint of why the session was absent or invalid.
func RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		record, ok := RecordFromContext(r.Context())
		if !ok || !record.IsAuthenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireElevated rejects requests whose record does not carry the privileged
// role: 401 for anonymous callers, 403 for authenticated ones.
func RequireElevated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		record, ok := RecordFromContext(r.Context())
		if !ok || !record.IsAuthenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !record.HasElevatedRole() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
