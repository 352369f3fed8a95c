// Package requestid tags every request with an identifier so a log line can
// be tied back to the HTTP exchange that produced it.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header is the request/response header carrying the identifier.
const Header = "X-Request-ID"

type ctxKey struct{}

// Middleware reuses an inbound X-Request-ID when the caller supplies one,
// otherwise generates a fresh UUID. The identifier is stored in the request
// context and echoed on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := context.WithValue(r.Context(), ctxKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the request identifier, or "" when the middleware did
// not run.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
