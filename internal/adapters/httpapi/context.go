package httpapi

import (
	"context"
	"net/http"

	"github.com/club41-romania/directory-api/internal/domain"
)

// headerRequesterID carries the caller's self-assigned client identifier.
const headerRequesterID = "X-Requester-Id"

type clientIDKey struct{}

func WithClientID(ctx context.Context, id domain.ClientID) context.Context {
	return context.WithValue(ctx, clientIDKey{}, id)
}

func ClientIDFromContext(ctx context.Context) (domain.ClientID, bool) {
	v, ok := ctx.Value(clientIDKey{}).(domain.ClientID)
	return v, ok && v != ""
}

// NewClientIDMiddleware lifts the requester header into the request context
// so handlers read one source of caller identity.
func NewClientIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := r.Header.Get(headerRequesterID); id != "" {
				r = r.WithContext(WithClientID(r.Context(), domain.ClientID(id)))
			}
			next.ServeHTTP(w, r)
		})
	}
}
