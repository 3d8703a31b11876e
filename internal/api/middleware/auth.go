package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/mobisfm/FM-BookingService/internal/api/handlers"
	"github.com/mobisfm/FM-BookingService/internal/domain"
)

type contextKey string

const actorKey contextKey = "actor"

// AdminRole is the role header value that grants administrator rights
const AdminRole = "admin"

// Auth resolves the acting user from the identity headers set by the
// gateway: X-User-ID (required), X-User-Name and X-User-Role. Requests
// without a parseable user id are rejected with 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idHeader := r.Header.Get("X-User-ID")
		if idHeader == "" {
			handlers.RespondUnauthorized(w, "missing user id")
			return
		}
		userID, err := strconv.ParseInt(idHeader, 10, 64)
		if err != nil {
			handlers.RespondUnauthorized(w, "invalid user id")
			return
		}

		actor := domain.Actor{
			ID:      userID,
			Name:    r.Header.Get("X-User-Name"),
			IsAdmin: r.Header.Get("X-User-Role") == AdminRole,
		}

		ctx := context.WithValue(r.Context(), actorKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetActor returns the acting user stored by Auth
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok
}
