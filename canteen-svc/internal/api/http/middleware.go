package httpapi

import (
	"context"
	"net/http"
	"strings"

	"canteen/apperr"
	"canteen/canteen-svc/internal/domain"
	"canteen/httpx"
)

type ctxKey int

const userKey ctxKey = iota

// UserFrom returns the signed-in user stored by the auth middleware.
func UserFrom(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userKey).(*domain.User)
	return user
}

// bearerToken reads the session token from the Authorization header, or from
// the token query parameter for EventSource clients that cannot set headers.
func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return r.URL.Query().Get("token")
}

type userHandlerFunc func(w http.ResponseWriter, r *http.Request, user *domain.User)

func (h *Handler) withUser(next userHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := h.Auth.Authenticate(r.Context(), bearerToken(r))
		if err != nil {
			httpx.WriteError(w, r, h.Log, err)
			return
		}
		r = r.WithContext(context.WithValue(r.Context(), userKey, user))
		next(w, r, user)
	}
}

func (h *Handler) withStaff(next userHandlerFunc) http.HandlerFunc {
	return h.withUser(func(w http.ResponseWriter, r *http.Request, user *domain.User) {
		if !user.IsStaff() {
			httpx.WriteError(w, r, h.Log, apperr.ForbiddenErr("Staff access required."))
			return
		}
		next(w, r, user)
	})
}

// canSee reports whether user may read a document owned by ownerID.
func canSee(user *domain.User, ownerID string) bool {
	return user.IsStaff() || user.ID == ownerID
}
