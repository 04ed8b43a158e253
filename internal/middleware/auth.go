package middleware

import (
	"context"
	"net/http"

	"academico/internal/session"
)

type identityKey struct{}

// WithIdentity returns a context carrying the identity snapshot.
func WithIdentity(ctx context.Context, id session.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity snapshot injected by RequireAuth.
func IdentityFrom(ctx context.Context) (session.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(session.Identity)
	return id, ok
}

// RequireAuth gates a handler on an authenticated session and, when role is
// non-empty, on the session role matching it. On success the identity
// snapshot is attached to the request context and the handler runs unchanged.
func RequireAuth(sm *session.Manager, role string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sm.Identity(r)
		if !ok {
			sm.Flash(w, r, "warning", "Faça login para continuar.")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		if role != "" && id.Role != role {
			sm.Flash(w, r, "error", "Acesso negado para este perfil.")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		next(w, r.WithContext(WithIdentity(r.Context(), id)))
	}
}
