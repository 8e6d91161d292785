package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/testnotes/testnotes-go/internal/session"
)

// unexported, collision-proof context keys
type sessionContextKeyType struct{}
type resolveErrContextKeyType struct{}

var (
	sessionKey    = sessionContextKeyType{}
	resolveErrKey = resolveErrContextKeyType{}
)

// SessionFromContext extracts the resolved session from the request context.
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*session.Session)
	return sess, ok
}

// ResolveErrorFromContext returns the session-store failure, if any, that
// prevented resolving the request's cookie. Handlers that mutate session
// state consult it so a store outage is not mistaken for an anonymous
// request.
func ResolveErrorFromContext(ctx context.Context) error {
	err, _ := ctx.Value(resolveErrKey).(error)
	return err
}

// Sessions returns middleware that resolves the session cookie, when present,
// and attaches the session to the request context. No route hard-requires a
// session here, so requests without a valid cookie pass through
// unauthenticated rather than being rejected. Successful resolution slides
// the server-side expiry and re-issues the cookie to match. A store failure
// during resolution is attached to the context in place of a session; the
// middleware itself never rejects a request.
func Sessions(mgr *session.Manager, opts session.CookieOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := mgr.Resolve(r.Context(), cookie.Value)
			if err != nil {
				slog.Warn("session resolution failed", "error", err)
				ctx := context.WithValue(r.Context(), resolveErrKey, err)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			if sess == nil {
				next.ServeHTTP(w, r)
				return
			}

			if token, err := mgr.Token(sess); err == nil {
				session.SetCookie(w, token, sess.ExpiresAt, opts)
			} else {
				slog.Warn("failed to re-sign session token", "session_id", sess.ID, "error", err)
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
