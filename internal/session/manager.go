package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/testnotes/testnotes-go/internal/crypto"
)

// Manager issues, resolves and destroys sessions. Resolution slides the
// server-side expiry forward so active users stay signed in, while idle
// sessions lapse after the configured TTL.
type Manager struct {
	store  Store
	secret string
	ttl    time.Duration
}

// NewManager creates a session manager signing tokens with the given secret.
func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{store: store, secret: secret, ttl: ttl}
}

// Issue creates a session record for the user and returns the signed token
// the client should hold, along with the stored session.
func (m *Manager) Issue(ctx context.Context, userID int64, username string) (string, *Session, error) {
	sess := Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Username:  username,
		ExpiresAt: time.Now().Add(m.ttl),
	}

	if err := m.store.Create(ctx, sess); err != nil {
		return "", nil, err
	}

	token, err := crypto.SignSessionToken(sess.ID, m.secret, m.ttl)
	if err != nil {
		return "", nil, err
	}

	return token, &sess, nil
}

// Resolve validates a client token and loads the session it references,
// extending the session's expiry on success. Returns (nil, nil) when the
// token is invalid or the session is missing or expired; an error is
// returned only for store failures.
func (m *Manager) Resolve(ctx context.Context, token string) (*Session, error) {
	claims, err := crypto.ParseSessionToken(token, m.secret)
	if err != nil {
		return nil, nil
	}

	sess, err := m.store.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}

	if time.Now().After(sess.ExpiresAt) {
		if err := m.store.Delete(ctx, sess.ID); err != nil {
			slog.Warn("failed to delete expired session", "session_id", sess.ID, "error", err)
		}
		return nil, nil
	}

	// Sliding window: activity pushes the expiry forward. A failed refresh
	// leaves the session valid with its previous expiry.
	sess.ExpiresAt = time.Now().Add(m.ttl)
	if err := m.store.Update(ctx, *sess); err != nil {
		slog.Warn("failed to refresh session expiry", "session_id", sess.ID, "error", err)
	}

	return sess, nil
}

// Token signs a fresh client token for an existing session, used to keep the
// cookie's own expiry in step with the slid server-side expiry.
func (m *Manager) Token(sess *Session) (string, error) {
	if sess == nil || sess.ID == "" {
		return "", errors.New("session: cannot sign token for empty session")
	}
	return crypto.SignSessionToken(sess.ID, m.secret, m.ttl)
}

// Destroy removes the server-side session record.
func (m *Manager) Destroy(ctx context.Context, sessionID string) error {
	return m.store.Delete(ctx, sessionID)
}
