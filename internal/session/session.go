// Package session manages server-side authenticated sessions. The session
// record lives in Redis and is the source of truth; the client holds only a
// signed token referencing the record's ID.
package session

import (
	"context"
	"time"
)

// Session is the server-side record behind an authenticated cookie.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store defines how session records are persisted and retrieved.
// Get returns (nil, nil) when no record exists for the given ID.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Update(ctx context.Context, s Session) error
	Delete(ctx context.Context, id string) error
}
