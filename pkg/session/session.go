package session

import (
	"errors"
	"time"
)

const (
	// TTL is the validity window of a record, fixed at creation.
	// No sliding expiration: requests never extend it.
	TTL = 5 * time.Minute

	// CookieName carries the token between client and service.
	CookieName = "auth_cookie_token"

	tokenLength = 24
)

var ErrNotFound = errors.New("session not found")

// Session is the persisted record, keyed by its token. A record past
// ExpiresAt is logically invalid even while still present in storage;
// the gate enforces that, not the store.
type Session struct {
	Token     string    `json:"token" bson:"token"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Role      string    `json:"role" bson:"role"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	ExpiresAt time.Time `json:"expires_at" bson:"expires_at"`
}

// Expired reports whether the record's validity window has passed.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

type Repository interface {
	Create(userID, role string) (*Session, error)
	Find(token string) (*Session, error)
	Delete(token string) error
	DeleteExpired() (int64, error)
}
