package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Identity is what the provider knows about the caller of one request.
type Identity struct {
	UserID    uuid.UUID
	TokenID   string
	ExpiresAt time.Time
}

type Session struct {
	UserID    uuid.UUID `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Provider is the identity oracle. It owns credentials and sessions and
// nothing else; roles and profiles live in the users table.
type Provider interface {
	SignUp(ctx context.Context, email, password string) (uuid.UUID, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)

	// CurrentUser returns nil, nil for a missing, expired or revoked token.
	CurrentUser(ctx context.Context, token string) (*Identity, error)

	SignOut(ctx context.Context, token string) error
	UpdatePassword(ctx context.Context, token, newPassword string) error

	// DeleteIdentity removes the credentials of userID. Removing an unknown
	// identity is not an error.
	DeleteIdentity(ctx context.Context, userID uuid.UUID) error
}
