package session

import (
	"context"

	"gangosri-portal/internal/app/models"
)

// SessionService owns the lifetime of the token+profile pair. Create is the
// only way in, Destroy the only way out; everything else reads.
type SessionService interface {
	Create(ctx context.Context, token string, user models.UserProfile) (string, error)
	Find(ctx context.Context, sessionID string) (*models.Session, error)
	Destroy(ctx context.Context, sessionID string) error
}
