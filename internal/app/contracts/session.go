package contracts

import (
	"context"
	"intake-service/internal/app/models"
)

// SessionService is the only component allowed to touch persisted
// authentication state. Token and user are stored as one unit.
type SessionService interface {
	Create(ctx context.Context, token string, user models.User) (sessionID string, err error)
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Clear(ctx context.Context, sessionID string) error
}
