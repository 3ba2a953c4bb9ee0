package sessions

import (
	"context"
	"errors"

	model "itask.com/itask/internal/models"
)

// Store keeps the ephemeral token → account association behind the session
// cookie. Entries expire after the configured lifetime.
type Store interface {
	Create(ctx context.Context, account model.Account) (string, error)

	Get(ctx context.Context, token string) (*model.Account, error)

	Destroy(ctx context.Context, token string) error
}

var ErrSessionNotFound = errors.New("session not found or expired")
