package repositories

import (
	"time"

	"github.com/7pessoal-source/menu-noir-premium/internal/models"
)

// LoginTokenRepository defines the interface for passwordless login token
// data access.
type LoginTokenRepository interface {
	Create(token *models.LoginToken) error
	// Consume atomically marks a pending token consumed and returns it.
	// Returns ErrNotFound when the token does not exist, belongs to a
	// different email, already expired, or was consumed before, so a
	// token can be confirmed at most once, even under concurrent
	// confirmation attempts.
	Consume(email, token string, now time.Time) (*models.LoginToken, error)
	// GetConsumed looks up an already-consumed token acting as a session
	// credential.
	GetConsumed(token string) (*models.LoginToken, error)
}
