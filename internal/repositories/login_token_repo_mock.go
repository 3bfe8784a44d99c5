package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/7pessoal-source/menu-noir-premium/internal/models"
)

// MockLoginTokenRepository is an in-memory implementation of
// LoginTokenRepository.
type MockLoginTokenRepository struct {
	tokens map[string]models.LoginToken // keyed by opaque token value
	mu     sync.Mutex
}

// NewMockLoginTokenRepository creates a new instance of
// MockLoginTokenRepository.
func NewMockLoginTokenRepository() *MockLoginTokenRepository {
	return &MockLoginTokenRepository{tokens: make(map[string]models.LoginToken)}
}

// Create stores a new pending login token.
func (r *MockLoginTokenRepository) Create(token *models.LoginToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	token.CreatedAt = time.Now()
	r.tokens[token.Token] = *token
	return nil
}

// Consume marks the token consumed; the mutex makes the check-and-mark
// atomic so only one of two concurrent confirmations wins.
func (r *MockLoginTokenRepository) Consume(email, token string, now time.Time) (*models.LoginToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.tokens[token]
	if !ok || stored.Email != email || stored.ConsumedAt != nil || !stored.ExpiresAt.After(now) {
		return nil, ErrNotFound
	}
	stored.ConsumedAt = &now
	r.tokens[token] = stored
	return &stored, nil
}

// GetConsumed looks up an already-consumed token.
func (r *MockLoginTokenRepository) GetConsumed(token string) (*models.LoginToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.tokens[token]
	if !ok || stored.ConsumedAt == nil {
		return nil, ErrNotFound
	}
	return &stored, nil
}
