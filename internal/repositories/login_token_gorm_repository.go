package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/7pessoal-source/menu-noir-premium/internal/models"
)

// GORMLoginTokenRepository is a GORM implementation of LoginTokenRepository.
type GORMLoginTokenRepository struct {
	db *gorm.DB
}

// NewGORMLoginTokenRepository creates a new instance of
// GORMLoginTokenRepository.
func NewGORMLoginTokenRepository(db *gorm.DB) *GORMLoginTokenRepository {
	return &GORMLoginTokenRepository{db: db}
}

// Create stores a new pending login token.
func (r *GORMLoginTokenRepository) Create(token *models.LoginToken) error {
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	if err := r.db.Create(token).Error; err != nil {
		return fmt.Errorf("failed to create login token: %w", err)
	}
	return nil
}

// Consume marks the token consumed in a single guarded UPDATE; the
// consumed_at IS NULL predicate makes the single-use invariant hold under
// concurrent confirmations.
func (r *GORMLoginTokenRepository) Consume(email, token string, now time.Time) (*models.LoginToken, error) {
	res := r.db.Model(&models.LoginToken{}).
		Where("token = ? AND email = ? AND consumed_at IS NULL AND expires_at > ?", token, email, now).
		Update("consumed_at", now)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to consume login token: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var consumed models.LoginToken
	if err := r.db.First(&consumed, "token = ?", token).Error; err != nil {
		return nil, fmt.Errorf("failed to load consumed login token: %w", err)
	}
	return &consumed, nil
}

// GetConsumed looks up an already-consumed token acting as a session
// credential.
func (r *GORMLoginTokenRepository) GetConsumed(token string) (*models.LoginToken, error) {
	var found models.LoginToken
	err := r.db.First(&found, "token = ? AND consumed_at IS NOT NULL", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get login session: %w", err)
	}
	return &found, nil
}
