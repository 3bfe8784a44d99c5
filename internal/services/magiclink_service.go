package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/7pessoal-source/menu-noir-premium/internal/models"
	"github.com/7pessoal-source/menu-noir-premium/internal/repositories"
)

// MagicLinkService implements the passwordless login flow: an opaque
// single-use token is issued per email and, once confirmed, acts as the
// bearer session credential. No password is ever stored or checked. A
// deployment runs either this flow or the JWT flow, never both.
type MagicLinkService struct {
	tokenRepo      repositories.LoginTokenRepository
	userRepo       repositories.UserRepository
	restaurantRepo repositories.RestaurantRepository
	tokenTTL       time.Duration
	sessionTTL     time.Duration
	now            func() time.Time
}

// NewMagicLinkService creates a new MagicLinkService. tokenTTL bounds how
// long a pending token may wait for confirmation; confirmed tokens stay
// valid as session credentials for seven days.
func NewMagicLinkService(tokenRepo repositories.LoginTokenRepository, userRepo repositories.UserRepository, restaurantRepo repositories.RestaurantRepository, tokenTTL time.Duration) *MagicLinkService {
	return &MagicLinkService{
		tokenRepo:      tokenRepo,
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		tokenTTL:       tokenTTL,
		sessionTTL:     7 * 24 * time.Hour,
		now:            time.Now,
	}
}

// RequestLogin issues a short-lived opaque token for the email and returns
// it directly; delivering it by email is outside this service. First-time
// emails get a restaurant and admin user provisioned on the spot.
func (s *MagicLinkService) RequestLogin(email, name string) (string, error) {
	if _, err := s.userRepo.GetByEmail(email); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return "", err
		}
		if err := s.provision(email, name); err != nil {
			return "", err
		}
	}

	token, err := opaqueToken()
	if err != nil {
		return "", err
	}

	pending := &models.LoginToken{
		Email:     email,
		Token:     token,
		ExpiresAt: s.now().Add(s.tokenTTL),
	}
	if err := s.tokenRepo.Create(pending); err != nil {
		return "", err
	}
	return token, nil
}

// ConfirmLogin consumes the pending token. The consumption is atomic in the
// repository, so a token confirms at most once; any mismatch, expiry or
// reuse reports the same failure.
func (s *MagicLinkService) ConfirmLogin(email, token string) (*models.User, error) {
	if _, err := s.tokenRepo.Consume(email, token, s.now()); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidOrExpiredToken
		}
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidOrExpiredToken
		}
		return nil, err
	}
	return user, nil
}

// Authenticate resolves a confirmed token acting as the bearer credential.
func (s *MagicLinkService) Authenticate(token string) (*Identity, error) {
	session, err := s.tokenRepo.GetConsumed(token)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if session.ConsumedAt.Add(s.sessionTTL).Before(s.now()) {
		return nil, ErrTokenExpired
	}

	user, err := s.userRepo.GetByEmail(session.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return &Identity{
		UserID:       user.ID,
		RestaurantID: user.RestaurantID,
		Email:        user.Email,
		Role:         user.Role,
	}, nil
}

// provision creates the restaurant and admin user for a first-time email.
// The restaurant name falls back to the email's local part when no name was
// given or the name strips to an empty slug.
func (s *MagicLinkService) provision(email, name string) error {
	displayName := strings.TrimSpace(name)
	if displayName == "" {
		displayName = emailLocalPart(email)
	}

	uniqueSlug, err := uniqueSlugFor(s.restaurantRepo, displayName)
	if errors.Is(err, ErrValidation) {
		displayName = emailLocalPart(email)
		uniqueSlug, err = uniqueSlugFor(s.restaurantRepo, displayName)
	}
	if err != nil {
		return err
	}

	restaurant := &models.Restaurant{
		Name:   displayName,
		Slug:   uniqueSlug,
		Status: models.RestaurantStatusOpen,
	}
	user := &models.User{Email: email, Role: models.RoleAdmin}
	return s.restaurantRepo.CreateWithOwner(restaurant, user)
}

func emailLocalPart(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}

func opaqueToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate login token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
