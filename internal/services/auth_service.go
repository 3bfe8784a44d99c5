package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/7pessoal-source/menu-noir-premium/internal/models"
	"github.com/7pessoal-source/menu-noir-premium/internal/repositories"
	"github.com/7pessoal-source/menu-noir-premium/pkg/slug"
)

// EventPublisher publishes platform events for downstream workers. A nil
// publisher disables publishing.
type EventPublisher interface {
	PublishRestaurantRegistered(event map[string]interface{}) error
}

// AuthResult is the payload returned by registration and login.
type AuthResult struct {
	Token      string         `json:"token"`
	User       AuthUser       `json:"user"`
	Restaurant AuthRestaurant `json:"restaurant"`
}

// AuthUser is the user summary embedded in AuthResult.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthRestaurant is the restaurant summary embedded in AuthResult.
type AuthRestaurant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// AuthService handles password-based registration and login and issues
// signed JWTs carrying the tenant identity.
type AuthService struct {
	userRepo       repositories.UserRepository
	restaurantRepo repositories.RestaurantRepository
	publisher      EventPublisher
	jwtSecret      []byte
	tokenDuration  time.Duration
}

// NewAuthService creates a new AuthService. The publisher may be nil.
func NewAuthService(userRepo repositories.UserRepository, restaurantRepo repositories.RestaurantRepository, publisher EventPublisher, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		publisher:      publisher,
		jwtSecret:      []byte(jwtSecret),
		tokenDuration:  7 * 24 * time.Hour,
	}
}

// Register creates a restaurant and its admin user atomically and returns a
// fresh token. The restaurant's slug is derived from its name once, here,
// and never recomputed.
func (s *AuthService) Register(restaurantName, email, password string) (*AuthResult, error) {
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	uniqueSlug, err := uniqueSlugFor(s.restaurantRepo, restaurantName)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	restaurant := &models.Restaurant{
		Name:   restaurantName,
		Slug:   uniqueSlug,
		Status: models.RestaurantStatusOpen,
	}
	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := s.restaurantRepo.CreateWithOwner(restaurant, user); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"restaurantId": restaurant.ID,
			"name":         restaurant.Name,
			"slug":         restaurant.Slug,
			"email":        user.Email,
		}
		if err := s.publisher.PublishRestaurantRegistered(event); err != nil {
			// Registration already committed; the event is best effort.
			log.Printf("Warning: failed to publish registration event for %s: %v", restaurant.ID, err)
		}
	}

	return s.result(user, restaurant)
}

// Login verifies the credentials and re-issues a fresh token. Unknown email
// and wrong password fail identically.
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	restaurant, err := s.restaurantRepo.GetByID(user.RestaurantID)
	if err != nil {
		return nil, err
	}
	return s.result(user, restaurant)
}

func (s *AuthService) result(user *models.User, restaurant *models.Restaurant) (*AuthResult, error) {
	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		Token:      token,
		User:       AuthUser{ID: user.ID, Email: user.Email, Role: user.Role},
		Restaurant: AuthRestaurant{ID: restaurant.ID, Name: restaurant.Name, Slug: restaurant.Slug},
	}, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":       user.ID,
		"restaurant_id": user.RestaurantID,
		"email":         user.Email,
		"role":          user.Role,
		"exp":           now.Add(s.tokenDuration).Unix(),
		"iat":           now.Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Authenticate verifies a JWT and extracts the tenant identity. Expired
// tokens and malformed ones are distinguishable so the middleware can log
// them apart; both end up as 401 at the boundary.
func (s *AuthService) Authenticate(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	identity := &Identity{
		UserID:       claimString(claims, "user_id"),
		RestaurantID: claimString(claims, "restaurant_id"),
		Email:        claimString(claims, "email"),
		Role:         claimString(claims, "role"),
	}
	if identity.UserID == "" || identity.RestaurantID == "" {
		return nil, ErrInvalidToken
	}
	return identity, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	if value, ok := claims[key].(string); ok {
		return value
	}
	return ""
}

// uniqueSlugFor derives a slug from the name and appends -1, -2, ... until
// it finds one no restaurant uses. Names with no usable characters are a
// validation error rather than an endless retry.
func uniqueSlugFor(repo repositories.RestaurantRepository, name string) (string, error) {
	base, err := slug.Make(name)
	if err != nil {
		return "", fmt.Errorf("%w: restaurant name must contain letters or digits", ErrValidation)
	}

	candidate := base
	for counter := 1; ; counter++ {
		exists, err := repo.SlugExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
