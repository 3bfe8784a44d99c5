package services_test

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/7pessoal-source/menu-noir-premium/internal/models"
	"github.com/7pessoal-source/menu-noir-premium/internal/repositories"
	"github.com/7pessoal-source/menu-noir-premium/internal/services"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockRestaurantRepository is a mock implementation of
// repositories.RestaurantRepository.
type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) CreateWithOwner(restaurant *models.Restaurant, owner *models.User) error {
	args := m.Called(restaurant, owner)
	return args.Error(0)
}

func (m *MockRestaurantRepository) GetByID(id string) (*models.Restaurant, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) GetBySlug(slug string) (*models.Restaurant, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) SlugExists(slug string) (bool, error) {
	args := m.Called(slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockRestaurantRepository) Update(id string, fields map[string]interface{}) (*models.Restaurant, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Restaurant), args.Error(1)
}

const testJWTSecret = "test_jwt_secret"

func TestAuthService_Register(t *testing.T) {
	userRepo := new(MockUserRepository)
	restaurantRepo := new(MockRestaurantRepository)
	authService := services.NewAuthService(userRepo, restaurantRepo, nil, testJWTSecret)

	userRepo.On("GetByEmail", "ze@example.com").Return(nil, repositories.ErrNotFound).Once()
	restaurantRepo.On("SlugExists", "pizza-do-ze").Return(false, nil).Once()
	restaurantRepo.On("CreateWithOwner", mock.AnythingOfType("*models.Restaurant"), mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			restaurant := args.Get(0).(*models.Restaurant)
			owner := args.Get(1).(*models.User)
			restaurant.ID = "rest-1"
			owner.ID = "user-1"
			owner.RestaurantID = restaurant.ID
		}).
		Return(nil).Once()

	result, err := authService.Register("Pizza do Zé", "ze@example.com", "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "pizza-do-ze", result.Restaurant.Slug)
	assert.Equal(t, "ze@example.com", result.User.Email)
	assert.Equal(t, models.RoleAdmin, result.User.Role)

	// The token must carry the full tenant identity.
	parsed, err := jwt.Parse(result.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "rest-1", claims["restaurant_id"])
	assert.Equal(t, "ze@example.com", claims["email"])
	assert.Equal(t, models.RoleAdmin, claims["role"])

	userRepo.AssertExpectations(t)
	restaurantRepo.AssertExpectations(t)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	restaurantRepo := new(MockRestaurantRepository)
	authService := services.NewAuthService(userRepo, restaurantRepo, nil, testJWTSecret)

	userRepo.On("GetByEmail", "taken@example.com").Return(&models.User{ID: "user-1"}, nil).Once()

	_, err := authService.Register("Pizza do Zé", "taken@example.com", "secret123")
	assert.ErrorIs(t, err, services.ErrDuplicateEmail)
	userRepo.AssertExpectations(t)
}

func TestAuthService_RegisterSlugCollision(t *testing.T) {
	userRepo := new(MockUserRepository)
	restaurantRepo := new(MockRestaurantRepository)
	authService := services.NewAuthService(userRepo, restaurantRepo, nil, testJWTSecret)

	userRepo.On("GetByEmail", "other@example.com").Return(nil, repositories.ErrNotFound).Once()
	restaurantRepo.On("SlugExists", "pizza-do-ze").Return(true, nil).Once()
	restaurantRepo.On("SlugExists", "pizza-do-ze-1").Return(true, nil).Once()
	restaurantRepo.On("SlugExists", "pizza-do-ze-2").Return(false, nil).Once()
	restaurantRepo.On("CreateWithOwner", mock.AnythingOfType("*models.Restaurant"), mock.AnythingOfType("*models.User")).
		Return(nil).Once()

	result, err := authService.Register("Pizza do Zé", "other@example.com", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, "pizza-do-ze-2", result.Restaurant.Slug)
	restaurantRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUnusableName(t *testing.T) {
	userRepo := new(MockUserRepository)
	restaurantRepo := new(MockRestaurantRepository)
	authService := services.NewAuthService(userRepo, restaurantRepo, nil, testJWTSecret)

	userRepo.On("GetByEmail", "emoji@example.com").Return(nil, repositories.ErrNotFound).Once()

	_, err := authService.Register("!!!", "emoji@example.com", "secret123")
	assert.ErrorIs(t, err, services.ErrValidation)
	restaurantRepo.AssertNotCalled(t, "CreateWithOwner", mock.Anything, mock.Anything)
}

func TestAuthService_Login(t *testing.T) {
	userRepo := new(MockUserRepository)
	restaurantRepo := new(MockRestaurantRepository)
	authService := services.NewAuthService(userRepo, restaurantRepo, nil, testJWTSecret)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	user := &models.User{
		ID:           "user-1",
		RestaurantID: "rest-1",
		Email:        "ze@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	restaurant := &models.Restaurant{ID: "rest-1", Name: "Pizza do Zé", Slug: "pizza-do-ze"}

	userRepo.On("GetByEmail", "ze@example.com").Return(user, nil).Once()
	restaurantRepo.On("GetByID", "rest-1").Return(restaurant, nil).Once()

	result, err := authService.Login("ze@example.com", "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "rest-1", result.Restaurant.ID)
	userRepo.AssertExpectations(t)
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	userRepo := new(MockUserRepository)
	restaurantRepo := new(MockRestaurantRepository)
	authService := services.NewAuthService(userRepo, restaurantRepo, nil, testJWTSecret)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	user := &models.User{ID: "user-1", RestaurantID: "rest-1", Email: "ze@example.com", PasswordHash: string(hash)}

	userRepo.On("GetByEmail", "ze@example.com").Return(user, nil).Once()
	_, wrongPassword := authService.Login("ze@example.com", "wrongpass")

	userRepo.On("GetByEmail", "ghost@example.com").Return(nil, repositories.ErrNotFound).Once()
	_, unknownEmail := authService.Login("ghost@example.com", "secret123")

	assert.ErrorIs(t, wrongPassword, services.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, services.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_Authenticate(t *testing.T) {
	userRepo := new(MockUserRepository)
	restaurantRepo := new(MockRestaurantRepository)
	authService := services.NewAuthService(userRepo, restaurantRepo, nil, testJWTSecret)

	makeToken := func(secret string, exp time.Time) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id":       "user-1",
			"restaurant_id": "rest-1",
			"email":         "ze@example.com",
			"role":          models.RoleAdmin,
			"exp":           exp.Unix(),
			"iat":           time.Now().Unix(),
		})
		signed, err := token.SignedString([]byte(secret))
		assert.NoError(t, err)
		return signed
	}

	// Valid token.
	identity, err := authService.Authenticate(makeToken(testJWTSecret, time.Now().Add(time.Hour)))
	assert.NoError(t, err)
	assert.Equal(t, "user-1", identity.UserID)
	assert.Equal(t, "rest-1", identity.RestaurantID)

	// Expired token is distinguishable from a malformed one.
	_, err = authService.Authenticate(makeToken(testJWTSecret, time.Now().Add(-time.Hour)))
	assert.ErrorIs(t, err, services.ErrTokenExpired)

	// Wrong signing secret.
	_, err = authService.Authenticate(makeToken("other_secret", time.Now().Add(time.Hour)))
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Garbage.
	_, err = authService.Authenticate("not.a.token")
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}
