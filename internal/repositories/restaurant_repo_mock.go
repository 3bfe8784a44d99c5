package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/7pessoal-source/menu-noir-premium/internal/models"
)

// MockRestaurantRepository is an in-memory implementation of
// RestaurantRepository, used for demo mode and tests.
type MockRestaurantRepository struct {
	restaurants map[string]models.Restaurant
	users       *MockUserRepository
	mu          sync.RWMutex
}

// NewMockRestaurantRepository creates a new instance of
// MockRestaurantRepository. Owner users created during registration land in
// the given user repository.
func NewMockRestaurantRepository(users *MockUserRepository) *MockRestaurantRepository {
	return &MockRestaurantRepository{
		restaurants: make(map[string]models.Restaurant),
		users:       users,
	}
}

// CreateWithOwner stores the restaurant and its admin user together.
func (r *MockRestaurantRepository) CreateWithOwner(restaurant *models.Restaurant, owner *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if restaurant.ID == "" {
		restaurant.ID = uuid.New().String()
	}
	if owner.ID == "" {
		owner.ID = uuid.New().String()
	}
	owner.RestaurantID = restaurant.ID
	restaurant.CreatedAt = time.Now()
	restaurant.UpdatedAt = time.Now()

	if err := r.users.Create(owner); err != nil {
		return err
	}
	r.restaurants[restaurant.ID] = *restaurant
	return nil
}

// GetByID returns a restaurant by its ID.
func (r *MockRestaurantRepository) GetByID(id string) (*models.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	restaurant, ok := r.restaurants[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &restaurant, nil
}

// GetBySlug returns a restaurant by its slug.
func (r *MockRestaurantRepository) GetBySlug(slug string) (*models.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, restaurant := range r.restaurants {
		if restaurant.Slug == slug {
			res := restaurant
			return &res, nil
		}
	}
	return nil, ErrNotFound
}

// SlugExists reports whether any restaurant already uses the slug.
func (r *MockRestaurantRepository) SlugExists(slug string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, restaurant := range r.restaurants {
		if restaurant.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

// Update applies the given fields to the restaurant.
func (r *MockRestaurantRepository) Update(id string, fields map[string]interface{}) (*models.Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	restaurant, ok := r.restaurants[id]
	if !ok {
		return nil, ErrNotFound
	}
	for column, value := range fields {
		switch column {
		case "name":
			restaurant.Name = value.(string)
		case "logo":
			restaurant.Logo = value.(string)
		case "whats_app":
			restaurant.WhatsApp = value.(string)
		case "hours_of_operation":
			restaurant.HoursOfOperation = value.(string)
		case "status":
			restaurant.Status = value.(string)
		}
	}
	restaurant.UpdatedAt = time.Now()
	r.restaurants[id] = restaurant
	return &restaurant, nil
}
