package repositories

import (
	"github.com/7pessoal-source/menu-noir-premium/internal/models"
)

// RestaurantRepository defines the interface for restaurant data access.
type RestaurantRepository interface {
	// CreateWithOwner creates a restaurant and its admin user atomically;
	// if either insert fails neither row persists.
	CreateWithOwner(restaurant *models.Restaurant, owner *models.User) error
	GetByID(id string) (*models.Restaurant, error)
	GetBySlug(slug string) (*models.Restaurant, error)
	SlugExists(slug string) (bool, error)
	// Update applies the given column/value pairs to the restaurant and
	// returns the updated row, or ErrNotFound.
	Update(id string, fields map[string]interface{}) (*models.Restaurant, error)
}
