package repositories

import "github.com/7pessoal-source/menu-noir-premium/internal/models"

// CategoryRepository defines the interface for category data access. Every
// lookup and mutation is scoped to a restaurant; rows owned by another
// restaurant behave exactly like absent rows.
type CategoryRepository interface {
	// ListByRestaurant returns the restaurant's categories ordered by
	// their display order.
	ListByRestaurant(restaurantID string) ([]models.Category, error)
	// ListActiveByRestaurant returns only active categories, ordered by
	// their display order.
	ListActiveByRestaurant(restaurantID string) ([]models.Category, error)
	GetByID(restaurantID, id string) (*models.Category, error)
	Create(category *models.Category) error
	// Update applies the given column/value pairs to the category in a
	// single ownership-guarded statement and returns the updated row.
	Update(restaurantID, id string, fields map[string]interface{}) (*models.Category, error)
	// Delete removes the category in a single ownership-guarded
	// statement; of two concurrent deletes exactly one succeeds.
	Delete(restaurantID, id string) error
}
