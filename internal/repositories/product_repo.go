package repositories

import "github.com/7pessoal-source/menu-noir-premium/internal/models"

// ProductRepository defines the interface for product data access. Like
// CategoryRepository, every operation is scoped to a restaurant.
type ProductRepository interface {
	// ListByRestaurant returns the restaurant's products newest first.
	// A non-empty categoryID narrows the list to that category.
	ListByRestaurant(restaurantID, categoryID string) ([]models.Product, error)
	// ListActiveByRestaurant returns only active products, ordered by
	// name. Category activity is not considered here; the menu service
	// intersects the result with the active category set.
	ListActiveByRestaurant(restaurantID string) ([]models.Product, error)
	GetByID(restaurantID, id string) (*models.Product, error)
	Create(product *models.Product) error
	// Update applies the given column/value pairs to the product in a
	// single ownership-guarded statement and returns the updated row.
	Update(restaurantID, id string, fields map[string]interface{}) (*models.Product, error)
	Delete(restaurantID, id string) error
	// CountByCategory reports how many products reference the category.
	CountByCategory(restaurantID, categoryID string) (int64, error)
}
