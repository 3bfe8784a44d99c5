package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/7pessoal-source/menu-noir-premium/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// ListByRestaurant retrieves the restaurant's products newest first,
// optionally narrowed to one category.
func (r *GORMProductRepository) ListByRestaurant(restaurantID, categoryID string) ([]models.Product, error) {
	query := r.db.Where("restaurant_id = ?", restaurantID)
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var products []models.Product
	if err := query.Order("created_at desc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ListActiveByRestaurant retrieves only active products, ordered by name.
func (r *GORMProductRepository) ListActiveByRestaurant(restaurantID string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("restaurant_id = ? AND active = ?", restaurantID, true).
		Order("name asc").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a product scoped to the restaurant.
func (r *GORMProductRepository) GetByID(restaurantID, id string) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "id = ? AND restaurant_id = ?", id, restaurantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update applies the given fields in one statement guarded by both id and
// restaurant_id.
func (r *GORMProductRepository) Update(restaurantID, id string, fields map[string]interface{}) (*models.Product, error) {
	if len(fields) > 0 {
		res := r.db.Model(&models.Product{}).
			Where("id = ? AND restaurant_id = ?", id, restaurantID).
			Updates(fields)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update product %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return r.GetByID(restaurantID, id)
}

// Delete removes the product in one ownership-guarded statement.
func (r *GORMProductRepository) Delete(restaurantID, id string) error {
	res := r.db.Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Delete(&models.Product{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByCategory reports how many products reference the category.
func (r *GORMProductRepository) CountByCategory(restaurantID, categoryID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).
		Where("restaurant_id = ? AND category_id = ?", restaurantID, categoryID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count products in category %s: %w", categoryID, err)
	}
	return count, nil
}
