package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/7pessoal-source/menu-noir-premium/internal/models"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

// ListByRestaurant retrieves the restaurant's categories ordered by display
// order.
func (r *GORMCategoryRepository) ListByRestaurant(restaurantID string) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("restaurant_id = ?", restaurantID).
		Order("display_order asc").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ListActiveByRestaurant retrieves only the restaurant's active categories.
func (r *GORMCategoryRepository) ListActiveByRestaurant(restaurantID string) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("restaurant_id = ? AND active = ?", restaurantID, true).
		Order("display_order asc").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active categories: %w", err)
	}
	return categories, nil
}

// GetByID retrieves a category scoped to the restaurant.
func (r *GORMCategoryRepository) GetByID(restaurantID, id string) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "id = ? AND restaurant_id = ?", id, restaurantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID %s: %w", id, err)
	}
	return &category, nil
}

// Create creates a new category.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Update applies the given fields in one statement guarded by both id and
// restaurant_id, so a concurrent delete yields ErrNotFound rather than a
// resurrected row.
func (r *GORMCategoryRepository) Update(restaurantID, id string, fields map[string]interface{}) (*models.Category, error) {
	if len(fields) > 0 {
		res := r.db.Model(&models.Category{}).
			Where("id = ? AND restaurant_id = ?", id, restaurantID).
			Updates(fields)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update category %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return r.GetByID(restaurantID, id)
}

// Delete removes the category in one ownership-guarded statement.
func (r *GORMCategoryRepository) Delete(restaurantID, id string) error {
	res := r.db.Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Delete(&models.Category{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
