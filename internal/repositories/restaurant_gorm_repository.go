package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/7pessoal-source/menu-noir-premium/internal/models"
)

// GORMRestaurantRepository is a GORM implementation of RestaurantRepository.
type GORMRestaurantRepository struct {
	db *gorm.DB
}

// NewGORMRestaurantRepository creates a new instance of GORMRestaurantRepository.
func NewGORMRestaurantRepository(db *gorm.DB) *GORMRestaurantRepository {
	return &GORMRestaurantRepository{db: db}
}

// CreateWithOwner creates the restaurant and its admin user in a single
// transaction.
func (r *GORMRestaurantRepository) CreateWithOwner(restaurant *models.Restaurant, owner *models.User) error {
	if restaurant.ID == "" {
		restaurant.ID = uuid.New().String()
	}
	if owner.ID == "" {
		owner.ID = uuid.New().String()
	}
	owner.RestaurantID = restaurant.ID

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(restaurant).Error; err != nil {
			return err
		}
		return tx.Create(owner).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create restaurant with owner: %w", err)
	}
	return nil
}

// GetByID retrieves a restaurant by its ID.
func (r *GORMRestaurantRepository) GetByID(id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.First(&restaurant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get restaurant by ID %s: %w", id, err)
	}
	return &restaurant, nil
}

// GetBySlug retrieves a restaurant by its public slug.
func (r *GORMRestaurantRepository) GetBySlug(slug string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.First(&restaurant, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get restaurant by slug %s: %w", slug, err)
	}
	return &restaurant, nil
}

// SlugExists reports whether any restaurant already uses the slug.
func (r *GORMRestaurantRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Restaurant{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug %s: %w", slug, err)
	}
	return count > 0, nil
}

// Update applies the given fields to the restaurant and returns the updated
// row. The slug is never part of the fields; it is fixed at registration.
func (r *GORMRestaurantRepository) Update(id string, fields map[string]interface{}) (*models.Restaurant, error) {
	if len(fields) > 0 {
		res := r.db.Model(&models.Restaurant{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update restaurant %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return r.GetByID(id)
}
