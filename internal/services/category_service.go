package services

import (
	"github.com/7pessoal-source/menu-noir-premium/internal/models"
	"github.com/7pessoal-source/menu-noir-premium/internal/repositories"
)

// CategoryService handles ownership-scoped category CRUD. The restaurantID
// on every method comes from the authenticated identity, never from the
// request body.
type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repositories.CategoryRepository, productRepo repositories.ProductRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, productRepo: productRepo}
}

// List returns the restaurant's categories ordered by display order.
func (s *CategoryService) List(restaurantID string) ([]models.Category, error) {
	return s.categoryRepo.ListByRestaurant(restaurantID)
}

// Create creates a category under the restaurant.
func (s *CategoryService) Create(restaurantID, name string, order int, active bool) (*models.Category, error) {
	category := &models.Category{
		RestaurantID: restaurantID,
		Name:         name,
		Order:        order,
		Active:       active,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update applies a partial update. Fields absent from the patch keep their
// stored values. Categories owned by another restaurant report ErrNotFound.
func (s *CategoryService) Update(restaurantID, id string, patch models.CategoryPatch) (*models.Category, error) {
	return s.categoryRepo.Update(restaurantID, id, patch.Fields())
}

// Delete removes the category. Deletion is blocked while products still
// reference the category; callers must move or delete those products first.
func (s *CategoryService) Delete(restaurantID, id string) error {
	if _, err := s.categoryRepo.GetByID(restaurantID, id); err != nil {
		return err
	}

	count, err := s.productRepo.CountByCategory(restaurantID, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	return s.categoryRepo.Delete(restaurantID, id)
}
