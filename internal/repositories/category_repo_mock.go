package repositories

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/7pessoal-source/menu-noir-premium/internal/models"
)

// MockCategoryRepository is an in-memory implementation of CategoryRepository.
type MockCategoryRepository struct {
	categories map[string]models.Category
	mu         sync.RWMutex
}

// NewMockCategoryRepository creates a new instance of MockCategoryRepository.
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{categories: make(map[string]models.Category)}
}

// ListByRestaurant returns the restaurant's categories ordered by display
// order.
func (r *MockCategoryRepository) ListByRestaurant(restaurantID string) ([]models.Category, error) {
	return r.list(restaurantID, false)
}

// ListActiveByRestaurant returns only active categories.
func (r *MockCategoryRepository) ListActiveByRestaurant(restaurantID string) ([]models.Category, error) {
	return r.list(restaurantID, true)
}

func (r *MockCategoryRepository) list(restaurantID string, activeOnly bool) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]models.Category, 0)
	for _, category := range r.categories {
		if category.RestaurantID != restaurantID {
			continue
		}
		if activeOnly && !category.Active {
			continue
		}
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Order < categories[j].Order
	})
	return categories, nil
}

// GetByID returns a category scoped to the restaurant.
func (r *MockCategoryRepository) GetByID(restaurantID, id string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[id]
	if !ok || category.RestaurantID != restaurantID {
		return nil, ErrNotFound
	}
	return &category, nil
}

// Create adds a new category.
func (r *MockCategoryRepository) Create(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()
	r.categories[category.ID] = *category
	return nil
}

// Update applies the given fields to the category.
func (r *MockCategoryRepository) Update(restaurantID, id string, fields map[string]interface{}) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.categories[id]
	if !ok || category.RestaurantID != restaurantID {
		return nil, ErrNotFound
	}
	for column, value := range fields {
		switch column {
		case "name":
			category.Name = value.(string)
		case "display_order":
			category.Order = value.(int)
		case "active":
			category.Active = value.(bool)
		}
	}
	category.UpdatedAt = time.Now()
	r.categories[id] = category
	return &category, nil
}

// Delete removes the category.
func (r *MockCategoryRepository) Delete(restaurantID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.categories[id]
	if !ok || category.RestaurantID != restaurantID {
		return ErrNotFound
	}
	delete(r.categories, id)
	return nil
}
