package repositories

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/7pessoal-source/menu-noir-premium/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{products: make(map[string]models.Product)}
}

// ListByRestaurant returns the restaurant's products newest first,
// optionally narrowed to one category.
func (r *MockProductRepository) ListByRestaurant(restaurantID, categoryID string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0)
	for _, product := range r.products {
		if product.RestaurantID != restaurantID {
			continue
		}
		if categoryID != "" && product.CategoryID != categoryID {
			continue
		}
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

// ListActiveByRestaurant returns only active products, ordered by name.
func (r *MockProductRepository) ListActiveByRestaurant(restaurantID string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0)
	for _, product := range r.products {
		if product.RestaurantID == restaurantID && product.Active {
			products = append(products, product)
		}
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})
	return products, nil
}

// GetByID returns a product scoped to the restaurant.
func (r *MockProductRepository) GetByID(restaurantID, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok || product.RestaurantID != restaurantID {
		return nil, ErrNotFound
	}
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()
	r.products[product.ID] = *product
	return nil
}

// Update applies the given fields to the product.
func (r *MockProductRepository) Update(restaurantID, id string, fields map[string]interface{}) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok || product.RestaurantID != restaurantID {
		return nil, ErrNotFound
	}
	for column, value := range fields {
		switch column {
		case "name":
			product.Name = value.(string)
		case "description":
			product.Description = value.(string)
		case "price":
			product.Price = value.(float64)
		case "category_id":
			product.CategoryID = value.(string)
		case "image_url":
			product.ImageURL = value.(string)
		case "active":
			product.Active = value.(bool)
		}
	}
	product.UpdatedAt = time.Now()
	r.products[id] = product
	return &product, nil
}

// Delete removes the product.
func (r *MockProductRepository) Delete(restaurantID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok || product.RestaurantID != restaurantID {
		return ErrNotFound
	}
	delete(r.products, id)
	return nil
}

// CountByCategory reports how many products reference the category.
func (r *MockProductRepository) CountByCategory(restaurantID, categoryID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, product := range r.products {
		if product.RestaurantID == restaurantID && product.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}
