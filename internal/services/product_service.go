package services

import (
	"errors"

	"github.com/7pessoal-source/menu-noir-premium/internal/models"
	"github.com/7pessoal-source/menu-noir-premium/internal/repositories"
)

// ProductInput carries the fields for creating a product.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	CategoryID  string
	ImageURL    string
	Active      bool
}

// ProductService handles ownership-scoped product CRUD. Beyond the tenant
// filter it enforces that a product's category belongs to the same
// restaurant.
type ProductService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) *ProductService {
	return &ProductService{productRepo: productRepo, categoryRepo: categoryRepo}
}

// List returns the restaurant's products newest first, each annotated with
// its category's id and name. A non-empty categoryID narrows the list.
func (s *ProductService) List(restaurantID, categoryID string) ([]models.ProductWithCategory, error) {
	products, err := s.productRepo.ListByRestaurant(restaurantID, categoryID)
	if err != nil {
		return nil, err
	}
	return s.annotate(restaurantID, products)
}

// Create creates a product after checking that the category exists under
// the same restaurant. A category id valid under another tenant is just as
// invalid as a made-up one.
func (s *ProductService) Create(restaurantID string, input ProductInput) (*models.ProductWithCategory, error) {
	category, err := s.categoryRepo.GetByID(restaurantID, input.CategoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCategory
		}
		return nil, err
	}

	product := &models.Product{
		RestaurantID: restaurantID,
		CategoryID:   input.CategoryID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		ImageURL:     input.ImageURL,
		Active:       input.Active,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return &models.ProductWithCategory{
		Product:  *product,
		Category: models.ProductCategory{ID: category.ID, Name: category.Name},
	}, nil
}

// Update applies a partial update. A categoryId in the patch is validated
// against the caller's restaurant before anything is written.
func (s *ProductService) Update(restaurantID, id string, patch models.ProductPatch) (*models.ProductWithCategory, error) {
	if patch.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(restaurantID, *patch.CategoryID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrInvalidCategory
			}
			return nil, err
		}
	}

	product, err := s.productRepo.Update(restaurantID, id, patch.Fields())
	if err != nil {
		return nil, err
	}

	annotated, err := s.annotate(restaurantID, []models.Product{*product})
	if err != nil {
		return nil, err
	}
	return &annotated[0], nil
}

// Delete removes the product.
func (s *ProductService) Delete(restaurantID, id string) error {
	return s.productRepo.Delete(restaurantID, id)
}

// annotate attaches each product's category id and name.
func (s *ProductService) annotate(restaurantID string, products []models.Product) ([]models.ProductWithCategory, error) {
	categories, err := s.categoryRepo.ListByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}

	annotated := make([]models.ProductWithCategory, 0, len(products))
	for _, product := range products {
		annotated = append(annotated, models.ProductWithCategory{
			Product:  product,
			Category: models.ProductCategory{ID: product.CategoryID, Name: names[product.CategoryID]},
		})
	}
	return annotated, nil
}
