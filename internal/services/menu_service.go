package services

import (
	"github.com/7pessoal-source/menu-noir-premium/internal/models"
	"github.com/7pessoal-source/menu-noir-premium/internal/repositories"
)

// Menu is the public read-only projection of one restaurant's menu.
type Menu struct {
	Restaurant MenuRestaurant               `json:"restaurant"`
	Categories []MenuCategory               `json:"categories"`
	Products   []models.ProductWithCategory `json:"products"`
}

// MenuRestaurant is the restaurant header shown on the public menu.
type MenuRestaurant struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	Logo             string `json:"logo"`
	WhatsApp         string `json:"whatsapp"`
	HoursOfOperation string `json:"hoursOfOperation"`
	Status           string `json:"status"`
}

// MenuCategory is the category summary shown on the public menu.
type MenuCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// MenuService assembles the public menu for a restaurant slug. This is the
// only read path with no tenant identity; it is keyed purely by the slug.
type MenuService struct {
	restaurantRepo repositories.RestaurantRepository
	categoryRepo   repositories.CategoryRepository
	productRepo    repositories.ProductRepository
}

// NewMenuService creates a new MenuService.
func NewMenuService(restaurantRepo repositories.RestaurantRepository, categoryRepo repositories.CategoryRepository, productRepo repositories.ProductRepository) *MenuService {
	return &MenuService{
		restaurantRepo: restaurantRepo,
		categoryRepo:   categoryRepo,
		productRepo:    productRepo,
	}
}

// GetMenu returns the restaurant header, its active categories in display
// order, and the active products whose category is itself active. An active
// product under an inactive category stays hidden.
func (s *MenuService) GetMenu(slug string) (*Menu, error) {
	restaurant, err := s.restaurantRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListActiveByRestaurant(restaurant.ID)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.ListActiveByRestaurant(restaurant.ID)
	if err != nil {
		return nil, err
	}

	menuCategories := make([]MenuCategory, 0, len(categories))
	activeNames := make(map[string]string, len(categories))
	for _, category := range categories {
		menuCategories = append(menuCategories, MenuCategory{ID: category.ID, Name: category.Name, Order: category.Order})
		activeNames[category.ID] = category.Name
	}

	menuProducts := make([]models.ProductWithCategory, 0, len(products))
	for _, product := range products {
		name, ok := activeNames[product.CategoryID]
		if !ok {
			continue
		}
		menuProducts = append(menuProducts, models.ProductWithCategory{
			Product:  product,
			Category: models.ProductCategory{ID: product.CategoryID, Name: name},
		})
	}

	return &Menu{
		Restaurant: MenuRestaurant{
			ID:               restaurant.ID,
			Name:             restaurant.Name,
			Slug:             restaurant.Slug,
			Logo:             restaurant.Logo,
			WhatsApp:         restaurant.WhatsApp,
			HoursOfOperation: restaurant.HoursOfOperation,
			Status:           restaurant.Status,
		},
		Categories: menuCategories,
		Products:   menuProducts,
	}, nil
}
