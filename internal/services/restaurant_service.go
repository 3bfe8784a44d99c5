package services

import (
	"fmt"

	"github.com/7pessoal-source/menu-noir-premium/internal/models"
	"github.com/7pessoal-source/menu-noir-premium/internal/repositories"
)

// RestaurantService exposes the authenticated owner's restaurant settings:
// name, logo, whatsapp number, operating hours and open/closed status. The
// slug is fixed at registration and cannot be changed here.
type RestaurantService struct {
	restaurantRepo repositories.RestaurantRepository
}

// NewRestaurantService creates a new RestaurantService.
func NewRestaurantService(restaurantRepo repositories.RestaurantRepository) *RestaurantService {
	return &RestaurantService{restaurantRepo: restaurantRepo}
}

// Get returns the caller's restaurant.
func (s *RestaurantService) Get(restaurantID string) (*models.Restaurant, error) {
	return s.restaurantRepo.GetByID(restaurantID)
}

// Update applies a partial update to the caller's restaurant settings.
func (s *RestaurantService) Update(restaurantID string, patch models.RestaurantPatch) (*models.Restaurant, error) {
	if patch.Status != nil {
		switch *patch.Status {
		case models.RestaurantStatusOpen, models.RestaurantStatusClosed:
		default:
			return nil, fmt.Errorf("%w: status must be open or closed", ErrValidation)
		}
	}
	return s.restaurantRepo.Update(restaurantID, patch.Fields())
}
