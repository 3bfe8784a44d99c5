package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/7pessoal-source/menu-noir-premium/internal/middleware"
	"github.com/7pessoal-source/menu-noir-premium/internal/models"
	"github.com/7pessoal-source/menu-noir-premium/internal/services"
)

// RestaurantHandler exposes the caller's restaurant settings.
type RestaurantHandler struct {
	service *services.RestaurantService
}

// NewRestaurantHandler creates a new RestaurantHandler.
func NewRestaurantHandler(service *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{service: service}
}

// RegisterRoutes registers the restaurant settings routes behind the auth
// middleware.
func (h *RestaurantHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	restaurant := router.Group("/restaurant", authRequired)
	restaurant.Get("/", h.HandleGet)
	restaurant.Put("/", h.HandleUpdate)
}

// HandleGet returns the caller's restaurant.
func (h *RestaurantHandler) HandleGet(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)

	restaurant, err := h.service.Get(identity.RestaurantID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(restaurant)
}

// HandleUpdate applies a partial update to the restaurant settings. The
// slug is not updatable.
func (h *RestaurantHandler) HandleUpdate(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)

	var patch models.RestaurantPatch
	if err := c.BodyParser(&patch); err != nil {
		return respondBadBody(c, err)
	}

	restaurant, err := h.service.Update(identity.RestaurantID, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(restaurant)
}
