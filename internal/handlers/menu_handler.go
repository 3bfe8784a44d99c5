package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/7pessoal-source/menu-noir-premium/internal/services"
)

// MenuHandler serves the public, unauthenticated menu view.
type MenuHandler struct {
	service *services.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(service *services.MenuService) *MenuHandler {
	return &MenuHandler{service: service}
}

// RegisterRoutes registers the public menu route.
func (h *MenuHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/menu/:slug", h.HandleGetMenu)
}

// HandleGetMenu returns the restaurant's public menu by slug.
func (h *MenuHandler) HandleGetMenu(c *fiber.Ctx) error {
	menu, err := h.service.GetMenu(c.Params("slug"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "restaurant not found"})
		}
		return respondError(c, err)
	}
	return c.JSON(menu)
}
