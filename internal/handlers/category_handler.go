package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/7pessoal-source/menu-noir-premium/internal/middleware"
	"github.com/7pessoal-source/menu-noir-premium/internal/models"
	"github.com/7pessoal-source/menu-noir-premium/internal/services"
)

// CategoryHandler handles HTTP requests for the caller's categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes behind the auth middleware.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	categories := router.Group("/categories", authRequired)
	categories.Get("/", h.HandleList)
	categories.Post("/", h.HandleCreate)
	categories.Put("/:id", h.HandleUpdate)
	categories.Delete("/:id", h.HandleDelete)
}

// HandleList returns the caller's categories ordered by display order.
func (h *CategoryHandler) HandleList(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)

	categories, err := h.service.List(identity.RestaurantID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

// CreateCategoryRequest is the request body for creating a category. Order
// defaults to 0 and active to true when omitted.
type CreateCategoryRequest struct {
	Name   string `json:"name" validate:"required"`
	Order  *int   `json:"order"`
	Active *bool  `json:"active"`
}

// HandleCreate creates a category under the caller's restaurant.
func (h *CategoryHandler) HandleCreate(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)

	var req CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	order := 0
	if req.Order != nil {
		order = *req.Order
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	category, err := h.service.Create(identity.RestaurantID, req.Name, order, active)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleUpdate applies a partial update; only fields present in the body
// change.
func (h *CategoryHandler) HandleUpdate(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)

	var patch models.CategoryPatch
	if err := c.BodyParser(&patch); err != nil {
		return respondBadBody(c, err)
	}

	category, err := h.service.Update(identity.RestaurantID, c.Params("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(category)
}

// HandleDelete removes a category; blocked while products reference it.
func (h *CategoryHandler) HandleDelete(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)

	if err := h.service.Delete(identity.RestaurantID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "category deleted"})
}
