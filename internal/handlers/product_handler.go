package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/7pessoal-source/menu-noir-premium/internal/middleware"
	"github.com/7pessoal-source/menu-noir-premium/internal/models"
	"github.com/7pessoal-source/menu-noir-premium/internal/services"
)

// ProductHandler handles HTTP requests for the caller's products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes behind the auth middleware.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	products := router.Group("/products", authRequired)
	products.Get("/", h.HandleList)
	products.Post("/", h.HandleCreate)
	products.Put("/:id", h.HandleUpdate)
	products.Delete("/:id", h.HandleDelete)
}

// HandleList returns the caller's products, optionally narrowed by the
// categoryId query parameter.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)

	products, err := h.service.List(identity.RestaurantID, c.Query("categoryId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// CreateProductRequest is the request body for creating a product. Active
// defaults to true when omitted.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	CategoryID  string   `json:"categoryId" validate:"required"`
	ImageURL    string   `json:"imageUrl"`
	Active      *bool    `json:"active"`
}

// HandleCreate creates a product under the caller's restaurant. The
// referenced category must belong to the same restaurant.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)

	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	product, err := h.service.Create(identity.RestaurantID, services.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		Active:      active,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdate applies a partial update; only fields present in the body
// change.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)

	var patch models.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return respondBadBody(c, err)
	}
	if patch.Price != nil && *patch.Price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "price must not be negative"})
	}

	product, err := h.service.Update(identity.RestaurantID, c.Params("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleDelete removes a product.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)

	if err := h.service.Delete(identity.RestaurantID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "product deleted"})
}
