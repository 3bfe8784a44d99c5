package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/7pessoal-source/menu-noir-premium/internal/services"
)

// MagicLinkHandler handles the passwordless login flow. The issued token is
// returned in the response body, standing in for email delivery.
type MagicLinkHandler struct {
	magicLinkService *services.MagicLinkService
	validate         *validator.Validate
}

// NewMagicLinkHandler creates a new MagicLinkHandler.
func NewMagicLinkHandler(magicLinkService *services.MagicLinkService) *MagicLinkHandler {
	return &MagicLinkHandler{
		magicLinkService: magicLinkService,
		validate:         validator.New(),
	}
}

// RegisterRoutes registers the passwordless login routes.
func (h *MagicLinkHandler) RegisterRoutes(router fiber.Router) {
	auth := router.Group("/api/auth")
	auth.Post("/request-login", h.HandleRequestLogin)
	auth.Post("/confirm-login", h.HandleConfirmLogin)
}

// RequestLoginRequest is the request body for requesting a login token.
type RequestLoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

// HandleRequestLogin issues a short-lived single-use login token.
func (h *MagicLinkHandler) HandleRequestLogin(c *fiber.Ctx) error {
	var req RequestLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	token, err := h.magicLinkService.RequestLogin(req.Email, req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"token": token})
}

// ConfirmLoginRequest is the request body for confirming a login token.
type ConfirmLoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Token string `json:"token" validate:"required"`
}

// HandleConfirmLogin consumes the token and returns the user; afterwards
// the same token value is the client's bearer credential.
func (h *MagicLinkHandler) HandleConfirmLogin(c *fiber.Ctx) error {
	var req ConfirmLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	user, err := h.magicLinkService.ConfirmLogin(req.Email, req.Token)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}
