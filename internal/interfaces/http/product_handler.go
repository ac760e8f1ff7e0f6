package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nationaltraders/plumbing-crm/internal/application/catalog"
	"github.com/nationaltraders/plumbing-crm/internal/application/dto"
	"github.com/nationaltraders/plumbing-crm/internal/domain"
)

// ProductHandler handles catalog requests (protected, read-only).
type ProductHandler struct {
	uc *catalog.UseCase
}

// NewProductHandler builds the handler.
func NewProductHandler(uc *catalog.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List returns the whole catalog grouped by pipe system.
// GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	systems, err := h.uc.ListSystems(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(systems)
}

// GetSystem returns one system's products.
// GET /api/products/:system
func (h *ProductHandler) GetSystem(c *fiber.Ctx) error {
	system := c.Params("system")
	resp, err := h.uc.GetSystem(c.Context(), system)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "unknown pipe system"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
