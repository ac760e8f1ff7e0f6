package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nationaltraders/plumbing-crm/internal/application/dto"
	"github.com/nationaltraders/plumbing-crm/internal/application/reports"
	"github.com/nationaltraders/plumbing-crm/internal/domain"
)

// ReportHandler handles reporting requests (protected, ADMIN only).
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SalesTrends returns bucketed sales totals.
// GET /api/reports/sales-trends?period=daily|weekly|monthly
func (h *ReportHandler) SalesTrends(c *fiber.Ctx) error {
	trends, err := h.uc.SalesTrends(c.Context(), c.Query("period"))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(trends)
}

// RevenueByCustomer returns the top customers by billed revenue.
// GET /api/reports/revenue-by-customer
func (h *ReportHandler) RevenueByCustomer(c *fiber.Ctx) error {
	rows, err := h.uc.RevenueByCustomer(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// RevenueByProduct returns the top products by billed revenue.
// GET /api/reports/revenue-by-product
func (h *ReportHandler) RevenueByProduct(c *fiber.Ctx) error {
	rows, err := h.uc.RevenueByProduct(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// PaymentStatus returns the Recorded vs Pending summary.
// GET /api/reports/payment-status
func (h *ReportHandler) PaymentStatus(c *fiber.Ctx) error {
	summary, err := h.uc.PaymentStatus(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// CustomerMetrics returns customer counts, revenue and the top customers.
// GET /api/reports/customer-metrics
func (h *ReportHandler) CustomerMetrics(c *fiber.Ctx) error {
	metrics, err := h.uc.CustomerMetrics(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(metrics)
}
