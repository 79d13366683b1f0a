package handler

import (
	"go-dealership-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetStockSummary returns per-type counts and stock value over the caller's
// visible in-stock set.
// GET /api/v1/reports/stock
func (h *ReportHandler) GetStockSummary(c *fiber.Ctx) error {
	summary, err := h.reportService.StockSummary(actor(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(summary)
}

// GetSalesReport returns revenue, cost basis and net profit over the sold
// partition, optionally windowed and restricted to a store.
// GET /api/v1/reports/sales?window=all|month|year&store_id=
func (h *ReportHandler) GetSalesReport(c *fiber.Ctx) error {
	window := service.ReportWindow(c.Query("window", string(service.WindowAll)))
	switch window {
	case service.WindowAll, service.WindowMonth, service.WindowYear:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Invalid window, use all|month|year"})
	}

	var storeID *uuid.UUID
	if raw := c.Query("store_id"); raw != "" {
		id, err := parseUUID(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid store ID"})
		}
		storeID = &id
	}

	report, err := h.reportService.SalesReport(actor(c), window, storeID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
