package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kevin6098/roomi-sub001/internal/observability"
	"github.com/Kevin6098/roomi-sub001/internal/service"
)

// DashboardHandler serves the aggregated reporting view and debug counters.
type DashboardHandler struct {
	dashboard *service.DashboardService
	metrics   *observability.Metrics
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboard *service.DashboardService, metrics *observability.Metrics) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, metrics: metrics}
}

// Summary GET /api/dashboard.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.dashboard.Summary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summary})
}

// Metrics GET /api/debug/metrics. Owner only.
func (h *DashboardHandler) Metrics(c *fiber.Ctx) error {
	requests, errors := h.metrics.Snapshot()
	return c.JSON(fiber.Map{
		"requests": requests,
		"errors":   errors,
	})
}
