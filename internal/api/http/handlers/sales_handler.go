package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Kevin6098/roomi-sub001/internal/api/dto"
	"github.com/Kevin6098/roomi-sub001/internal/api/validate"
	"github.com/Kevin6098/roomi-sub001/internal/auth"
	"github.com/Kevin6098/roomi-sub001/internal/domain"
	"github.com/Kevin6098/roomi-sub001/internal/service"
)

// SalesHandler manages sale endpoints.
type SalesHandler struct {
	sales     *service.SaleService
	dashboard *service.DashboardService
}

// NewSalesHandler constructs handler.
func NewSalesHandler(sales *service.SaleService, dashboard *service.DashboardService) *SalesHandler {
	return &SalesHandler{sales: sales, dashboard: dashboard}
}

// List GET /api/sales.
func (h *SalesHandler) List(c *fiber.Ctx) error {
	query, err := validate.QueryOf[dto.SaleListQuery](c)
	if err != nil {
		return err
	}

	sales, err := h.sales.List(c.UserContext(), query.Limit, query.Offset)
	if err != nil {
		return err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		out = append(out, saleResponse(&sales[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Get GET /api/sales/:id.
func (h *SalesHandler) Get(c *fiber.Ctx) error {
	sale, err := h.sales.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": saleResponse(sale)})
}

// Create POST /api/sales.
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	req, err := validate.BodyOf[dto.CreateSaleRequest](c)
	if err != nil {
		return err
	}

	identity, _ := auth.IdentityFromContext(c)
	sale, err := h.sales.Create(c.UserContext(), identity, service.SaleCreateInput{
		ItemID:     req.ItemID,
		CustomerID: req.CustomerID,
		SoldAt:     req.SoldAt,
		Price:      req.Price,
		Channel:    req.Channel,
		Notes:      req.Notes,
	})
	if err != nil {
		return err
	}
	h.dashboard.Invalidate(c.UserContext())
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": saleResponse(sale)})
}

func saleResponse(sale *domain.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:         sale.ID,
		Reference:  sale.Reference,
		ItemID:     sale.ItemID,
		CustomerID: sale.CustomerID,
		SoldAt:     sale.SoldAt,
		Price:      sale.Price,
		Channel:    sale.Channel,
		Notes:      sale.Notes,
		CreatedAt:  sale.CreatedAt,
	}
}
