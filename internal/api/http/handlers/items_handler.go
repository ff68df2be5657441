package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Kevin6098/roomi-sub001/internal/api/dto"
	"github.com/Kevin6098/roomi-sub001/internal/api/validate"
	"github.com/Kevin6098/roomi-sub001/internal/domain"
	"github.com/Kevin6098/roomi-sub001/internal/repository"
	"github.com/Kevin6098/roomi-sub001/internal/service"
)

// ItemsHandler manages inventory item endpoints.
type ItemsHandler struct {
	inventory *service.InventoryService
	dashboard *service.DashboardService
}

// NewItemsHandler constructs handler.
func NewItemsHandler(inventory *service.InventoryService, dashboard *service.DashboardService) *ItemsHandler {
	return &ItemsHandler{inventory: inventory, dashboard: dashboard}
}

// List GET /api/items.
func (h *ItemsHandler) List(c *fiber.Ctx) error {
	query, err := validate.QueryOf[dto.ItemListQuery](c)
	if err != nil {
		return err
	}

	filter := repository.ItemFilter{
		Limit:  query.Limit,
		Offset: query.Offset,
	}
	if query.CategoryID != "" {
		filter.CategoryID = &query.CategoryID
	}
	if query.Status != "" {
		filter.Statuses = []domain.ItemStatus{domain.ItemStatus(query.Status)}
	}
	if query.Search != "" {
		filter.SearchTerm = &query.Search
	}

	items, err := h.inventory.ListItems(c.UserContext(), filter)
	if err != nil {
		return err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, itemResponse(&items[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Get GET /api/items/:id.
func (h *ItemsHandler) Get(c *fiber.Ctx) error {
	item, err := h.inventory.GetItem(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": itemResponse(item)})
}

// Create POST /api/items.
func (h *ItemsHandler) Create(c *fiber.Ctx) error {
	req, err := validate.BodyOf[dto.ItemRequest](c)
	if err != nil {
		return err
	}

	item, err := h.inventory.CreateItem(c.UserContext(), itemInput(req))
	if err != nil {
		return err
	}
	h.dashboard.Invalidate(c.UserContext())
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": itemResponse(item)})
}

// Update PUT /api/items/:id.
func (h *ItemsHandler) Update(c *fiber.Ctx) error {
	req, err := validate.BodyOf[dto.ItemRequest](c)
	if err != nil {
		return err
	}

	item, err := h.inventory.UpdateItem(c.UserContext(), c.Params("id"), itemInput(req))
	if err != nil {
		return err
	}
	h.dashboard.Invalidate(c.UserContext())
	return c.JSON(fiber.Map{"data": itemResponse(item)})
}

// Delete DELETE /api/items/:id.
func (h *ItemsHandler) Delete(c *fiber.Ctx) error {
	if err := h.inventory.DeleteItem(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	h.dashboard.Invalidate(c.UserContext())
	return c.SendStatus(http.StatusNoContent)
}

func itemInput(req *dto.ItemRequest) service.ItemInput {
	return service.ItemInput{
		CategoryID:      req.CategoryID,
		SKU:             req.SKU,
		NameEN:          req.NameEN,
		NameJA:          req.NameJA,
		Condition:       domain.ItemCondition(req.Condition),
		AcquisitionCost: req.AcquisitionCost,
		RentalPrice:     req.RentalPrice,
		SalePrice:       req.SalePrice,
		Status:          domain.ItemStatus(req.Status),
		Notes:           req.Notes,
	}
}

func itemResponse(item *domain.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:              item.ID,
		CategoryID:      item.CategoryID,
		SKU:             item.SKU,
		NameEN:          item.NameEN,
		NameJA:          item.NameJA,
		Condition:       string(item.Condition),
		AcquisitionCost: item.AcquisitionCost,
		RentalPrice:     item.RentalPrice,
		SalePrice:       item.SalePrice,
		Status:          string(item.Status),
		Notes:           item.Notes,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}
