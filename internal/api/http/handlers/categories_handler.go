package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Kevin6098/roomi-sub001/internal/api/dto"
	"github.com/Kevin6098/roomi-sub001/internal/api/validate"
	"github.com/Kevin6098/roomi-sub001/internal/domain"
	"github.com/Kevin6098/roomi-sub001/internal/service"
)

// CategoriesHandler manages category endpoints.
type CategoriesHandler struct {
	inventory *service.InventoryService
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(inventory *service.InventoryService) *CategoriesHandler {
	return &CategoriesHandler{inventory: inventory}
}

// List GET /api/categories.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	categories, err := h.inventory.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		items = append(items, categoryResponse(&categories[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /api/categories/:id.
func (h *CategoriesHandler) Get(c *fiber.Ctx) error {
	category, err := h.inventory.GetCategory(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": categoryResponse(category)})
}

// Create POST /api/categories.
func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	req, err := validate.BodyOf[dto.CategoryRequest](c)
	if err != nil {
		return err
	}

	category, err := h.inventory.CreateCategory(c.UserContext(), service.CategoryInput{
		NameEN: req.NameEN,
		NameJA: req.NameJA,
		Slug:   req.Slug,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": categoryResponse(category)})
}

// Update PUT /api/categories/:id.
func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	req, err := validate.BodyOf[dto.CategoryRequest](c)
	if err != nil {
		return err
	}

	category, err := h.inventory.UpdateCategory(c.UserContext(), c.Params("id"), service.CategoryInput{
		NameEN: req.NameEN,
		NameJA: req.NameJA,
		Slug:   req.Slug,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": categoryResponse(category)})
}

// Delete DELETE /api/categories/:id.
func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	if err := h.inventory.DeleteCategory(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func categoryResponse(category *domain.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        category.ID,
		NameEN:    category.NameEN,
		NameJA:    category.NameJA,
		Slug:      category.Slug,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}
