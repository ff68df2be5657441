package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Kevin6098/roomi-sub001/internal/api/dto"
	"github.com/Kevin6098/roomi-sub001/internal/api/validate"
	"github.com/Kevin6098/roomi-sub001/internal/domain"
	"github.com/Kevin6098/roomi-sub001/internal/service"
)

// ListingsHandler manages marketplace listing endpoints.
type ListingsHandler struct {
	listings *service.ListingService
}

// NewListingsHandler constructs handler.
func NewListingsHandler(listings *service.ListingService) *ListingsHandler {
	return &ListingsHandler{listings: listings}
}

// List GET /api/listings.
func (h *ListingsHandler) List(c *fiber.Ctx) error {
	query, err := validate.QueryOf[dto.ListingListQuery](c)
	if err != nil {
		return err
	}

	var (
		listings []domain.Listing
		listErr  error
	)
	if query.ItemID != "" {
		listings, listErr = h.listings.ListByItem(c.UserContext(), query.ItemID)
	} else {
		listings, listErr = h.listings.List(c.UserContext(), query.Limit, query.Offset)
	}
	if listErr != nil {
		return listErr
	}
	out := make([]dto.ListingResponse, 0, len(listings))
	for i := range listings {
		out = append(out, listingResponse(&listings[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Get GET /api/listings/:id.
func (h *ListingsHandler) Get(c *fiber.Ctx) error {
	listing, err := h.listings.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": listingResponse(listing)})
}

// Create POST /api/listings.
func (h *ListingsHandler) Create(c *fiber.Ctx) error {
	req, err := validate.BodyOf[dto.ListingRequest](c)
	if err != nil {
		return err
	}

	listing, err := h.listings.Create(c.UserContext(), listingInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": listingResponse(listing)})
}

// Update PUT /api/listings/:id.
func (h *ListingsHandler) Update(c *fiber.Ctx) error {
	req, err := validate.BodyOf[dto.ListingRequest](c)
	if err != nil {
		return err
	}

	listing, err := h.listings.Update(c.UserContext(), c.Params("id"), listingInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": listingResponse(listing)})
}

// Delete DELETE /api/listings/:id.
func (h *ListingsHandler) Delete(c *fiber.Ctx) error {
	if err := h.listings.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func listingInput(req *dto.ListingRequest) service.ListingInput {
	return service.ListingInput{
		ItemID:    req.ItemID,
		Platform:  req.Platform,
		URL:       req.URL,
		ListPrice: req.ListPrice,
		Status:    domain.ListingStatus(req.Status),
	}
}

func listingResponse(listing *domain.Listing) dto.ListingResponse {
	return dto.ListingResponse{
		ID:        listing.ID,
		ItemID:    listing.ItemID,
		Platform:  listing.Platform,
		URL:       listing.URL,
		ListPrice: listing.ListPrice,
		Status:    string(listing.Status),
		ListedAt:  listing.ListedAt,
		CreatedAt: listing.CreatedAt,
		UpdatedAt: listing.UpdatedAt,
	}
}
