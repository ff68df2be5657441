package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Kevin6098/roomi-sub001/internal/api/dto"
	"github.com/Kevin6098/roomi-sub001/internal/api/validate"
	"github.com/Kevin6098/roomi-sub001/internal/auth"
	"github.com/Kevin6098/roomi-sub001/internal/domain"
	"github.com/Kevin6098/roomi-sub001/internal/repository"
	"github.com/Kevin6098/roomi-sub001/internal/service"
)

// RentalsHandler manages the rental lifecycle endpoints.
type RentalsHandler struct {
	rentals   *service.RentalService
	dashboard *service.DashboardService
}

// NewRentalsHandler constructs handler.
func NewRentalsHandler(rentals *service.RentalService, dashboard *service.DashboardService) *RentalsHandler {
	return &RentalsHandler{rentals: rentals, dashboard: dashboard}
}

// List GET /api/rentals.
func (h *RentalsHandler) List(c *fiber.Ctx) error {
	query, err := validate.QueryOf[dto.RentalListQuery](c)
	if err != nil {
		return err
	}

	filter := repository.RentalFilter{
		OverdueOnly: query.Overdue,
		Limit:       query.Limit,
		Offset:      query.Offset,
	}
	if query.CustomerID != "" {
		filter.CustomerID = &query.CustomerID
	}
	if query.ItemID != "" {
		filter.ItemID = &query.ItemID
	}
	if query.Status != "" {
		filter.Statuses = []domain.RentalStatus{domain.RentalStatus(query.Status)}
	}

	rentals, err := h.rentals.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	out := make([]dto.RentalResponse, 0, len(rentals))
	for i := range rentals {
		out = append(out, rentalResponse(&rentals[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Get GET /api/rentals/:id.
func (h *RentalsHandler) Get(c *fiber.Ctx) error {
	rental, err := h.rentals.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rentalResponse(rental)})
}

// Create POST /api/rentals.
func (h *RentalsHandler) Create(c *fiber.Ctx) error {
	req, err := validate.BodyOf[dto.CreateRentalRequest](c)
	if err != nil {
		return err
	}

	identity, _ := auth.IdentityFromContext(c)
	rental, err := h.rentals.Create(c.UserContext(), identity, service.RentalCreateInput{
		ItemID:     req.ItemID,
		CustomerID: req.CustomerID,
		StartDate:  req.StartDate,
		DueDate:    req.DueDate,
		Price:      req.Price,
		Deposit:    req.Deposit,
		Notes:      req.Notes,
	})
	if err != nil {
		return err
	}
	h.dashboard.Invalidate(c.UserContext())
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": rentalResponse(rental)})
}

// Return POST /api/rentals/:id/return.
func (h *RentalsHandler) Return(c *fiber.Ctx) error {
	identity, _ := auth.IdentityFromContext(c)
	rental, err := h.rentals.Return(c.UserContext(), identity, c.Params("id"))
	if err != nil {
		return err
	}
	h.dashboard.Invalidate(c.UserContext())
	return c.JSON(fiber.Map{"data": rentalResponse(rental)})
}

func rentalResponse(rental *domain.Rental) dto.RentalResponse {
	return dto.RentalResponse{
		ID:         rental.ID,
		Reference:  rental.Reference,
		ItemID:     rental.ItemID,
		CustomerID: rental.CustomerID,
		StartDate:  rental.StartDate,
		DueDate:    rental.DueDate,
		ReturnedAt: rental.ReturnedAt,
		Price:      rental.Price,
		Deposit:    rental.Deposit,
		Status:     string(rental.Status),
		Notes:      rental.Notes,
		CreatedAt:  rental.CreatedAt,
		UpdatedAt:  rental.UpdatedAt,
	}
}
