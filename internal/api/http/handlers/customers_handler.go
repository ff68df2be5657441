package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Kevin6098/roomi-sub001/internal/api/dto"
	"github.com/Kevin6098/roomi-sub001/internal/api/validate"
	"github.com/Kevin6098/roomi-sub001/internal/domain"
	"github.com/Kevin6098/roomi-sub001/internal/service"
)

// CustomersHandler manages customer endpoints.
type CustomersHandler struct {
	customers *service.CustomerService
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(customers *service.CustomerService) *CustomersHandler {
	return &CustomersHandler{customers: customers}
}

// List GET /api/customers.
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	query, err := validate.QueryOf[dto.CustomerListQuery](c)
	if err != nil {
		return err
	}

	customers, err := h.customers.List(c.UserContext(), query.Search, query.Limit, query.Offset)
	if err != nil {
		return err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, customerResponse(&customers[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Get GET /api/customers/:id.
func (h *CustomersHandler) Get(c *fiber.Ctx) error {
	customer, err := h.customers.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": customerResponse(customer)})
}

// Create POST /api/customers.
func (h *CustomersHandler) Create(c *fiber.Ctx) error {
	req, err := validate.BodyOf[dto.CustomerRequest](c)
	if err != nil {
		return err
	}

	customer, err := h.customers.Create(c.UserContext(), customerInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": customerResponse(customer)})
}

// Update PUT /api/customers/:id.
func (h *CustomersHandler) Update(c *fiber.Ctx) error {
	req, err := validate.BodyOf[dto.CustomerRequest](c)
	if err != nil {
		return err
	}

	customer, err := h.customers.Update(c.UserContext(), c.Params("id"), customerInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": customerResponse(customer)})
}

// Delete DELETE /api/customers/:id.
func (h *CustomersHandler) Delete(c *fiber.Ctx) error {
	if err := h.customers.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func customerInput(req *dto.CustomerRequest) service.CustomerInput {
	return service.CustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Notes:   req.Notes,
	}
}

func customerResponse(customer *domain.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     customer.Phone,
		Address:   customer.Address,
		Notes:     customer.Notes,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}
