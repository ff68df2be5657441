package service

import (
	"context"
	"strings"

	"github.com/Kevin6098/roomi-sub001/internal/domain"
	"github.com/Kevin6098/roomi-sub001/internal/repository"
)

// CustomerService manages renter/buyer records.
type CustomerService struct {
	customers repository.CustomerRepository
}

// CustomerInput describes customer create/update payloads.
type CustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Notes   string
}

// NewCustomerService constructs the service.
func NewCustomerService(customers repository.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// List returns customers, optionally filtered by a search term.
func (s *CustomerService) List(ctx context.Context, search string, limit, offset int) ([]domain.Customer, error) {
	return s.customers.List(ctx, strings.TrimSpace(search), limit, offset)
}

// Get returns one customer.
func (s *CustomerService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

// Create stores a new customer.
func (s *CustomerService) Create(ctx context.Context, input CustomerInput) (*domain.Customer, error) {
	customer := &domain.Customer{
		Name:    input.Name,
		Email:   strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:   input.Phone,
		Address: input.Address,
		Notes:   input.Notes,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Update modifies a customer.
func (s *CustomerService) Update(ctx context.Context, id string, input CustomerInput) (*domain.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Name = input.Name
	customer.Email = strings.ToLower(strings.TrimSpace(input.Email))
	customer.Phone = input.Phone
	customer.Address = input.Address
	customer.Notes = input.Notes
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes a customer.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.customers.Delete(ctx, id)
}
