package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Kevin6098/roomi-sub001/internal/domain"
	"github.com/Kevin6098/roomi-sub001/internal/events"
	"github.com/Kevin6098/roomi-sub001/internal/repository"
	"github.com/Kevin6098/roomi-sub001/pkg/apierror"
)

// RentalService coordinates rental workflows and the item status
// transitions they imply.
type RentalService struct {
	rentals    repository.RentalRepository
	items      repository.ItemRepository
	customers  repository.CustomerRepository
	dispatcher events.Dispatcher
}

// RentalCreateInput describes a new rental.
type RentalCreateInput struct {
	ItemID     string
	CustomerID string
	StartDate  time.Time
	DueDate    time.Time
	Price      int64
	Deposit    int64
	Notes      string
}

// NewRentalService constructs the service.
func NewRentalService(rentals repository.RentalRepository, items repository.ItemRepository, customers repository.CustomerRepository, dispatcher events.Dispatcher) *RentalService {
	return &RentalService{rentals: rentals, items: items, customers: customers, dispatcher: dispatcher}
}

// Create opens a rental for an available item and marks the item RENTED.
func (s *RentalService) Create(ctx context.Context, actor *domain.Identity, input RentalCreateInput) (*domain.Rental, error) {
	item, err := s.items.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}
	if item.Status != domain.ItemStatusAvailable {
		return nil, apierror.NewConflict("item is not available for rental")
	}
	if _, err := s.customers.GetByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	rental := &domain.Rental{
		Reference:  newReference("RNT"),
		ItemID:     input.ItemID,
		CustomerID: input.CustomerID,
		StartDate:  input.StartDate,
		DueDate:    input.DueDate,
		Price:      input.Price,
		Deposit:    input.Deposit,
		Status:     domain.RentalStatusActive,
		Notes:      input.Notes,
	}
	if err := s.rentals.Create(ctx, rental); err != nil {
		return nil, err
	}

	item.Status = domain.ItemStatusRented
	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}

	s.publish(ctx, actor, events.EventRentalOpened, events.RentalOpenedPayload{
		RentalID:   rental.ID,
		Reference:  rental.Reference,
		ItemID:     rental.ItemID,
		CustomerID: rental.CustomerID,
		DueDate:    rental.DueDate,
	})
	return rental, nil
}

// Return closes an active rental and makes the item available again.
func (s *RentalService) Return(ctx context.Context, actor *domain.Identity, id string) (*domain.Rental, error) {
	rental, err := s.rentals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusActive {
		return nil, apierror.NewConflict("rental already returned")
	}

	now := time.Now()
	wasOverdue := rental.Overdue(now)
	rental.Status = domain.RentalStatusReturned
	rental.ReturnedAt = &now
	if err := s.rentals.Update(ctx, rental); err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, rental.ItemID)
	if err != nil {
		return nil, err
	}
	if item.Status == domain.ItemStatusRented {
		item.Status = domain.ItemStatusAvailable
		if err := s.items.Update(ctx, item); err != nil {
			return nil, err
		}
	}

	s.publish(ctx, actor, events.EventRentalReturned, events.RentalReturnedPayload{
		RentalID:   rental.ID,
		ItemID:     rental.ItemID,
		ReturnedAt: now,
		WasOverdue: wasOverdue,
	})
	return rental, nil
}

// Get returns one rental.
func (s *RentalService) Get(ctx context.Context, id string) (*domain.Rental, error) {
	return s.rentals.GetByID(ctx, id)
}

// List returns rentals matching the filter.
func (s *RentalService) List(ctx context.Context, filter repository.RentalFilter) ([]domain.Rental, error) {
	return s.rentals.ListWithFilter(ctx, filter)
}

func (s *RentalService) publish(ctx context.Context, actor *domain.Identity, eventType events.EventType, payload any) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	}
	if actor != nil {
		event.ActorID = actor.ID
	}
	_ = s.dispatcher.Publish(ctx, event)
}

// newReference builds a short human-readable reference code.
func newReference(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.NewString()[:8])
}
