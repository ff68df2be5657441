package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Kevin6098/roomi-sub001/internal/domain"
	"github.com/Kevin6098/roomi-sub001/internal/events"
	"github.com/Kevin6098/roomi-sub001/internal/repository"
	"github.com/Kevin6098/roomi-sub001/pkg/apierror"
)

// SaleService records sales and the terminal item transition they imply.
type SaleService struct {
	sales      repository.SaleRepository
	items      repository.ItemRepository
	customers  repository.CustomerRepository
	dispatcher events.Dispatcher
}

// SaleCreateInput describes a new sale.
type SaleCreateInput struct {
	ItemID     string
	CustomerID string
	SoldAt     time.Time
	Price      int64
	Channel    string
	Notes      string
}

// NewSaleService constructs the service.
func NewSaleService(sales repository.SaleRepository, items repository.ItemRepository, customers repository.CustomerRepository, dispatcher events.Dispatcher) *SaleService {
	return &SaleService{sales: sales, items: items, customers: customers, dispatcher: dispatcher}
}

// Create records a sale for an available item and marks the item SOLD.
// Rented items must be returned first.
func (s *SaleService) Create(ctx context.Context, actor *domain.Identity, input SaleCreateInput) (*domain.Sale, error) {
	item, err := s.items.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}
	if item.Status != domain.ItemStatusAvailable {
		return nil, apierror.NewConflict("item is not available for sale")
	}
	if _, err := s.customers.GetByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	soldAt := input.SoldAt
	if soldAt.IsZero() {
		soldAt = time.Now()
	}

	sale := &domain.Sale{
		Reference:  newReference("SAL"),
		ItemID:     input.ItemID,
		CustomerID: input.CustomerID,
		SoldAt:     soldAt,
		Price:      input.Price,
		Channel:    input.Channel,
		Notes:      input.Notes,
	}
	if err := s.sales.Create(ctx, sale); err != nil {
		return nil, err
	}

	item.Status = domain.ItemStatusSold
	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		event := events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventSaleRecorded,
			Timestamp: time.Now(),
			Payload: events.SaleRecordedPayload{
				SaleID:    sale.ID,
				Reference: sale.Reference,
				ItemID:    sale.ItemID,
				Price:     sale.Price,
				Channel:   sale.Channel,
			},
		}
		if actor != nil {
			event.ActorID = actor.ID
		}
		_ = s.dispatcher.Publish(ctx, event)
	}
	return sale, nil
}

// Get returns one sale.
func (s *SaleService) Get(ctx context.Context, id string) (*domain.Sale, error) {
	return s.sales.GetByID(ctx, id)
}

// List returns recorded sales, newest first.
func (s *SaleService) List(ctx context.Context, limit, offset int) ([]domain.Sale, error) {
	return s.sales.List(ctx, limit, offset)
}
