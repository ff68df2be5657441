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

// InventoryService manages categories and items.
type InventoryService struct {
	categories repository.CategoryRepository
	items      repository.ItemRepository
	dispatcher events.Dispatcher
}

// CategoryInput describes category create/update payloads.
type CategoryInput struct {
	NameEN string
	NameJA string
	Slug   string
}

// ItemInput describes item create/update payloads.
type ItemInput struct {
	CategoryID      string
	SKU             string
	NameEN          string
	NameJA          string
	Condition       domain.ItemCondition
	AcquisitionCost int64
	RentalPrice     int64
	SalePrice       int64
	Status          domain.ItemStatus
	Notes           string
}

// NewInventoryService constructs the service.
func NewInventoryService(categories repository.CategoryRepository, items repository.ItemRepository, dispatcher events.Dispatcher) *InventoryService {
	return &InventoryService{categories: categories, items: items, dispatcher: dispatcher}
}

// ListCategories returns all categories.
func (s *InventoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// GetCategory returns one category.
func (s *InventoryService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

// CreateCategory stores a new category.
func (s *InventoryService) CreateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error) {
	category := &domain.Category{
		NameEN: input.NameEN,
		NameJA: input.NameJA,
		Slug:   input.Slug,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apierror.NewConflict("slug already in use")
		}
		return nil, err
	}
	return category, nil
}

// UpdateCategory modifies a category.
func (s *InventoryService) UpdateCategory(ctx context.Context, id string, input CategoryInput) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.NameEN = input.NameEN
	category.NameJA = input.NameJA
	category.Slug = input.Slug
	if err := s.categories.Update(ctx, category); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apierror.NewConflict("slug already in use")
		}
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category that has no items left.
func (s *InventoryService) DeleteCategory(ctx context.Context, id string) error {
	items, err := s.items.ListWithFilter(ctx, repository.ItemFilter{CategoryID: &id, Limit: 1})
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return apierror.NewConflict("category still has items")
	}
	return s.categories.Delete(ctx, id)
}

// ListItems returns items matching the filter.
func (s *InventoryService) ListItems(ctx context.Context, filter repository.ItemFilter) ([]domain.Item, error) {
	return s.items.ListWithFilter(ctx, filter)
}

// GetItem returns one item.
func (s *InventoryService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	return s.items.GetByID(ctx, id)
}

// CreateItem stores a new inventory item.
func (s *InventoryService) CreateItem(ctx context.Context, input ItemInput) (*domain.Item, error) {
	if _, err := s.categories.GetByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.ItemStatusAvailable
	}

	item := &domain.Item{
		CategoryID:      input.CategoryID,
		SKU:             input.SKU,
		NameEN:          input.NameEN,
		NameJA:          input.NameJA,
		Condition:       input.Condition,
		AcquisitionCost: input.AcquisitionCost,
		RentalPrice:     input.RentalPrice,
		SalePrice:       input.SalePrice,
		Status:          status,
		Notes:           input.Notes,
	}
	if err := s.items.Create(ctx, item); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apierror.NewConflict("sku already in use")
		}
		return nil, err
	}
	return item, nil
}

// UpdateItem modifies an item and publishes a status-change event when the
// status moved.
func (s *InventoryService) UpdateItem(ctx context.Context, id string, input ItemInput) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.CategoryID != item.CategoryID {
		if _, err := s.categories.GetByID(ctx, input.CategoryID); err != nil {
			return nil, err
		}
	}

	oldStatus := item.Status
	item.CategoryID = input.CategoryID
	item.SKU = input.SKU
	item.NameEN = input.NameEN
	item.NameJA = input.NameJA
	item.Condition = input.Condition
	item.AcquisitionCost = input.AcquisitionCost
	item.RentalPrice = input.RentalPrice
	item.SalePrice = input.SalePrice
	if input.Status != "" {
		item.Status = input.Status
	}
	item.Notes = input.Notes

	if err := s.items.Update(ctx, item); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apierror.NewConflict("sku already in use")
		}
		return nil, err
	}

	if item.Status != oldStatus && s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventItemStatusChanged,
			Timestamp: time.Now(),
			Payload: events.ItemStatusChangedPayload{
				ItemID:    item.ID,
				OldStatus: oldStatus,
				NewStatus: item.Status,
			},
		})
	}
	return item, nil
}

// DeleteItem removes an item that is not rented or sold.
func (s *InventoryService) DeleteItem(ctx context.Context, id string) error {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item.Status == domain.ItemStatusRented || item.Status == domain.ItemStatusSold {
		return apierror.NewConflict("item is rented or sold")
	}
	return s.items.Delete(ctx, id)
}
