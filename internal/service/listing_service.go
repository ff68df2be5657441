package service

import (
	"context"
	"time"

	"github.com/Kevin6098/roomi-sub001/internal/domain"
	"github.com/Kevin6098/roomi-sub001/internal/repository"
	"github.com/Kevin6098/roomi-sub001/pkg/apierror"
)

// ListingService manages marketplace listings for items.
type ListingService struct {
	listings repository.ListingRepository
	items    repository.ItemRepository
}

// ListingInput describes listing create/update payloads.
type ListingInput struct {
	ItemID    string
	Platform  string
	URL       string
	ListPrice int64
	Status    domain.ListingStatus
}

// NewListingService constructs the service.
func NewListingService(listings repository.ListingRepository, items repository.ItemRepository) *ListingService {
	return &ListingService{listings: listings, items: items}
}

// List returns listings, newest first.
func (s *ListingService) List(ctx context.Context, limit, offset int) ([]domain.Listing, error) {
	return s.listings.List(ctx, limit, offset)
}

// ListByItem returns the listings for one item.
func (s *ListingService) ListByItem(ctx context.Context, itemID string) ([]domain.Listing, error) {
	return s.listings.ListByItem(ctx, itemID)
}

// Get returns one listing.
func (s *ListingService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	return s.listings.GetByID(ctx, id)
}

// Create stores a listing; activating one for a sold item is rejected.
func (s *ListingService) Create(ctx context.Context, input ListingInput) (*domain.Listing, error) {
	item, err := s.items.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.ListingStatusDraft
	}
	if status == domain.ListingStatusActive && item.Status == domain.ItemStatusSold {
		return nil, apierror.NewConflict("item already sold")
	}

	listing := &domain.Listing{
		ItemID:    input.ItemID,
		Platform:  input.Platform,
		URL:       input.URL,
		ListPrice: input.ListPrice,
		Status:    status,
	}
	if status == domain.ListingStatusActive {
		now := time.Now()
		listing.ListedAt = &now
	}
	if err := s.listings.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Update modifies a listing, stamping ListedAt when it first goes ACTIVE.
func (s *ListingService) Update(ctx context.Context, id string, input ListingInput) (*domain.Listing, error) {
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status == domain.ListingStatusActive && listing.Status != domain.ListingStatusActive {
		item, err := s.items.GetByID(ctx, listing.ItemID)
		if err != nil {
			return nil, err
		}
		if item.Status == domain.ItemStatusSold {
			return nil, apierror.NewConflict("item already sold")
		}
		now := time.Now()
		listing.ListedAt = &now
	}

	listing.Platform = input.Platform
	listing.URL = input.URL
	listing.ListPrice = input.ListPrice
	if input.Status != "" {
		listing.Status = input.Status
	}
	if err := s.listings.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Delete removes a listing.
func (s *ListingService) Delete(ctx context.Context, id string) error {
	return s.listings.Delete(ctx, id)
}
