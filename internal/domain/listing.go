package domain

import "time"

// ListingStatus is a listing's publication state.
type ListingStatus string

const (
	ListingStatusDraft  ListingStatus = "DRAFT"
	ListingStatusActive ListingStatus = "ACTIVE"
	ListingStatusEnded  ListingStatus = "ENDED"
)

// Listing is an external-marketplace advertisement for an item.
type Listing struct {
	ID        string
	ItemID    string
	Platform  string
	URL       string
	ListPrice int64
	Status    ListingStatus
	ListedAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
