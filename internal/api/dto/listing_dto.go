package dto

import (
	"strings"
	"time"
)

// ListingRequest payload for listing create/update.
type ListingRequest struct {
	ItemID    string `json:"item_id" validate:"required"`
	Platform  string `json:"platform" validate:"required"`
	URL       string `json:"url" validate:"omitempty,url"`
	ListPrice int64  `json:"list_price" validate:"gte=0"`
	Status    string `json:"status" validate:"omitempty,oneof=DRAFT ACTIVE ENDED"`
}

func (r *ListingRequest) Normalize() {
	r.Platform = strings.TrimSpace(r.Platform)
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
}

// ListingListQuery describes listing pagination.
type ListingListQuery struct {
	ItemID string `query:"item_id" json:"item_id"`
	Limit  int    `query:"limit" json:"limit" validate:"gte=0,lte=200"`
	Offset int    `query:"offset" json:"offset" validate:"gte=0"`
}

func (q *ListingListQuery) Normalize() {
	if q.Limit == 0 {
		q.Limit = 50
	}
}

// ListingResponse listing projection.
type ListingResponse struct {
	ID        string     `json:"id"`
	ItemID    string     `json:"item_id"`
	Platform  string     `json:"platform"`
	URL       string     `json:"url,omitempty"`
	ListPrice int64      `json:"list_price"`
	Status    string     `json:"status"`
	ListedAt  *time.Time `json:"listed_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
