package dto

import (
	"strings"
	"time"
)

// CreateSaleRequest payload for recording a sale.
type CreateSaleRequest struct {
	ItemID     string    `json:"item_id" validate:"required"`
	CustomerID string    `json:"customer_id" validate:"required"`
	SoldAt     time.Time `json:"sold_at"`
	Price      int64     `json:"price" validate:"gte=0"`
	Channel    string    `json:"channel"`
	Notes      string    `json:"notes"`
}

func (r *CreateSaleRequest) Normalize() {
	r.Channel = strings.TrimSpace(r.Channel)
}

// SaleListQuery describes sale listing parameters.
type SaleListQuery struct {
	Limit  int `query:"limit" json:"limit" validate:"gte=0,lte=200"`
	Offset int `query:"offset" json:"offset" validate:"gte=0"`
}

func (q *SaleListQuery) Normalize() {
	if q.Limit == 0 {
		q.Limit = 50
	}
}

// SaleResponse sale projection.
type SaleResponse struct {
	ID         string    `json:"id"`
	Reference  string    `json:"reference"`
	ItemID     string    `json:"item_id"`
	CustomerID string    `json:"customer_id"`
	SoldAt     time.Time `json:"sold_at"`
	Price      int64     `json:"price"`
	Channel    string    `json:"channel,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
