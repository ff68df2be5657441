package dto

import (
	"strings"
	"time"
)

// ItemRequest payload for item create/update.
type ItemRequest struct {
	CategoryID      string `json:"category_id" validate:"required"`
	SKU             string `json:"sku" validate:"required"`
	NameEN          string `json:"name_en" validate:"required"`
	NameJA          string `json:"name_ja"`
	Condition       string `json:"condition" validate:"required,oneof=NEW GOOD FAIR POOR"`
	AcquisitionCost int64  `json:"acquisition_cost" validate:"gte=0"`
	RentalPrice     int64  `json:"rental_price" validate:"gte=0"`
	SalePrice       int64  `json:"sale_price" validate:"gte=0"`
	Status          string `json:"status" validate:"omitempty,oneof=AVAILABLE RENTED SOLD RETIRED"`
	Notes           string `json:"notes"`
}

func (r *ItemRequest) Normalize() {
	r.SKU = strings.ToUpper(strings.TrimSpace(r.SKU))
	r.NameEN = strings.TrimSpace(r.NameEN)
	r.NameJA = strings.TrimSpace(r.NameJA)
	r.Condition = strings.ToUpper(strings.TrimSpace(r.Condition))
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
}

// ItemListQuery describes item listing filters.
type ItemListQuery struct {
	CategoryID string `query:"category_id" json:"category_id"`
	Status     string `query:"status" json:"status" validate:"omitempty,oneof=AVAILABLE RENTED SOLD RETIRED"`
	Search     string `query:"search" json:"search"`
	Limit      int    `query:"limit" json:"limit" validate:"gte=0,lte=200"`
	Offset     int    `query:"offset" json:"offset" validate:"gte=0"`
}

func (q *ItemListQuery) Normalize() {
	q.Status = strings.ToUpper(strings.TrimSpace(q.Status))
	q.Search = strings.TrimSpace(q.Search)
	if q.Limit == 0 {
		q.Limit = 50
	}
}

// ItemResponse item projection.
type ItemResponse struct {
	ID              string    `json:"id"`
	CategoryID      string    `json:"category_id"`
	SKU             string    `json:"sku"`
	NameEN          string    `json:"name_en"`
	NameJA          string    `json:"name_ja"`
	Condition       string    `json:"condition"`
	AcquisitionCost int64     `json:"acquisition_cost"`
	RentalPrice     int64     `json:"rental_price"`
	SalePrice       int64     `json:"sale_price"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
