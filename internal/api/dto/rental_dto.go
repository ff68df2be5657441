package dto

import (
	"strings"
	"time"
)

// CreateRentalRequest payload for opening a rental.
type CreateRentalRequest struct {
	ItemID     string    `json:"item_id" validate:"required"`
	CustomerID string    `json:"customer_id" validate:"required"`
	StartDate  time.Time `json:"start_date" validate:"required"`
	DueDate    time.Time `json:"due_date" validate:"required,gtfield=StartDate"`
	Price      int64     `json:"price" validate:"gte=0"`
	Deposit    int64     `json:"deposit" validate:"gte=0"`
	Notes      string    `json:"notes"`
}

// RentalListQuery describes rental listing filters.
type RentalListQuery struct {
	CustomerID string `query:"customer_id" json:"customer_id"`
	ItemID     string `query:"item_id" json:"item_id"`
	Status     string `query:"status" json:"status" validate:"omitempty,oneof=ACTIVE RETURNED"`
	Overdue    bool   `query:"overdue" json:"overdue"`
	Limit      int    `query:"limit" json:"limit" validate:"gte=0,lte=200"`
	Offset     int    `query:"offset" json:"offset" validate:"gte=0"`
}

func (q *RentalListQuery) Normalize() {
	q.Status = strings.ToUpper(strings.TrimSpace(q.Status))
	if q.Limit == 0 {
		q.Limit = 50
	}
}

// RentalResponse rental projection.
type RentalResponse struct {
	ID         string     `json:"id"`
	Reference  string     `json:"reference"`
	ItemID     string     `json:"item_id"`
	CustomerID string     `json:"customer_id"`
	StartDate  time.Time  `json:"start_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
	Price      int64      `json:"price"`
	Deposit    int64      `json:"deposit"`
	Status     string     `json:"status"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
