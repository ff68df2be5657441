package dto

import (
	"strings"
	"time"
)

// CustomerRequest payload for customer create/update.
type CustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

func (r *CustomerRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
}

// CustomerListQuery describes customer search parameters.
type CustomerListQuery struct {
	Search string `query:"search" json:"search"`
	Limit  int    `query:"limit" json:"limit" validate:"gte=0,lte=200"`
	Offset int    `query:"offset" json:"offset" validate:"gte=0"`
}

func (q *CustomerListQuery) Normalize() {
	q.Search = strings.TrimSpace(q.Search)
	if q.Limit == 0 {
		q.Limit = 50
	}
}

// CustomerResponse customer projection.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
