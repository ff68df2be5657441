package dto

import (
	"strings"
	"time"
)

// CreateContactRequest is the public contact-form payload.
type CreateContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

func (r *CreateContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Message = strings.TrimSpace(r.Message)
}

// ContactListQuery describes contact listing filters.
type ContactListQuery struct {
	Status string `query:"status" json:"status" validate:"omitempty,oneof=NEW HANDLED"`
	Limit  int    `query:"limit" json:"limit" validate:"gte=0,lte=200"`
	Offset int    `query:"offset" json:"offset" validate:"gte=0"`
}

func (q *ContactListQuery) Normalize() {
	q.Status = strings.ToUpper(strings.TrimSpace(q.Status))
	if q.Limit == 0 {
		q.Limit = 50
	}
}

// ContactResponse contact projection.
type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
