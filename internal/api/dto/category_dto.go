package dto

import (
	"strings"
	"time"
)

// CategoryRequest payload for category create/update.
type CategoryRequest struct {
	NameEN string `json:"name_en" validate:"required"`
	NameJA string `json:"name_ja"`
	Slug   string `json:"slug" validate:"required"`
}

func (r *CategoryRequest) Normalize() {
	r.NameEN = strings.TrimSpace(r.NameEN)
	r.NameJA = strings.TrimSpace(r.NameJA)
	r.Slug = strings.ToLower(strings.TrimSpace(r.Slug))
}

// CategoryResponse category projection.
type CategoryResponse struct {
	ID        string    `json:"id"`
	NameEN    string    `json:"name_en"`
	NameJA    string    `json:"name_ja"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
