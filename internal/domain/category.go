package domain

import "time"

// Category groups inventory items. Names are bilingual; the English name is
// the canonical one.
type Category struct {
	ID        string
	NameEN    string
	NameJA    string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
