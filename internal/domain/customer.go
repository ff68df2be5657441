package domain

import "time"

// Customer is a renter or buyer.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
