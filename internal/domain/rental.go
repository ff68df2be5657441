package domain

import "time"

// RentalStatus is the rental lifecycle state.
type RentalStatus string

const (
	RentalStatusActive   RentalStatus = "ACTIVE"
	RentalStatusReturned RentalStatus = "RETURNED"
)

// Rental records an item being out with a customer.
type Rental struct {
	ID         string
	Reference  string
	ItemID     string
	CustomerID string
	StartDate  time.Time
	DueDate    time.Time
	ReturnedAt *time.Time
	Price      int64
	Deposit    int64
	Status     RentalStatus
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Overdue reports whether an active rental is past its due date.
func (r *Rental) Overdue(now time.Time) bool {
	return r.Status == RentalStatusActive && now.After(r.DueDate)
}
