package domain

import "time"

// Sale records an item leaving inventory permanently.
type Sale struct {
	ID         string
	Reference  string
	ItemID     string
	CustomerID string
	SoldAt     time.Time
	Price      int64
	Channel    string
	Notes      string
	CreatedAt  time.Time
}
