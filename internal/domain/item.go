package domain

import "time"

// ItemStatus tracks where an item is in its rental/resale lifecycle.
type ItemStatus string

const (
	ItemStatusAvailable ItemStatus = "AVAILABLE"
	ItemStatusRented    ItemStatus = "RENTED"
	ItemStatusSold      ItemStatus = "SOLD"
	ItemStatusRetired   ItemStatus = "RETIRED"
)

// ItemCondition grades physical condition at acquisition.
type ItemCondition string

const (
	ConditionNew  ItemCondition = "NEW"
	ConditionGood ItemCondition = "GOOD"
	ConditionFair ItemCondition = "FAIR"
	ConditionPoor ItemCondition = "POOR"
)

// Item is a single physical unit of inventory. Money amounts are stored in
// the smallest currency unit.
type Item struct {
	ID              string
	CategoryID      string
	SKU             string
	NameEN          string
	NameJA          string
	Condition       ItemCondition
	AcquisitionCost int64
	RentalPrice     int64
	SalePrice       int64
	Status          ItemStatus
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
