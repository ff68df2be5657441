package events

import (
	"time"

	"github.com/Kevin6098/roomi-sub001/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventRentalOpened      EventType = "rental_opened"
	EventRentalReturned    EventType = "rental_returned"
	EventSaleRecorded      EventType = "sale_recorded"
	EventContactReceived   EventType = "contact_received"
	EventItemStatusChanged EventType = "item_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// RentalOpenedPayload payload.
type RentalOpenedPayload struct {
	RentalID   string    `json:"rental_id"`
	Reference  string    `json:"reference"`
	ItemID     string    `json:"item_id"`
	CustomerID string    `json:"customer_id"`
	DueDate    time.Time `json:"due_date"`
}

// RentalReturnedPayload payload.
type RentalReturnedPayload struct {
	RentalID   string    `json:"rental_id"`
	ItemID     string    `json:"item_id"`
	ReturnedAt time.Time `json:"returned_at"`
	WasOverdue bool      `json:"was_overdue"`
}

// SaleRecordedPayload payload.
type SaleRecordedPayload struct {
	SaleID    string `json:"sale_id"`
	Reference string `json:"reference"`
	ItemID    string `json:"item_id"`
	Price     int64  `json:"price"`
	Channel   string `json:"channel,omitempty"`
}

// ContactReceivedPayload payload.
type ContactReceivedPayload struct {
	ContactID string `json:"contact_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// ItemStatusChangedPayload payload.
type ItemStatusChangedPayload struct {
	ItemID    string            `json:"item_id"`
	OldStatus domain.ItemStatus `json:"old_status"`
	NewStatus domain.ItemStatus `json:"new_status"`
}
