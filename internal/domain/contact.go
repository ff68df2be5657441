package domain

import "time"

// ContactStatus marks whether an inbound message has been dealt with.
type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "NEW"
	ContactStatusHandled ContactStatus = "HANDLED"
)

// Contact is an inbound message from the public contact form.
type Contact struct {
	ID        string
	Name      string
	Email     string
	Message   string
	Status    ContactStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
