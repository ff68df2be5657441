package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Kevin6098/roomi-sub001/internal/domain"
	"github.com/Kevin6098/roomi-sub001/internal/events"
	"github.com/Kevin6098/roomi-sub001/internal/repository"
	"github.com/Kevin6098/roomi-sub001/pkg/apierror"
)

// ContactService manages inbound contact-form messages.
type ContactService struct {
	contacts   repository.ContactRepository
	dispatcher events.Dispatcher
}

// ContactCreateInput is the public contact-form payload.
type ContactCreateInput struct {
	Name    string
	Email   string
	Message string
}

// NewContactService constructs the service.
func NewContactService(contacts repository.ContactRepository, dispatcher events.Dispatcher) *ContactService {
	return &ContactService{contacts: contacts, dispatcher: dispatcher}
}

// Create stores an inbound message and announces it.
func (s *ContactService) Create(ctx context.Context, input ContactCreateInput) (*domain.Contact, error) {
	contact := &domain.Contact{
		Name:    input.Name,
		Email:   strings.ToLower(strings.TrimSpace(input.Email)),
		Message: input.Message,
		Status:  domain.ContactStatusNew,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventContactReceived,
			Timestamp: time.Now(),
			Payload: events.ContactReceivedPayload{
				ContactID: contact.ID,
				Name:      contact.Name,
				Email:     contact.Email,
			},
		})
	}
	return contact, nil
}

// List returns messages, optionally filtered by status.
func (s *ContactService) List(ctx context.Context, status *domain.ContactStatus, limit, offset int) ([]domain.Contact, error) {
	return s.contacts.List(ctx, status, limit, offset)
}

// Get returns one message.
func (s *ContactService) Get(ctx context.Context, id string) (*domain.Contact, error) {
	return s.contacts.GetByID(ctx, id)
}

// MarkHandled transitions a NEW message to HANDLED.
func (s *ContactService) MarkHandled(ctx context.Context, id string) (*domain.Contact, error) {
	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact.Status == domain.ContactStatusHandled {
		return nil, apierror.NewConflict("contact already handled")
	}

	contact.Status = domain.ContactStatusHandled
	if err := s.contacts.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Delete removes a message.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.contacts.Delete(ctx, id)
}
