package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kevin6098/roomi-sub001/internal/domain"
	"github.com/Kevin6098/roomi-sub001/internal/events"
	"github.com/Kevin6098/roomi-sub001/pkg/apierror"
)

type fakeContactRepo struct {
	contacts map[string]*domain.Contact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[string]*domain.Contact)}
}

func (r *fakeContactRepo) Create(_ context.Context, contact *domain.Contact) error {
	contact.ID = fmt.Sprintf("contact-%d", len(r.contacts)+1)
	now := time.Now()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	stored := *contact
	r.contacts[contact.ID] = &stored
	return nil
}

func (r *fakeContactRepo) Update(_ context.Context, contact *domain.Contact) error {
	if _, ok := r.contacts[contact.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *contact
	r.contacts[contact.ID] = &stored
	return nil
}

func (r *fakeContactRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.contacts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.contacts, id)
	return nil
}

func (r *fakeContactRepo) GetByID(_ context.Context, id string) (*domain.Contact, error) {
	contact, ok := r.contacts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *contact
	return &copied, nil
}

func (r *fakeContactRepo) List(_ context.Context, status *domain.ContactStatus, _, _ int) ([]domain.Contact, error) {
	var out []domain.Contact
	for _, contact := range r.contacts {
		if status != nil && contact.Status != *status {
			continue
		}
		out = append(out, *contact)
	}
	return out, nil
}

func contactFixture() (*ContactService, *capturingDispatcher) {
	dispatcher := &capturingDispatcher{}
	return NewContactService(newFakeContactRepo(), dispatcher), dispatcher
}

func TestContactService_CreatePublishesEvent(t *testing.T) {
	svc, dispatcher := contactFixture()

	contact, err := svc.Create(context.Background(), ContactCreateInput{
		Name:    "Hanako",
		Email:   "  Hanako@Example.COM ",
		Message: "Is the desk still available?",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ContactStatusNew, contact.Status)
	assert.Equal(t, "hanako@example.com", contact.Email)

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventContactReceived, dispatcher.published[0].Type)
}

func TestContactService_MarkHandled(t *testing.T) {
	svc, _ := contactFixture()

	contact, err := svc.Create(context.Background(), ContactCreateInput{
		Name:    "Hanako",
		Email:   "hanako@example.com",
		Message: "hello",
	})
	require.NoError(t, err)

	handled, err := svc.MarkHandled(context.Background(), contact.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ContactStatusHandled, handled.Status)
}

func TestContactService_MarkHandledTwiceConflicts(t *testing.T) {
	svc, _ := contactFixture()

	contact, err := svc.Create(context.Background(), ContactCreateInput{
		Name:    "Hanako",
		Email:   "hanako@example.com",
		Message: "hello",
	})
	require.NoError(t, err)

	_, err = svc.MarkHandled(context.Background(), contact.ID)
	require.NoError(t, err)

	_, err = svc.MarkHandled(context.Background(), contact.ID)
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.CodeConflict, apiErr.Code)
	assert.Equal(t, "contact already handled", apiErr.Message)
}
