package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kevin6098/roomi-sub001/internal/domain"
	"github.com/Kevin6098/roomi-sub001/internal/events"
	"github.com/Kevin6098/roomi-sub001/internal/repository"
	"github.com/Kevin6098/roomi-sub001/pkg/apierror"
)

type fakeItemRepo struct {
	items map[string]*domain.Item
}

func newFakeItemRepo(items ...*domain.Item) *fakeItemRepo {
	repo := &fakeItemRepo{items: make(map[string]*domain.Item)}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (r *fakeItemRepo) Create(_ context.Context, item *domain.Item) error {
	item.ID = fmt.Sprintf("item-%d", len(r.items)+1)
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *domain.Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id string) (*domain.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *item
	return &copied, nil
}

func (r *fakeItemRepo) GetBySKU(_ context.Context, sku string) (*domain.Item, error) {
	for _, item := range r.items {
		if item.SKU == sku {
			copied := *item
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeItemRepo) ListWithFilter(_ context.Context, _ repository.ItemFilter) ([]domain.Item, error) {
	out := make([]domain.Item, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[string]*domain.Customer
}

func newFakeCustomerRepo(customers ...*domain.Customer) *fakeCustomerRepo {
	repo := &fakeCustomerRepo{customers: make(map[string]*domain.Customer)}
	for _, customer := range customers {
		repo.customers[customer.ID] = customer
	}
	return repo
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *domain.Customer) error {
	customer.ID = fmt.Sprintf("cust-%d", len(r.customers)+1)
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, customer *domain.Customer) error {
	if _, ok := r.customers[customer.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.customers[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return customer, nil
}

func (r *fakeCustomerRepo) List(_ context.Context, _ string, _, _ int) ([]domain.Customer, error) {
	out := make([]domain.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		out = append(out, *customer)
	}
	return out, nil
}

type fakeRentalRepo struct {
	rentals map[string]*domain.Rental
}

func newFakeRentalRepo() *fakeRentalRepo {
	return &fakeRentalRepo{rentals: make(map[string]*domain.Rental)}
}

func (r *fakeRentalRepo) Create(_ context.Context, rental *domain.Rental) error {
	rental.ID = fmt.Sprintf("rental-%d", len(r.rentals)+1)
	now := time.Now()
	rental.CreatedAt = now
	rental.UpdatedAt = now
	stored := *rental
	r.rentals[rental.ID] = &stored
	return nil
}

func (r *fakeRentalRepo) Update(_ context.Context, rental *domain.Rental) error {
	if _, ok := r.rentals[rental.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *rental
	r.rentals[rental.ID] = &stored
	return nil
}

func (r *fakeRentalRepo) GetByID(_ context.Context, id string) (*domain.Rental, error) {
	rental, ok := r.rentals[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *rental
	return &copied, nil
}

func (r *fakeRentalRepo) ListWithFilter(_ context.Context, _ repository.RentalFilter) ([]domain.Rental, error) {
	out := make([]domain.Rental, 0, len(r.rentals))
	for _, rental := range r.rentals {
		out = append(out, *rental)
	}
	return out, nil
}

type capturingDispatcher struct {
	published []events.Event
}

func (d *capturingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *capturingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func availableItem(id string) *domain.Item {
	return &domain.Item{
		ID:         id,
		CategoryID: "cat-1",
		SKU:        "SKU-" + id,
		NameEN:     "Sample",
		Condition:  domain.ConditionGood,
		Status:     domain.ItemStatusAvailable,
	}
}

func rentalFixture(t *testing.T) (*RentalService, *fakeItemRepo, *fakeRentalRepo, *capturingDispatcher) {
	t.Helper()
	items := newFakeItemRepo(availableItem("item-1"))
	customers := newFakeCustomerRepo(&domain.Customer{ID: "cust-1", Name: "Hanako"})
	rentals := newFakeRentalRepo()
	dispatcher := &capturingDispatcher{}
	svc := NewRentalService(rentals, items, customers, dispatcher)
	return svc, items, rentals, dispatcher
}

func rentalInput() RentalCreateInput {
	start := time.Now()
	return RentalCreateInput{
		ItemID:     "item-1",
		CustomerID: "cust-1",
		StartDate:  start,
		DueDate:    start.Add(7 * 24 * time.Hour),
		Price:      5000,
		Deposit:    10000,
	}
}

func TestRentalService_Create(t *testing.T) {
	svc, items, _, dispatcher := rentalFixture(t)
	actor := &domain.Identity{ID: "user-1", Role: domain.RoleStaff}

	rental, err := svc.Create(context.Background(), actor, rentalInput())
	require.NoError(t, err)

	assert.Equal(t, domain.RentalStatusActive, rental.Status)
	assert.True(t, strings.HasPrefix(rental.Reference, "RNT-"), "reference %q", rental.Reference)

	item, err := items.GetByID(context.Background(), "item-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ItemStatusRented, item.Status)

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventRentalOpened, dispatcher.published[0].Type)
	assert.Equal(t, "user-1", dispatcher.published[0].ActorID)
}

func TestRentalService_CreateRejectsUnavailableItem(t *testing.T) {
	svc, items, _, _ := rentalFixture(t)
	item, err := items.GetByID(context.Background(), "item-1")
	require.NoError(t, err)
	item.Status = domain.ItemStatusSold
	require.NoError(t, items.Update(context.Background(), item))

	_, err = svc.Create(context.Background(), nil, rentalInput())
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.CodeConflict, apiErr.Code)
}

func TestRentalService_CreateUnknownCustomer(t *testing.T) {
	svc, _, _, _ := rentalFixture(t)
	input := rentalInput()
	input.CustomerID = "missing"

	_, err := svc.Create(context.Background(), nil, input)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestRentalService_Return(t *testing.T) {
	svc, items, _, dispatcher := rentalFixture(t)

	rental, err := svc.Create(context.Background(), nil, rentalInput())
	require.NoError(t, err)

	returned, err := svc.Return(context.Background(), nil, rental.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RentalStatusReturned, returned.Status)
	require.NotNil(t, returned.ReturnedAt)

	item, err := items.GetByID(context.Background(), "item-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ItemStatusAvailable, item.Status)

	require.Len(t, dispatcher.published, 2)
	assert.Equal(t, events.EventRentalReturned, dispatcher.published[1].Type)
}

func TestRentalService_ReturnTwiceConflicts(t *testing.T) {
	svc, _, _, _ := rentalFixture(t)

	rental, err := svc.Create(context.Background(), nil, rentalInput())
	require.NoError(t, err)

	_, err = svc.Return(context.Background(), nil, rental.ID)
	require.NoError(t, err)

	_, err = svc.Return(context.Background(), nil, rental.ID)
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.CodeConflict, apiErr.Code)
	assert.Equal(t, "rental already returned", apiErr.Message)
}
