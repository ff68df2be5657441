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
	"github.com/Kevin6098/roomi-sub001/pkg/apierror"
)

type fakeSaleRepo struct {
	sales map[string]*domain.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]*domain.Sale)}
}

func (r *fakeSaleRepo) Create(_ context.Context, sale *domain.Sale) error {
	sale.ID = fmt.Sprintf("sale-%d", len(r.sales)+1)
	sale.CreatedAt = time.Now()
	stored := *sale
	r.sales[sale.ID] = &stored
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id string) (*domain.Sale, error) {
	sale, ok := r.sales[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *sale
	return &copied, nil
}

func (r *fakeSaleRepo) List(_ context.Context, _, _ int) ([]domain.Sale, error) {
	out := make([]domain.Sale, 0, len(r.sales))
	for _, sale := range r.sales {
		out = append(out, *sale)
	}
	return out, nil
}

func saleFixture(itemStatus domain.ItemStatus) (*SaleService, *fakeItemRepo, *capturingDispatcher) {
	item := availableItem("item-1")
	item.Status = itemStatus
	items := newFakeItemRepo(item)
	customers := newFakeCustomerRepo(&domain.Customer{ID: "cust-1", Name: "Hanako"})
	dispatcher := &capturingDispatcher{}
	return NewSaleService(newFakeSaleRepo(), items, customers, dispatcher), items, dispatcher
}

func saleInput() SaleCreateInput {
	return SaleCreateInput{
		ItemID:     "item-1",
		CustomerID: "cust-1",
		Price:      12000,
		Channel:    "mercari",
	}
}

func TestSaleService_Create(t *testing.T) {
	svc, items, dispatcher := saleFixture(domain.ItemStatusAvailable)
	actor := &domain.Identity{ID: "user-1", Role: domain.RoleStaff}

	sale, err := svc.Create(context.Background(), actor, saleInput())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sale.Reference, "SAL-"), "reference %q", sale.Reference)
	assert.False(t, sale.SoldAt.IsZero())

	item, err := items.GetByID(context.Background(), "item-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ItemStatusSold, item.Status)

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventSaleRecorded, dispatcher.published[0].Type)
	assert.Equal(t, "user-1", dispatcher.published[0].ActorID)
}

func TestSaleService_CreateRejectsNonAvailableItem(t *testing.T) {
	for _, status := range []domain.ItemStatus{
		domain.ItemStatusRented,
		domain.ItemStatusSold,
		domain.ItemStatusRetired,
	} {
		t.Run(string(status), func(t *testing.T) {
			svc, items, dispatcher := saleFixture(status)

			_, err := svc.Create(context.Background(), nil, saleInput())
			var apiErr *apierror.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, apierror.CodeConflict, apiErr.Code)
			assert.Equal(t, "item is not available for sale", apiErr.Message)

			item, err := items.GetByID(context.Background(), "item-1")
			require.NoError(t, err)
			assert.Equal(t, status, item.Status)
			assert.Empty(t, dispatcher.published)
		})
	}
}

func TestSaleService_CreateUnknownCustomer(t *testing.T) {
	svc, _, _ := saleFixture(domain.ItemStatusAvailable)
	input := saleInput()
	input.CustomerID = "missing"

	_, err := svc.Create(context.Background(), nil, input)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
