package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fnb-ordering/internal/logger"
	"fnb-ordering/internal/models"
)

type fakeStore struct {
	placed            *models.CreateOrderRequest
	allCalls          int
	customerCalls     []int64
	placeOrderResult  *models.Order
	placeOrderErr     error
	allOrdersResult   []models.OrderView
	customerOrdersRes []models.OrderView
}

func (f *fakeStore) PlaceOrder(_ context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	f.placed = req
	return f.placeOrderResult, f.placeOrderErr
}

func (f *fakeStore) AllOrders(_ context.Context) ([]models.OrderView, error) {
	f.allCalls++
	return f.allOrdersResult, nil
}

func (f *fakeStore) OrdersForCustomer(_ context.Context, customerID int64) ([]models.OrderView, error) {
	f.customerCalls = append(f.customerCalls, customerID)
	return f.customerOrdersRes, nil
}

func newTestService(store *fakeStore) *Service {
	return NewService(store, nil, logger.New("order-test"))
}

func TestPlaceOrderRejectsInvalidRequestBeforeStore(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	_, err := svc.PlaceOrder(context.Background(), &models.CreateOrderRequest{}, "req-1")
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
	assert.Nil(t, store.placed, "store must not be touched for invalid input")
}

func TestPlaceOrderReturnsStoredOrder(t *testing.T) {
	store := &fakeStore{
		placeOrderResult: &models.Order{
			ID:          42,
			CustomerID:  3,
			Status:      models.StatusPending,
			TotalAmount: 2300,
		},
	}
	svc := newTestService(store)

	req := &models.CreateOrderRequest{
		CustomerID:     3,
		DeliveryOption: models.OptionPickup,
		MenuItems:      []models.MenuLineRequest{{MenuID: 1, Quantity: 2}},
	}

	order, err := svc.PlaceOrder(context.Background(), req, "req-2")
	require.NoError(t, err)
	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, int64(2300), order.TotalAmount)
	assert.Same(t, req, store.placed)
}

func TestListOrdersFiltersByRole(t *testing.T) {
	store := &fakeStore{
		allOrdersResult:   make([]models.OrderView, 3),
		customerOrdersRes: make([]models.OrderView, 1),
	}
	svc := newTestService(store)

	views, err := svc.ListOrders(context.Background(), models.RoleUser, 7)
	require.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, []int64{7}, store.customerCalls)
	assert.Zero(t, store.allCalls, "a plain user must never see the full listing")

	views, err = svc.ListOrders(context.Background(), models.RoleAdmin, 7)
	require.NoError(t, err)
	assert.Len(t, views, 3)
	assert.Equal(t, 1, store.allCalls)
}
