package delivery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fnb-ordering/internal/logger"
	"fnb-ordering/internal/models"
)

type fakeStore struct {
	updatedOrderID int64
	updatedStatus  models.OrderStatus
	updateCalls    int
	oldStatus      models.OrderStatus
	updateErr      error
}

func (f *fakeStore) ListDeliveries(_ context.Context) ([]models.DeliveryView, error) {
	return nil, nil
}

func (f *fakeStore) UpdateStatus(_ context.Context, orderID int64, status models.OrderStatus) (models.OrderStatus, error) {
	f.updateCalls++
	f.updatedOrderID = orderID
	f.updatedStatus = status
	return f.oldStatus, f.updateErr
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil, logger.New("delivery-test"))

	err := svc.UpdateStatus(context.Background(), 9, "teleported", "req-1")
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
	assert.Zero(t, store.updateCalls)
}

func TestUpdateStatusRejectsBadOrderID(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil, logger.New("delivery-test"))

	err := svc.UpdateStatus(context.Background(), 0, models.StatusConfirmed, "req-2")
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
	assert.Zero(t, store.updateCalls)
}

func TestUpdateStatusDelegatesToStore(t *testing.T) {
	store := &fakeStore{oldStatus: models.StatusPending}
	svc := NewService(store, nil, logger.New("delivery-test"))

	err := svc.UpdateStatus(context.Background(), 9, models.StatusConfirmed, "req-3")
	require.NoError(t, err)
	assert.Equal(t, int64(9), store.updatedOrderID)
	assert.Equal(t, models.StatusConfirmed, store.updatedStatus)
}
