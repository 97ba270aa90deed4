package delivery

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fnb-ordering/internal/database"
	"fnb-ordering/internal/models"
)

type fakeRow struct {
	status models.OrderStatus
	err    error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*models.OrderStatus)) = r.status
	return nil
}

type execCall struct {
	sql  string
	args []interface{}
}

type fakeQuerier struct {
	status    models.OrderStatus
	statusErr error

	execs         []execCall
	failDeliveryW error
	failOrderW    error
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, _ ...interface{}) pgx.Row {
	if sql != database.GetDeliveryStatusSQL {
		return fakeRow{err: fmt.Errorf("unexpected QueryRow: %s", sql)}
	}
	return fakeRow{status: f.status, err: f.statusErr}
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	switch sql {
	case database.UpdateDeliveryStatusSQL:
		if f.failDeliveryW != nil {
			return pgconn.CommandTag{}, f.failDeliveryW
		}
	case database.UpdateOrderStatusSQL:
		if f.failOrderW != nil {
			return pgconn.CommandTag{}, f.failOrderW
		}
	}
	f.execs = append(f.execs, execCall{sql: sql, args: args})
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (f *fakeQuerier) Query(_ context.Context, sql string, _ ...interface{}) (pgx.Rows, error) {
	return nil, fmt.Errorf("unexpected Query: %s", sql)
}

func TestUpdateStatusTxWritesBothRows(t *testing.T) {
	q := &fakeQuerier{status: models.StatusPending}

	old, err := updateStatusTx(context.Background(), q, 9, models.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, old)

	require.Len(t, q.execs, 2)
	assert.Equal(t, database.UpdateDeliveryStatusSQL, q.execs[0].sql)
	assert.Equal(t, database.UpdateOrderStatusSQL, q.execs[1].sql)
	for _, call := range q.execs {
		assert.Equal(t, []interface{}{models.StatusConfirmed, int64(9)}, call.args)
	}
}

func TestUpdateStatusTxRejectsInvalidTransition(t *testing.T) {
	q := &fakeQuerier{status: models.StatusDelivered}

	_, err := updateStatusTx(context.Background(), q, 9, models.StatusConfirmed)
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
	assert.Empty(t, q.execs, "no writes on a rejected transition")
}

func TestUpdateStatusTxUnknownOrder(t *testing.T) {
	q := &fakeQuerier{statusErr: pgx.ErrNoRows}

	_, err := updateStatusTx(context.Background(), q, 404, models.StatusConfirmed)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateStatusTxOrderWriteFailureSurfaces(t *testing.T) {
	q := &fakeQuerier{
		status:     models.StatusPending,
		failOrderW: errors.New("connection reset"),
	}

	// The delivery write succeeded inside the fake but WithinTx would roll
	// it back; the body only has to surface the error.
	_, err := updateStatusTx(context.Background(), q, 9, models.StatusConfirmed)
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection reset")
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to models.OrderStatus
		want     bool
	}{
		{models.StatusPending, models.StatusConfirmed, true},
		{models.StatusPending, models.StatusCancelled, true},
		{models.StatusConfirmed, models.StatusPreparing, true},
		{models.StatusConfirmed, models.StatusCancelled, true},
		{models.StatusPreparing, models.StatusOutForDelivery, true},
		{models.StatusOutForDelivery, models.StatusDelivered, true},
		{models.StatusPending, models.StatusDelivered, false},
		{models.StatusPreparing, models.StatusCancelled, false},
		{models.StatusDelivered, models.StatusPending, false},
		{models.StatusCancelled, models.StatusConfirmed, false},
		{models.StatusConfirmed, models.StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_to_%s", tt.from, tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}
