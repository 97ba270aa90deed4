package delivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fnb-ordering/internal/database"
	"fnb-ordering/internal/models"
)

// PostgresStore persists deliveries.
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates a delivery store on the given database.
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// ListDeliveries returns every delivery joined with its order total and
// aggregated line names.
func (s *PostgresStore) ListDeliveries(ctx context.Context) ([]models.DeliveryView, error) {
	rows, err := s.db.Query(ctx, database.ListDeliveriesSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query deliveries: %w", err)
	}
	defer rows.Close()

	views := []models.DeliveryView{}
	for rows.Next() {
		var view models.DeliveryView
		err := rows.Scan(
			&view.ID,
			&view.OrderID,
			&view.Address,
			&view.Status,
			&view.Carrier,
			&view.DeliveryDate,
			&view.TotalAmount,
			&view.MenuItems,
			&view.FnbItems,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan delivery: %w", err)
		}
		views = append(views, view)
	}

	return views, rows.Err()
}

// UpdateStatus moves a delivery to a new status and mirrors it onto the
// order, both writes in one transaction. Returns the previous status.
func (s *PostgresStore) UpdateStatus(ctx context.Context, orderID int64, status models.OrderStatus) (models.OrderStatus, error) {
	var old models.OrderStatus
	err := s.db.WithinTx(ctx, func(q database.Querier) error {
		o, err := updateStatusTx(ctx, q, orderID, status)
		if err != nil {
			return err
		}
		old = o
		return nil
	})
	return old, err
}

// updateStatusTx is the transaction body. The initial read locks the
// delivery row so concurrent updates serialize on it.
func updateStatusTx(ctx context.Context, q database.Querier, orderID int64, status models.OrderStatus) (models.OrderStatus, error) {
	var current models.OrderStatus
	err := q.QueryRow(ctx, database.GetDeliveryStatusSQL, orderID).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", models.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read delivery status: %w", err)
	}

	if !CanTransition(current, status) {
		return "", models.ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("cannot transition from %s to %s", current, status),
		}
	}

	tag, err := q.Exec(ctx, database.UpdateDeliveryStatusSQL, status, orderID)
	if err != nil {
		return "", fmt.Errorf("failed to update delivery status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return "", models.ErrNotFound
	}

	tag, err = q.Exec(ctx, database.UpdateOrderStatusSQL, status, orderID)
	if err != nil {
		return "", fmt.Errorf("failed to update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return "", models.ErrNotFound
	}

	return current, nil
}
