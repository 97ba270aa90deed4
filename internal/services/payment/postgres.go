package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"fnb-ordering/internal/database"
	"fnb-ordering/internal/models"
)

// PostgresStore persists payments.
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates a payment store on the given database.
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// CreatePayment inserts a payment. The unique constraint on order_id
// enforces one payment per order, the foreign key rejects payments for
// unknown orders.
func (s *PostgresStore) CreatePayment(ctx context.Context, req *models.CreatePaymentRequest, status models.PaymentStatus) (*models.Payment, error) {
	payment := &models.Payment{
		OrderID: req.OrderID,
		Method:  req.Method,
		Status:  status,
		Amount:  req.Amount,
	}

	err := s.db.QueryRow(ctx, database.InsertPaymentSQL,
		req.OrderID, req.Method, status, req.Amount,
	).Scan(&payment.ID, &payment.PaidAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, models.ErrConflict
			case "23503":
				return nil, models.ErrNotFound
			}
		}
		return nil, fmt.Errorf("failed to insert payment: %w", err)
	}

	return payment, nil
}

// PaymentByOrder returns the payment for an order.
func (s *PostgresStore) PaymentByOrder(ctx context.Context, orderID int64) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.QueryRow(ctx, database.GetPaymentByOrderSQL, orderID).Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.Method,
		&payment.Status,
		&payment.Amount,
		&payment.PaidAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query payment: %w", err)
	}

	return &payment, nil
}
