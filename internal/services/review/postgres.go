package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"fnb-ordering/internal/database"
	"fnb-ordering/internal/models"
)

// PostgresStore persists reviews.
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates a review store on the given database.
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// CreateReview inserts a review. The unique constraint on order_id enforces
// one review per order, the foreign key rejects reviews for unknown orders.
func (s *PostgresStore) CreateReview(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error) {
	review := &models.Review{
		OrderID:    req.OrderID,
		CustomerID: req.CustomerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	err := s.db.QueryRow(ctx, database.InsertReviewSQL,
		req.OrderID, req.CustomerID, req.Rating, req.Comment,
	).Scan(&review.ID, &review.CreatedAt)
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
		return nil, fmt.Errorf("failed to insert review: %w", err)
	}

	return review, nil
}

// ReviewByOrder returns the review for an order.
func (s *PostgresStore) ReviewByOrder(ctx context.Context, orderID int64) (*models.Review, error) {
	var review models.Review
	err := s.db.QueryRow(ctx, database.GetReviewByOrderSQL, orderID).Scan(
		&review.ID,
		&review.OrderID,
		&review.CustomerID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query review: %w", err)
	}

	return &review, nil
}
