package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fnb-ordering/internal/database"
	"fnb-ordering/internal/models"
)

// PostgresStore persists orders.
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates an order store on the given database.
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// PlaceOrder runs the whole order creation in one transaction: price
// resolution, header insert, line inserts and the conditional delivery row.
// Either everything commits or nothing is visible.
func (s *PostgresStore) PlaceOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	var order *models.Order
	err := s.db.WithinTx(ctx, func(q database.Querier) error {
		o, err := placeOrderTx(ctx, q, req)
		if err != nil {
			return err
		}
		order = o
		return nil
	})
	return order, err
}

// placeOrderTx is the transaction body. It takes the narrow Querier so
// tests can drive it with a fake.
func placeOrderTx(ctx context.Context, q database.Querier, req *models.CreateOrderRequest) (*models.Order, error) {
	menuPrices, err := resolvePrices(ctx, q, database.GetMenuPriceSQL, "menu_items", menuLineIDs(req.MenuItems))
	if err != nil {
		return nil, err
	}
	itemPrices, err := resolvePrices(ctx, q, database.GetItemPriceSQL, "fnb_items", itemLineIDs(req.FnbItems))
	if err != nil {
		return nil, err
	}

	var total int64
	for i, line := range req.MenuItems {
		total += menuPrices[i] * int64(line.Quantity)
	}
	for i, line := range req.FnbItems {
		total += itemPrices[i] * int64(line.Quantity)
	}

	order := &models.Order{
		CustomerID:     req.CustomerID,
		DeliveryOption: req.DeliveryOption,
		Status:         models.StatusPending,
		TotalAmount:    total,
	}
	var address *string
	if req.Address != "" {
		address = &req.Address
		order.Address = address
	}

	err = q.QueryRow(ctx, database.InsertOrderSQL,
		req.CustomerID, req.DeliveryOption, address, models.StatusPending, total,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	for i, line := range req.MenuItems {
		_, err := q.Exec(ctx, database.InsertOrderMenuLineSQL, order.ID, line.MenuID, line.Quantity, menuPrices[i])
		if err != nil {
			return nil, fmt.Errorf("failed to insert order menu line: %w", err)
		}
	}
	for i, line := range req.FnbItems {
		_, err := q.Exec(ctx, database.InsertOrderItemLineSQL, order.ID, line.FnbID, line.Quantity, itemPrices[i])
		if err != nil {
			return nil, fmt.Errorf("failed to insert order item line: %w", err)
		}
	}

	if req.DeliveryOption == models.OptionDelivery {
		_, err := q.Exec(ctx, database.InsertDeliverySQL, order.ID, address, models.StatusPending)
		if err != nil {
			return nil, fmt.Errorf("failed to insert delivery record: %w", err)
		}
	}

	return order, nil
}

// resolvePrices reads current catalog prices inside the transaction, so the
// snapshot written to the lines is consistent with the computed total. A
// missing reference rejects the order rather than contributing zero: the
// line insert would violate its foreign key anyway.
func resolvePrices(ctx context.Context, q database.Querier, sql, field string, ids []int64) ([]int64, error) {
	prices := make([]int64, len(ids))
	for i, id := range ids {
		err := q.QueryRow(ctx, sql, id).Scan(&prices[i])
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ValidationError{
				Field:   field,
				Message: fmt.Sprintf("reference %d does not exist", id),
			}
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve price for %d: %w", id, err)
		}
	}
	return prices, nil
}

func menuLineIDs(lines []models.MenuLineRequest) []int64 {
	ids := make([]int64, len(lines))
	for i, line := range lines {
		ids[i] = line.MenuID
	}
	return ids
}

func itemLineIDs(lines []models.ItemLineRequest) []int64 {
	ids := make([]int64, len(lines))
	for i, line := range lines {
		ids[i] = line.FnbID
	}
	return ids
}

// AllOrders returns every order with resolved lines.
func (s *PostgresStore) AllOrders(ctx context.Context) ([]models.OrderView, error) {
	return s.listOrders(ctx, database.ListOrdersSQL)
}

// OrdersForCustomer returns the orders owned by one customer.
func (s *PostgresStore) OrdersForCustomer(ctx context.Context, customerID int64) ([]models.OrderView, error) {
	return s.listOrders(ctx, database.ListOrdersByCustomerSQL, customerID)
}

func (s *PostgresStore) listOrders(ctx context.Context, sql string, args ...interface{}) ([]models.OrderView, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}

	views := []models.OrderView{}
	for rows.Next() {
		var view models.OrderView
		err := rows.Scan(
			&view.ID,
			&view.CustomerID,
			&view.DeliveryOption,
			&view.Address,
			&view.Status,
			&view.TotalAmount,
			&view.CreatedAt,
		)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		views = append(views, view)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// One lines query pair per order; fine at back-office scale.
	for i := range views {
		menuLines, err := s.orderLines(ctx, database.GetOrderMenuLinesSQL, views[i].ID)
		if err != nil {
			return nil, err
		}
		itemLines, err := s.orderLines(ctx, database.GetOrderItemLinesSQL, views[i].ID)
		if err != nil {
			return nil, err
		}
		views[i].MenuLines = menuLines
		views[i].ItemLines = itemLines
	}

	return views, nil
}

func (s *PostgresStore) orderLines(ctx context.Context, sql string, orderID int64) ([]models.OrderLine, error) {
	rows, err := s.db.Query(ctx, sql, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order lines: %w", err)
	}
	defer rows.Close()

	lines := []models.OrderLine{}
	for rows.Next() {
		var line models.OrderLine
		if err := rows.Scan(&line.TargetID, &line.Name, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}
