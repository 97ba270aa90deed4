package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"fnb-ordering/internal/database"
	"fnb-ordering/internal/models"
)

// PostgresStore persists the catalog.
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates a catalog store on the given database.
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// CreateItem inserts a new item and fills in its assigned id.
func (s *PostgresStore) CreateItem(ctx context.Context, item *models.Item) error {
	err := s.db.QueryRow(ctx, database.InsertItemSQL, item.Name, item.Type, item.Price).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// ListItems returns all catalog items.
func (s *PostgresStore) ListItems(ctx context.Context) ([]models.Item, error) {
	rows, err := s.db.Query(ctx, database.ListItemsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Type, &item.Price); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// CreateMenu inserts a menu and its composition in one transaction. An
// invalid item reference fails the whole operation.
func (s *PostgresStore) CreateMenu(ctx context.Context, menu *models.Menu) error {
	return s.db.WithinTx(ctx, func(q database.Querier) error {
		return createMenuTx(ctx, q, menu)
	})
}

func createMenuTx(ctx context.Context, q database.Querier, menu *models.Menu) error {
	err := q.QueryRow(ctx, database.InsertMenuSQL, menu.Name, menu.IsVegetarian, menu.Price).Scan(&menu.ID)
	if err != nil {
		return fmt.Errorf("failed to insert menu: %w", err)
	}

	return insertComponents(ctx, q, menu.ID, menu.Items)
}

func insertComponents(ctx context.Context, q database.Querier, menuID int64, components []models.MenuComponent) error {
	for _, comp := range components {
		_, err := q.Exec(ctx, database.InsertMenuComponentSQL, menuID, comp.ItemID, comp.Quantity)
		if err != nil {
			if isForeignKeyViolation(err) {
				return models.ValidationError{
					Field:   "fnb_items",
					Message: fmt.Sprintf("item %d does not exist", comp.ItemID),
				}
			}
			return fmt.Errorf("failed to insert menu component: %w", err)
		}
	}
	return nil
}

// UpdateMenu replaces the menu fields and its entire composition in one
// transaction. This is a full replace, not a diff.
func (s *PostgresStore) UpdateMenu(ctx context.Context, menu *models.Menu) error {
	return s.db.WithinTx(ctx, func(q database.Querier) error {
		return updateMenuTx(ctx, q, menu)
	})
}

func updateMenuTx(ctx context.Context, q database.Querier, menu *models.Menu) error {
	tag, err := q.Exec(ctx, database.UpdateMenuSQL, menu.Name, menu.IsVegetarian, menu.Price, menu.ID)
	if err != nil {
		return fmt.Errorf("failed to update menu: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	if _, err := q.Exec(ctx, database.DeleteMenuComponentsSQL, menu.ID); err != nil {
		return fmt.Errorf("failed to clear menu composition: %w", err)
	}

	return insertComponents(ctx, q, menu.ID, menu.Items)
}

// DeleteMenu removes a menu, its composition, and any order lines that
// reference it, in that order, in one transaction. Historical orders
// themselves are left intact.
func (s *PostgresStore) DeleteMenu(ctx context.Context, menuID int64) error {
	return s.db.WithinTx(ctx, func(q database.Querier) error {
		return deleteMenuTx(ctx, q, menuID)
	})
}

func deleteMenuTx(ctx context.Context, q database.Querier, menuID int64) error {
	if _, err := q.Exec(ctx, database.DeleteMenuOrderLinesSQL, menuID); err != nil {
		return fmt.Errorf("failed to delete order lines: %w", err)
	}

	if _, err := q.Exec(ctx, database.DeleteMenuComponentsSQL, menuID); err != nil {
		return fmt.Errorf("failed to delete menu composition: %w", err)
	}

	tag, err := q.Exec(ctx, database.DeleteMenuSQL, menuID)
	if err != nil {
		return fmt.Errorf("failed to delete menu: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

// ListMenus returns all menus with their resolved composition. One
// composition query runs per menu; fine at catalog scale.
func (s *PostgresStore) ListMenus(ctx context.Context) ([]models.Menu, error) {
	rows, err := s.db.Query(ctx, database.ListMenusSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query menus: %w", err)
	}

	menus := []models.Menu{}
	for rows.Next() {
		var menu models.Menu
		if err := rows.Scan(&menu.ID, &menu.Name, &menu.IsVegetarian, &menu.Price); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan menu: %w", err)
		}
		menus = append(menus, menu)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range menus {
		composition, err := s.menuComposition(ctx, menus[i].ID)
		if err != nil {
			return nil, err
		}
		menus[i].Items = composition
	}

	return menus, nil
}

func (s *PostgresStore) menuComposition(ctx context.Context, menuID int64) ([]models.MenuComponent, error) {
	rows, err := s.db.Query(ctx, database.GetMenuCompositionSQL, menuID)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu composition: %w", err)
	}
	defer rows.Close()

	components := []models.MenuComponent{}
	for rows.Next() {
		var comp models.MenuComponent
		if err := rows.Scan(&comp.ItemID, &comp.Name, &comp.Type, &comp.Price, &comp.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan menu component: %w", err)
		}
		components = append(components, comp)
	}

	return components, rows.Err()
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
