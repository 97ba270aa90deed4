package catalog

import (
	"context"
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
	id  int64
	err error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int64)) = r.id
	return nil
}

type fakeQuerier struct {
	nextID   int64
	execSQLs []string
	// rowsAffected per statement, defaults to 1
	affected map[string]int64
	// error returned for a statement containing this substring
	fkFailOn string
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, _ ...interface{}) pgx.Row {
	if sql == database.InsertMenuSQL {
		return fakeRow{id: f.nextID}
	}
	return fakeRow{err: fmt.Errorf("unexpected QueryRow: %s", sql)}
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, _ ...interface{}) (pgconn.CommandTag, error) {
	if f.fkFailOn != "" && sql == f.fkFailOn {
		return pgconn.CommandTag{}, &pgconn.PgError{Code: "23503"}
	}
	f.execSQLs = append(f.execSQLs, sql)

	n := int64(1)
	if f.affected != nil {
		if v, ok := f.affected[sql]; ok {
			n = v
		}
	}
	return pgconn.NewCommandTag(fmt.Sprintf("DELETE %d", n)), nil
}

func (f *fakeQuerier) Query(_ context.Context, sql string, _ ...interface{}) (pgx.Rows, error) {
	return nil, fmt.Errorf("unexpected Query: %s", sql)
}

func TestDeleteMenuTxStatementOrder(t *testing.T) {
	q := &fakeQuerier{}

	err := deleteMenuTx(context.Background(), q, 4)
	require.NoError(t, err)

	// Referencing rows go first so the menu row delete cannot violate a
	// foreign key.
	assert.Equal(t, []string{
		database.DeleteMenuOrderLinesSQL,
		database.DeleteMenuComponentsSQL,
		database.DeleteMenuSQL,
	}, q.execSQLs)
}

func TestDeleteMenuTxUnknownMenu(t *testing.T) {
	q := &fakeQuerier{
		affected: map[string]int64{
			database.DeleteMenuOrderLinesSQL: 0,
			database.DeleteMenuComponentsSQL: 0,
			database.DeleteMenuSQL:           0,
		},
	}

	err := deleteMenuTx(context.Background(), q, 404)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateMenuTxMapsForeignKeyToValidation(t *testing.T) {
	q := &fakeQuerier{
		nextID:   7,
		fkFailOn: database.InsertMenuComponentSQL,
	}

	menu := &models.Menu{
		Name:  "Lunch Set",
		Price: 1500,
		Items: []models.MenuComponent{{ItemID: 99, Quantity: 1}},
	}

	err := createMenuTx(context.Background(), q, menu)
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
	assert.Equal(t, int64(7), menu.ID, "menu id was assigned before the component failed")
}

func TestUpdateMenuTxUnknownMenu(t *testing.T) {
	q := &fakeQuerier{
		affected: map[string]int64{database.UpdateMenuSQL: 0},
	}

	menu := &models.Menu{ID: 404, Name: "Ghost", Price: 100}
	err := updateMenuTx(context.Background(), q, menu)
	assert.ErrorIs(t, err, models.ErrNotFound)

	// Only the header update ran; the composition was left alone.
	assert.Equal(t, []string{database.UpdateMenuSQL}, q.execSQLs)
}

func TestUpdateMenuTxReplacesComposition(t *testing.T) {
	q := &fakeQuerier{}

	menu := &models.Menu{
		ID:    4,
		Name:  "Lunch Set",
		Price: 1500,
		Items: []models.MenuComponent{
			{ItemID: 1, Quantity: 2},
			{ItemID: 2, Quantity: 1},
		},
	}

	err := updateMenuTx(context.Background(), q, menu)
	require.NoError(t, err)

	assert.Equal(t, []string{
		database.UpdateMenuSQL,
		database.DeleteMenuComponentsSQL,
		database.InsertMenuComponentSQL,
		database.InsertMenuComponentSQL,
	}, q.execSQLs)
}
