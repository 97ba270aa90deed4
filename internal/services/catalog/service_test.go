package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fnb-ordering/internal/logger"
	"fnb-ordering/internal/models"
)

type fakeStore struct {
	items       []models.Item
	menus       []models.Menu
	createdMenu *models.Menu
	listCalls   int
}

func (f *fakeStore) CreateItem(_ context.Context, item *models.Item) error {
	item.ID = int64(len(f.items) + 1)
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeStore) ListItems(_ context.Context) ([]models.Item, error) {
	f.listCalls++
	return f.items, nil
}

func (f *fakeStore) CreateMenu(_ context.Context, menu *models.Menu) error {
	menu.ID = int64(len(f.menus) + 1)
	f.createdMenu = menu
	f.menus = append(f.menus, *menu)
	return nil
}

func (f *fakeStore) ListMenus(_ context.Context) ([]models.Menu, error) {
	return f.menus, nil
}

func (f *fakeStore) UpdateMenu(_ context.Context, _ *models.Menu) error { return nil }
func (f *fakeStore) DeleteMenu(_ context.Context, _ int64) error        { return nil }

func newTestService(store *fakeStore) *Service {
	// nil cache disables caching entirely
	return NewService(store, nil, logger.New("catalog-test"))
}

func TestCreateItemValidation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateItemRequest
	}{
		{"missing name", models.CreateItemRequest{Type: "drink", Price: 100}},
		{"missing type", models.CreateItemRequest{Name: "Cola", Price: 100}},
		{"negative price", models.CreateItemRequest{Name: "Cola", Type: "drink", Price: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&fakeStore{})

			_, err := svc.CreateItem(context.Background(), &tt.req)
			require.Error(t, err)
			assert.True(t, models.IsValidation(err))
		})
	}
}

func TestCreateItemAssignsID(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	item, err := svc.CreateItem(context.Background(), &models.CreateItemRequest{
		Name:  "Cola",
		Type:  "drink",
		Price: 250,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.ID)
	assert.Len(t, store.items, 1)
}

func TestCreateMenuValidation(t *testing.T) {
	tests := []struct {
		name string
		req  models.MenuRequest
	}{
		{"missing name", models.MenuRequest{Price: 100}},
		{"negative price", models.MenuRequest{Name: "Set", Price: -1}},
		{
			"zero quantity component",
			models.MenuRequest{
				Name:  "Set",
				Price: 100,
				Items: []models.MenuComponent{{ItemID: 1, Quantity: 0}},
			},
		},
		{
			"missing item reference",
			models.MenuRequest{
				Name:  "Set",
				Price: 100,
				Items: []models.MenuComponent{{Quantity: 1}},
			},
		},
		{
			"duplicate item reference",
			models.MenuRequest{
				Name:  "Set",
				Price: 100,
				Items: []models.MenuComponent{
					{ItemID: 1, Quantity: 1},
					{ItemID: 1, Quantity: 2},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&fakeStore{})

			_, err := svc.CreateMenu(context.Background(), &tt.req)
			require.Error(t, err)
			assert.True(t, models.IsValidation(err))
		})
	}
}

func TestCreateMenuEmptyCompositionAllowed(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	menu, err := svc.CreateMenu(context.Background(), &models.MenuRequest{
		Name:  "Seasonal",
		Price: 900,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), menu.ID)
	assert.NotNil(t, store.createdMenu)
}

func TestListItemsWithoutCacheHitsStore(t *testing.T) {
	store := &fakeStore{items: []models.Item{{ID: 1, Name: "Cola"}}}
	svc := newTestService(store)

	items, err := svc.ListItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = svc.ListItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, store.listCalls, "nil cache never serves a hit")
}
