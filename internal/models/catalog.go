package models

// Item is an individually orderable food-or-beverage unit.
// Prices are integer minor currency units.
type Item struct {
	ID    int64  `json:"fnb_id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Price int64  `json:"price"`
}

// MenuComponent is one (item, quantity) entry of a menu's composition.
type MenuComponent struct {
	ItemID   int64  `json:"fnb_id"`
	Name     string `json:"name,omitempty"`
	Type     string `json:"type,omitempty"`
	Price    int64  `json:"price,omitempty"`
	Quantity int    `json:"quantity"`
}

// Menu is a named bundle of items with its own price. The menu price is a
// business value, not the sum of the component prices.
type Menu struct {
	ID           int64           `json:"menu_id"`
	Name         string          `json:"name"`
	IsVegetarian bool            `json:"is_vegetarian"`
	Price        int64           `json:"price"`
	Items        []MenuComponent `json:"fnb_items"`
}

// CreateItemRequest is the payload for POST /api/fnb.
type CreateItemRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Price int64  `json:"price"`
}

// MenuRequest is the payload for POST /api/menu and PUT /api/menu/{id}.
type MenuRequest struct {
	Name         string          `json:"name"`
	IsVegetarian bool            `json:"is_vegetarian"`
	Price        int64           `json:"price"`
	Items        []MenuComponent `json:"fnb_items"`
}
