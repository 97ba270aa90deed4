package order

import (
	"fmt"

	"fnb-ordering/internal/models"
)

// ValidateCreateOrderRequest checks an order request before any store work.
// Empty line sets are allowed; an order with total 0 is valid.
func ValidateCreateOrderRequest(req *models.CreateOrderRequest) error {
	if req.CustomerID <= 0 {
		return models.ValidationError{
			Field:   "customer_id",
			Message: "customer id is required",
		}
	}

	if req.DeliveryOption != models.OptionPickup && req.DeliveryOption != models.OptionDelivery {
		return models.ValidationError{
			Field:   "delivery_option",
			Message: "delivery option must be pickup or delivery",
		}
	}

	if req.DeliveryOption == models.OptionDelivery && req.Address == "" {
		return models.ValidationError{
			Field:   "address",
			Message: "address is required for delivery orders",
		}
	}

	seenMenus := make(map[int64]bool, len(req.MenuItems))
	for i, line := range req.MenuItems {
		if line.MenuID <= 0 {
			return models.ValidationError{
				Field:   fmt.Sprintf("menu_items[%d].menu_id", i),
				Message: "menu reference is required",
			}
		}
		if line.Quantity < 1 {
			return models.ValidationError{
				Field:   fmt.Sprintf("menu_items[%d].quantity", i),
				Message: "quantity must be at least 1",
			}
		}
		if seenMenus[line.MenuID] {
			return models.ValidationError{
				Field:   fmt.Sprintf("menu_items[%d].menu_id", i),
				Message: "duplicate menu reference in one order",
			}
		}
		seenMenus[line.MenuID] = true
	}

	seenItems := make(map[int64]bool, len(req.FnbItems))
	for i, line := range req.FnbItems {
		if line.FnbID <= 0 {
			return models.ValidationError{
				Field:   fmt.Sprintf("fnb_items[%d].fnb_id", i),
				Message: "item reference is required",
			}
		}
		if line.Quantity < 1 {
			return models.ValidationError{
				Field:   fmt.Sprintf("fnb_items[%d].quantity", i),
				Message: "quantity must be at least 1",
			}
		}
		if seenItems[line.FnbID] {
			return models.ValidationError{
				Field:   fmt.Sprintf("fnb_items[%d].fnb_id", i),
				Message: "duplicate item reference in one order",
			}
		}
		seenItems[line.FnbID] = true
	}

	return nil
}
