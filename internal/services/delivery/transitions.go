package delivery

import "fnb-ordering/internal/models"

// transitions is the forward-only status graph. Terminal states have no
// outgoing edges.
var transitions = map[models.OrderStatus][]models.OrderStatus{
	models.StatusPending:        {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed:      {models.StatusPreparing, models.StatusCancelled},
	models.StatusPreparing:      {models.StatusOutForDelivery},
	models.StatusOutForDelivery: {models.StatusDelivered},
}

// CanTransition reports whether a delivery may move from one status to
// another.
func CanTransition(from, to models.OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// KnownStatus reports whether the value is one of the defined statuses.
func KnownStatus(s models.OrderStatus) bool {
	switch s {
	case models.StatusPending, models.StatusConfirmed, models.StatusCancelled,
		models.StatusPreparing, models.StatusOutForDelivery, models.StatusDelivered:
		return true
	}
	return false
}
