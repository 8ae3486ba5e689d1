// Package ports defines the contracts between the restaurant core and its
// adapters: storage, the digital-menu feed and the event sink.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderFilter selects orders by status. An empty filter matches every order.
type OrderFilter struct {
	Statuses []order.Status
}

// ActiveOrders matches the orders shown on the kitchen board.
func ActiveOrders() OrderFilter {
	return OrderFilter{Statuses: []order.Status{order.SentToKitchen, order.Billed}}
}

// SettledOrders matches the kitchen history.
func SettledOrders() OrderFilter {
	return OrderFilter{Statuses: []order.Status{order.Paid, order.Completed}}
}

// Matches applies the filter to one status.
func (f OrderFilter) Matches(s order.Status) bool {
	if len(f.Statuses) == 0 {
		return true
	}
	for _, candidate := range f.Statuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// OrderRepository persists Order aggregates together with their items.
type OrderRepository interface {
	// Add persists a new order and its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order and reconciles its items: new lines are
	// inserted, changed lines updated and removed lines deleted.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with its items or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByItemID returns the order owning the item or an ObjectNotFoundError.
	GetByItemID(ctx context.Context, itemID kernel.UUID) (*order.Order, error)

	// GetByExternalRef returns the order imported from the given digital-menu
	// document or an ObjectNotFoundError.
	GetByExternalRef(ctx context.Context, ref string) (*order.Order, error)

	// Find returns the orders matching filter, oldest first.
	Find(ctx context.Context, filter OrderFilter) ([]*order.Order, error)
}
