package services

import (
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
)

// TableStatusProjector derives a table's status from the item statuses of the
// order seated at it.
//
// Derivation rules, first match wins:
//   - every item served                 -> served
//   - every item ready or served        -> ready
//   - any item preparing or ready       -> preparing
//   - otherwise                         -> unchanged
//
// The result depends only on the multiset of item statuses, so it is always
// recomputed from scratch rather than patched incrementally.
type TableStatusProjector struct{}

func NewTableStatusProjector() TableStatusProjector {
	return TableStatusProjector{}
}

// Derive returns the projected status and true, or false when the items
// do not imply a change (all new, or no items at all).
func (TableStatusProjector) Derive(statuses []order.ItemStatus) (table.Status, bool) {
	if len(statuses) == 0 {
		return "", false
	}

	allServed, allReady, anyInKitchen := true, true, false
	for _, s := range statuses {
		if s != order.ItemServed {
			allServed = false
		}
		if !s.IsReadyOrServed() {
			allReady = false
		}
		if s == order.ItemPreparing || s == order.ItemReady {
			anyInKitchen = true
		}
	}

	switch {
	case allServed:
		return table.Served, true
	case allReady:
		return table.Ready, true
	case anyInKitchen:
		return table.Preparing, true
	}
	return "", false
}

// Apply projects o onto t. Tables that are not serving o are left alone.
// It reports whether the table changed.
func (p TableStatusProjector) Apply(o *order.Order, t *table.Table) (bool, error) {
	current := t.CurrentOrderID()
	if current == nil || !current.IsEqual(o.ID()) {
		return false, nil
	}
	status, ok := p.Derive(o.ItemStatuses())
	if !ok {
		return false, nil
	}
	return t.ApplyProjection(status)
}
