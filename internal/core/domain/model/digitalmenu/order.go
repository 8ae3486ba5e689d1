// Package digitalmenu describes orders placed through the customer-facing
// digital menu. These documents are owned by another system; this service
// reads them and only writes its sync bookkeeping back.
package digitalmenu

import (
	"fmt"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// Status is the order status vocabulary of the digital menu.
type Status string

const (
	Pending   Status = "pending"
	Confirmed Status = "confirmed"
	Preparing Status = "preparing"
	Completed Status = "completed"
	Cancelled Status = "cancelled"
)

// ItemStatus maps a digital-menu status onto the kitchen status of the
// linked order's items. Cancelled orders are served so that they leave the
// kitchen board without deleting anything.
func (s Status) ItemStatus() (order.ItemStatus, error) {
	switch s {
	case Pending, Confirmed:
		return order.ItemNew, nil
	case Preparing:
		return order.ItemPreparing, nil
	case Completed, Cancelled:
		return order.ItemServed, nil
	}
	return order.ItemUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a digital menu status", string(s)))
}

// IsImportable reports whether an unsynced order in this status is taken over by the POS.
func (s Status) IsImportable() bool {
	return s == Pending || s == Confirmed
}

// ImportableStatuses lists the statuses IsImportable accepts, for store queries.
func ImportableStatuses() []Status {
	return []Status{Pending, Confirmed}
}

// Item is one line of a digital-menu order.
type Item struct {
	MenuItemID   string
	MenuItemName string
	Quantity     int
	Price        float64
	Total        float64
	SpiceLevel   string
	Notes        string
}

// KitchenNotes merges free-text notes and the spice level into one note, e.g.
// "no onions | Spice: hot".
func (i Item) KitchenNotes() string {
	var parts []string
	if n := strings.TrimSpace(i.Notes); n != "" {
		parts = append(parts, n)
	}
	if s := strings.TrimSpace(i.SpiceLevel); s != "" {
		parts = append(parts, "Spice: "+s)
	}
	return strings.Join(parts, " | ")
}

// Order is a digital-menu order document.
type Order struct {
	ID            string
	CustomerID    string
	CustomerName  string
	CustomerPhone string
	Items         []Item
	Subtotal      float64
	Tax           float64
	Total         float64
	Status        Status
	PaymentStatus string
	PaymentMethod string
	TableNumber   string
	FloorNumber   string
	OrderDate     time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	SyncedToPOS bool
	SyncedAt    *time.Time
	POSOrderID  string
}
