package table

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrTableIsNotConstructed = errors.New("Table must be created via NewTable constructor")

// Table is a physical seating unit.
//
// Invariants:
//   - number is unique per floor (enforced by storage)
//   - a current order implies a seated status (occupied, preparing, ready, served)
type Table struct {
	id             kernel.UUID
	floorID        *kernel.UUID
	number         string
	seats          int
	status         Status
	currentOrderID *kernel.UUID

	isConstructed bool
}

// NewTable creates a free table.
func NewTable(id kernel.UUID, floorID *kernel.UUID, number string, seats int) (*Table, error) {
	t := &Table{
		floorID:       floorID,
		status:        Free,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setNumber(number),
		t.setSeats(seats),
	); err != nil {
		return nil, err
	}
	return t, nil
}

// RestoreTable rebuilds a table from persistence.
func RestoreTable(id kernel.UUID, floorID *kernel.UUID, number string, seats int, status Status, currentOrderID *kernel.UUID) *Table {
	return &Table{
		id:             id,
		floorID:        floorID,
		number:         number,
		seats:          seats,
		status:         status,
		currentOrderID: currentOrderID,
		isConstructed:  true,
	}
}

func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}
	return nil
}

func (t *Table) ID() kernel.UUID {
	return t.id
}

func (t *Table) FloorID() *kernel.UUID {
	return t.floorID
}

func (t *Table) Number() string {
	return t.number
}

func (t *Table) Seats() int {
	return t.seats
}

func (t *Table) Status() Status {
	return t.status
}

func (t *Table) CurrentOrderID() *kernel.UUID {
	return t.currentOrderID
}

// Label is the name shown on kitchen tickets.
func (t *Table) Label() string {
	return "Table " + t.number
}

// Occupy seats an order at the table. A free or reserved table becomes
// occupied; re-occupying with the same order keeps the projected status.
// A table already serving another order is a conflict.
func (t *Table) Occupy(orderID kernel.UUID) error {
	if t.currentOrderID != nil {
		if t.currentOrderID.IsEqual(orderID) {
			return nil
		}
		return errs.NewConflictError("table", fmt.Sprintf("%s is serving order %s", t.number, t.currentOrderID))
	}
	t.currentOrderID = &orderID
	t.status = Occupied
	return nil
}

// Release frees the table if it is serving orderID (or is marked seated
// without an order). It returns false when the table belongs to another order
// or has no order to release.
func (t *Table) Release(orderID kernel.UUID) bool {
	if t.currentOrderID != nil && !t.currentOrderID.IsEqual(orderID) {
		return false
	}
	if t.currentOrderID == nil && !t.status.IsSeated() {
		return false
	}
	t.currentOrderID = nil
	t.status = Free
	return true
}

// Reserve marks a free table as reserved. Other statuses are left alone.
func (t *Table) Reserve() bool {
	if t.status != Free {
		return false
	}
	t.status = Reserved
	return true
}

// Unreserve frees a reserved table that has no current order.
func (t *Table) Unreserve() bool {
	if t.status != Reserved || t.currentOrderID != nil {
		return false
	}
	t.status = Free
	return true
}

// SetAvailability is the manual status change of the floor plan. Only free
// and reserved can be set, and only while no order holds the table.
func (t *Table) SetAvailability(status Status) (bool, error) {
	if status != Free && status != Reserved {
		return false, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s cannot be set by hand", status))
	}
	if t.currentOrderID != nil {
		return false, errs.NewConflictError("table", fmt.Sprintf("%s is serving order %s", t.number, t.currentOrderID))
	}
	if t.status == status {
		return false, nil
	}
	t.status = status
	return true, nil
}

// ApplyProjection sets the status derived from the current order's items.
// Tables without a current order ignore projections.
func (t *Table) ApplyProjection(status Status) (bool, error) {
	switch status {
	case Occupied, Preparing, Ready, Served:
	default:
		return false, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s is not a projected table status", status))
	}
	if t.currentOrderID == nil || t.status == status {
		return false, nil
	}
	t.status = status
	return true, nil
}

func (t *Table) Clone() *Table {
	c := *t
	if t.floorID != nil {
		id := *t.floorID
		c.floorID = &id
	}
	if t.currentOrderID != nil {
		id := *t.currentOrderID
		c.currentOrderID = &id
	}
	return &c
}

func (t *Table) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Table) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	t.number = number
	return nil
}

func (t *Table) setSeats(seats int) error {
	if seats < 1 || seats > 50 {
		return errs.NewValueIsOutOfRangeError("seats", seats, 1, 50)
	}
	t.seats = seats
	return nil
}
