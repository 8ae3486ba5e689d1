// Package reservation binds a table to a party arriving later.
//
// At most one active reservation may exist per table. The rule spans
// several aggregates, so it is checked by the reservation use cases against
// storage rather than here.
package reservation

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

type Status string

const (
	Active    Status = "active"
	Cancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case Active, Cancelled:
		return Status(s), nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not one of active, cancelled", s))
}

var ErrReservationIsNotConstructed = errors.New("Reservation must be created via NewReservation constructor")

// Guest describes who the table is held for.
type Guest struct {
	Name      string
	Phone     string
	PartySize int
}

type Reservation struct {
	id       kernel.UUID
	tableID  kernel.UUID
	guest    Guest
	timeSlot string
	notes    string
	status   Status

	isConstructed bool
}

// NewReservation creates an active reservation.
func NewReservation(id, tableID kernel.UUID, guest Guest, timeSlot, notes string) (*Reservation, error) {
	r := &Reservation{
		notes:         notes,
		status:        Active,
		isConstructed: true,
	}
	if err := errors.Join(
		id.Validate(),
		tableID.Validate(),
		r.setGuest(guest),
		r.setTimeSlot(timeSlot),
	); err != nil {
		return nil, err
	}
	r.id = id
	r.tableID = tableID
	return r, nil
}

func RestoreReservation(id, tableID kernel.UUID, guest Guest, timeSlot, notes string, status Status) *Reservation {
	return &Reservation{
		id:            id,
		tableID:       tableID,
		guest:         guest,
		timeSlot:      timeSlot,
		notes:         notes,
		status:        status,
		isConstructed: true,
	}
}

func (r *Reservation) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReservationIsNotConstructed
	}
	return nil
}

func (r *Reservation) ID() kernel.UUID {
	return r.id
}

func (r *Reservation) TableID() kernel.UUID {
	return r.tableID
}

func (r *Reservation) Guest() Guest {
	return r.guest
}

func (r *Reservation) TimeSlot() string {
	return r.timeSlot
}

func (r *Reservation) Notes() string {
	return r.notes
}

func (r *Reservation) Status() Status {
	return r.status
}

func (r *Reservation) IsActive() bool {
	return r.status == Active
}

// Update replaces the guest details, slot and notes.
func (r *Reservation) Update(guest Guest, timeSlot, notes string) error {
	if err := errors.Join(r.setGuest(guest), r.setTimeSlot(timeSlot)); err != nil {
		return err
	}
	r.notes = notes
	return nil
}

// MoveTo binds the reservation to another table. Cancelled reservations cannot move.
func (r *Reservation) MoveTo(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}
	if r.status == Cancelled {
		return errs.NewConflictError("reservation", "is cancelled")
	}
	r.tableID = tableID
	return nil
}

// Cancel is idempotent.
func (r *Reservation) Cancel() {
	r.status = Cancelled
}

func (r *Reservation) Clone() *Reservation {
	c := *r
	return &c
}

func (r *Reservation) setGuest(g Guest) error {
	var errList []error
	g.Name = strings.TrimSpace(g.Name)
	if g.Name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customerName"))
	}
	if g.PartySize < 1 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("partySize", fmt.Errorf("%d is less than 1", g.PartySize)))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	r.guest = g
	return nil
}

func (r *Reservation) setTimeSlot(slot string) error {
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return errs.NewValueIsRequiredError("timeSlot")
	}
	r.timeSlot = slot
	return nil
}
