package table

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status is the visible state of a table on the floor plan.
type Status string

const (
	Free      Status = "free"
	Occupied  Status = "occupied"
	Preparing Status = "preparing"
	Ready     Status = "ready"
	Served    Status = "served"
	Reserved  Status = "reserved"
)

// ParseStatus validates a persisted status string.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	switch s {
	case Free, Occupied, Preparing, Ready, Served, Reserved:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid table status", string(s)))
}

// IsSeated reports whether the status implies a current order.
func (s Status) IsSeated() bool {
	switch s {
	case Occupied, Preparing, Ready, Served:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
