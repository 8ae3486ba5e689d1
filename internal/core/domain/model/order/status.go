package order

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Saved ─────────┬──> SentToKitchen ──┬──> Billed ──> Paid
//	               │                    │
//	               └────────────────────┴──> Completed
//
// Status is a value object: every transition method returns the next status
// or an error and never mutates the receiver.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Saved is the initial status. The order is editable and invisible to the kitchen.
	Saved

	// SentToKitchen means at least one KOT was sent; the order shows on the kitchen board.
	SentToKitchen

	// Billed means a bill was printed. Items may still be in preparation.
	Billed

	// Paid is terminal. The order was checked out and an invoice exists.
	Paid

	// Completed is terminal for delivery and pickup orders handed over to the customer.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "unknown",
		Saved:         "saved",
		SentToKitchen: "sent_to_kitchen",
		Billed:        "billed",
		Paid:          "paid",
		Completed:     "completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Saved:         "saved",
		SentToKitchen: "sent_to_kitchen",
		Billed:        "billed",
		Paid:          "paid",
		Completed:     "completed",
	}
}

// ParseStatus converts the persisted string form back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if strings.EqualFold(str, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, or "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Paid || s == Completed
}

// IsActive reports whether the order belongs on the kitchen board.
func (s Status) IsActive() bool {
	return s == SentToKitchen || s == Billed
}

func (s Status) validateNotTerminal(action string) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() {
		return errs.NewConflictError("order", fmt.Sprintf("in status %s cannot be %s", s, action))
	}
	return nil
}

// Save returns the status after saving the order without a kitchen dispatch.
//
// Valid transitions:
//   - Saved -> Saved
//   - SentToKitchen -> SentToKitchen (saving never pulls an order off the kitchen board)
//   - Billed -> Billed
func (s Status) Save() (Status, error) {
	if err := s.validateNotTerminal("saved"); err != nil {
		return Unknown, err
	}
	return s, nil
}

// SendToKitchen returns the status after a KOT.
//
// Valid transitions:
//   - Saved -> SentToKitchen
//   - SentToKitchen -> SentToKitchen (additional KOT)
//   - Billed -> Billed (dispatch does not undo billing)
func (s Status) SendToKitchen() (Status, error) {
	if err := s.validateNotTerminal("sent to kitchen"); err != nil {
		return Unknown, err
	}
	if s == Billed {
		return Billed, nil
	}
	return SentToKitchen, nil
}

// Bill returns Billed from any non-terminal status.
func (s Status) Bill() (Status, error) {
	if err := s.validateNotTerminal("billed"); err != nil {
		return Unknown, err
	}
	return Billed, nil
}

// Pay returns Paid from any non-terminal status. Checkout does not require
// the kitchen to be done.
func (s Status) Pay() (Status, error) {
	if err := s.validateNotTerminal("paid"); err != nil {
		return Unknown, err
	}
	return Paid, nil
}

// Complete returns Completed from any non-terminal status. Order type and item
// readiness are checked by the aggregate.
func (s Status) Complete() (Status, error) {
	if err := s.validateNotTerminal("completed"); err != nil {
		return Unknown, err
	}
	return Completed, nil
}
