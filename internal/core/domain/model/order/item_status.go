package order

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// ItemStatus is the kitchen state of a single order line.
//
//	New ──> Preparing ──> Ready ──> Served
//
// The zero value is invalid. Statuses are ordered, so "forward" comparisons
// use the underlying integer.
type ItemStatus int

const (
	ItemUnknown ItemStatus = iota
	ItemNew
	ItemPreparing
	ItemReady
	ItemServed
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemUnknown:   "unknown",
		ItemNew:       "new",
		ItemPreparing: "preparing",
		ItemReady:     "ready",
		ItemServed:    "served",
	}
}

// ParseItemStatus converts the persisted string form back into an ItemStatus.
func ParseItemStatus(s string) (ItemStatus, error) {
	for status, str := range getItemStatusStrings() {
		if status != ItemUnknown && strings.EqualFold(str, s) {
			return status, nil
		}
	}
	return ItemUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid item status", s))
}

func (s ItemStatus) Validate() error {
	if s < ItemNew || s > ItemServed {
		return errs.NewValueIsInvalidErrorWithCause("item status is invalid", fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsReadyOrServed reports whether the kitchen is done with the item.
func (s ItemStatus) IsReadyOrServed() bool {
	return s == ItemReady || s == ItemServed
}

// Advance moves one step forward. Served items cannot advance.
func (s ItemStatus) Advance() (ItemStatus, error) {
	if err := s.Validate(); err != nil {
		return ItemUnknown, err
	}
	if s == ItemServed {
		return ItemUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s is the last item status", s))
	}
	return s + 1, nil
}

// TransitionTo returns target if it is the same as or ahead of s.
// Moving backwards is rejected.
func (s ItemStatus) TransitionTo(target ItemStatus) (ItemStatus, error) {
	if err := target.Validate(); err != nil {
		return ItemUnknown, err
	}
	if err := s.Validate(); err != nil {
		return ItemUnknown, err
	}
	if target < s {
		return ItemUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("item status cannot move back from %s to %s", s, target),
		)
	}
	return target, nil
}

// PromoteTo is TransitionTo without the regression error: a status already
// past target is returned unchanged.
func (s ItemStatus) PromoteTo(target ItemStatus) (ItemStatus, error) {
	if err := target.Validate(); err != nil {
		return ItemUnknown, err
	}
	if s > target {
		return s, nil
	}
	return target, nil
}
