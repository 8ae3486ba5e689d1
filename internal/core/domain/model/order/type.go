package order

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// Type is the fulfilment channel of an order.
type Type string

const (
	DineIn   Type = "dine-in"
	Delivery Type = "delivery"
	Pickup   Type = "pickup"
)

// ParseType accepts the channel names case-insensitively; "dine_in" is accepted as an alias.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dine-in", "dine_in", "dinein":
		return DineIn, nil
	case "delivery":
		return Delivery, nil
	case "pickup":
		return Pickup, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("orderType", fmt.Errorf("%q is not one of dine-in, delivery, pickup", s))
}

func (t Type) Validate() error {
	switch t {
	case DineIn, Delivery, Pickup:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("orderType", fmt.Errorf("%q is not a valid order type", string(t)))
}

func (t Type) String() string {
	return string(t)
}

// Source tells where an order was placed.
type Source string

const (
	SourcePOS         Source = "pos"
	SourceDigitalMenu Source = "digital_menu"
)

func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourcePOS, SourceDigitalMenu:
		return Source(s), nil
	case "":
		return SourcePOS, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("source", fmt.Errorf("%q is not a valid order source", s))
}

func (s Source) String() string {
	return string(s)
}
