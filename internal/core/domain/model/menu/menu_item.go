// Package menu holds the catalog entries orders refer to. Only lookups are
// modelled; maintaining the catalog is done elsewhere.
package menu

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

type MenuItem struct {
	id        kernel.UUID
	name      string
	category  string
	price     kernel.Money
	isVeg     bool
	available bool

	isConstructed bool
}

func NewMenuItem(id kernel.UUID, name, category string, price kernel.Money, isVeg bool) (*MenuItem, error) {
	var priceErr error
	if price.IsNegative() {
		priceErr = errs.NewValueIsInvalidError("price")
	}
	name = strings.TrimSpace(name)
	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if err := errors.Join(id.Validate(), nameErr, priceErr); err != nil {
		return nil, err
	}
	return &MenuItem{
		id:            id,
		name:          name,
		category:      strings.TrimSpace(category),
		price:         price,
		isVeg:         isVeg,
		available:     true,
		isConstructed: true,
	}, nil
}

func RestoreMenuItem(id kernel.UUID, name, category string, price kernel.Money, isVeg, available bool) *MenuItem {
	return &MenuItem{
		id:            id,
		name:          name,
		category:      category,
		price:         price,
		isVeg:         isVeg,
		available:     available,
		isConstructed: true,
	}
}

func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

func (m *MenuItem) Name() string {
	return m.name
}

func (m *MenuItem) Category() string {
	return m.category
}

func (m *MenuItem) Price() kernel.Money {
	return m.price
}

func (m *MenuItem) IsVeg() bool {
	return m.isVeg
}

func (m *MenuItem) Available() bool {
	return m.available
}

// HasName compares names case-insensitively.
func (m *MenuItem) HasName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), m.name)
}

func (m *MenuItem) Clone() *MenuItem {
	c := *m
	return &c
}
