package table

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrFloorIsNotConstructed = errors.New("Floor must be created via NewFloor constructor")

// Floor is a named group of tables, e.g. "Ground Floor".
type Floor struct {
	id           kernel.UUID
	name         string
	displayOrder int

	isConstructed bool
}

func NewFloor(id kernel.UUID, name string, displayOrder int) (*Floor, error) {
	f := &Floor{
		displayOrder:  displayOrder,
		isConstructed: true,
	}
	if err := errors.Join(f.setID(id), f.setName(name)); err != nil {
		return nil, err
	}
	return f, nil
}

func RestoreFloor(id kernel.UUID, name string, displayOrder int) *Floor {
	return &Floor{
		id:            id,
		name:          name,
		displayOrder:  displayOrder,
		isConstructed: true,
	}
}

func (f *Floor) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFloorIsNotConstructed
	}
	return nil
}

func (f *Floor) ID() kernel.UUID {
	return f.id
}

func (f *Floor) Name() string {
	return f.name
}

func (f *Floor) DisplayOrder() int {
	return f.displayOrder
}

// HasName compares floor names case-insensitively, ignoring surrounding spaces.
func (f *Floor) HasName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), f.name)
}

func (f *Floor) Clone() *Floor {
	c := *f
	return &c
}

func (f *Floor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *Floor) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	f.name = name
	return nil
}
