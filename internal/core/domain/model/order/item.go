package order

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned for Item values that bypassed NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an Order. Name and price are snapshots taken when the
// line was added, so later menu edits do not change existing orders.
type Item struct {
	id         kernel.UUID
	menuItemID *kernel.UUID
	name       string
	quantity   int
	price      kernel.Money
	notes      string
	isVeg      bool
	status     ItemStatus

	isConstructed bool
}

// NewItem creates an item in status new.
//
// Parameters:
//   - id: line identifier
//   - menuItemID: catalog reference, nil when the line could not be matched to the menu
//   - name: name snapshot (required)
//   - quantity: at least 1
//   - price: unit price snapshot, not negative
func NewItem(
	id kernel.UUID,
	menuItemID *kernel.UUID,
	name string,
	quantity int,
	price kernel.Money,
	notes string,
	isVeg bool,
) (*Item, error) {
	item := &Item{
		menuItemID:    menuItemID,
		notes:         notes,
		isVeg:         isVeg,
		status:        ItemNew,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem rebuilds an item from persistence without validation.
func RestoreItem(
	id kernel.UUID,
	menuItemID *kernel.UUID,
	name string,
	quantity int,
	price kernel.Money,
	notes string,
	isVeg bool,
	status ItemStatus,
) *Item {
	return &Item{
		id:            id,
		menuItemID:    menuItemID,
		name:          name,
		quantity:      quantity,
		price:         price,
		notes:         notes,
		isVeg:         isVeg,
		status:        status,
		isConstructed: true,
	}
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// MenuItemID returns the catalog reference, nil for unmatched imported lines.
func (i *Item) MenuItemID() *kernel.UUID {
	return i.menuItemID
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price snapshot.
func (i *Item) Price() kernel.Money {
	return i.price
}

func (i *Item) Notes() string {
	return i.notes
}

func (i *Item) IsVeg() bool {
	return i.isVeg
}

func (i *Item) Status() ItemStatus {
	return i.status
}

// LineTotal returns price × quantity.
func (i *Item) LineTotal() kernel.Money {
	return i.price.Times(i.quantity)
}

func (i *Item) clone() *Item {
	c := *i
	if i.menuItemID != nil {
		id := *i.menuItemID
		c.menuItemID = &id
	}
	return &c
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) transitionTo(target ItemStatus) error {
	next, err := i.status.TransitionTo(target)
	if err != nil {
		return err
	}
	i.status = next
	return nil
}

func (i *Item) promoteTo(target ItemStatus) (bool, error) {
	next, err := i.status.PromoteTo(target)
	if err != nil {
		return false, err
	}
	changed := next != i.status
	i.status = next
	return changed, nil
}
