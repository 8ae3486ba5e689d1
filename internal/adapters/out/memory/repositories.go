package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"restaurant/internal/core/domain/model/invoice"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/reservation"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

type orderRepository struct {
	uow *UnitOfWork
}

func (r *orderRepository) Add(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return r.uow.do(func() error {
		if _, exists := r.uow.store.orders[o.ID()]; exists {
			return errs.NewConflictError("order", o.ID().String()+" already exists")
		}
		put(r.uow, r.uow.store.orders, o.ID(), o.Clone())
		return nil
	})
}

func (r *orderRepository) Update(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return r.uow.do(func() error {
		if _, exists := r.uow.store.orders[o.ID()]; !exists {
			return errs.NewObjectNotFoundError("orderId", o.ID())
		}
		put(r.uow, r.uow.store.orders, o.ID(), o.Clone())
		return nil
	})
}

func (r *orderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	var found *order.Order
	err := r.uow.do(func() error {
		o, ok := r.uow.store.orders[id]
		if !ok {
			return errs.NewObjectNotFoundError("orderId", id)
		}
		found = o.Clone()
		return nil
	})
	return found, err
}

func (r *orderRepository) GetByItemID(_ context.Context, itemID kernel.UUID) (*order.Order, error) {
	var found *order.Order
	err := r.uow.do(func() error {
		for _, o := range r.uow.store.orders {
			if _, ok := o.Item(itemID); ok {
				found = o.Clone()
				return nil
			}
		}
		return errs.NewObjectNotFoundError("itemId", itemID)
	})
	return found, err
}

func (r *orderRepository) GetByExternalRef(_ context.Context, ref string) (*order.Order, error) {
	var found *order.Order
	err := r.uow.do(func() error {
		for _, o := range r.uow.store.orders {
			if o.ExternalRef() != "" && o.ExternalRef() == ref {
				found = o.Clone()
				return nil
			}
		}
		return errs.NewObjectNotFoundError("externalRef", ref)
	})
	return found, err
}

func (r *orderRepository) Find(_ context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	var result []*order.Order
	err := r.uow.do(func() error {
		for _, o := range r.uow.store.orders {
			if filter.Matches(o.Status()) {
				result = append(result, o.Clone())
			}
		}
		return nil
	})
	slices.SortFunc(result, func(a, b *order.Order) int { return a.CreatedAt().Compare(b.CreatedAt()) })
	return result, err
}

type tableRepository struct {
	uow *UnitOfWork
}

func (r *tableRepository) Add(_ context.Context, t *table.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	return r.uow.do(func() error {
		for _, existing := range r.uow.store.tables {
			if existing.ID().IsEqual(t.ID()) || (sameFloor(existing.FloorID(), t.FloorID()) && strings.EqualFold(existing.Number(), t.Number())) {
				return errs.NewConflictError("table", t.Number()+" already exists on this floor")
			}
		}
		put(r.uow, r.uow.store.tables, t.ID(), t.Clone())
		return nil
	})
}

func (r *tableRepository) Update(_ context.Context, t *table.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	return r.uow.do(func() error {
		if _, exists := r.uow.store.tables[t.ID()]; !exists {
			return errs.NewObjectNotFoundError("tableId", t.ID())
		}
		put(r.uow, r.uow.store.tables, t.ID(), t.Clone())
		return nil
	})
}

func (r *tableRepository) Get(_ context.Context, id kernel.UUID) (*table.Table, error) {
	var found *table.Table
	err := r.uow.do(func() error {
		t, ok := r.uow.store.tables[id]
		if !ok {
			return errs.NewObjectNotFoundError("tableId", id)
		}
		found = t.Clone()
		return nil
	})
	return found, err
}

func (r *tableRepository) Delete(_ context.Context, id kernel.UUID) error {
	return r.uow.do(func() error {
		if _, ok := r.uow.store.tables[id]; !ok {
			return errs.NewObjectNotFoundError("tableId", id)
		}
		remove(r.uow, r.uow.store.tables, id)
		return nil
	})
}

func (r *tableRepository) GetAll(_ context.Context) ([]*table.Table, error) {
	return r.collect(func(*table.Table) bool { return true })
}

func (r *tableRepository) GetByNumber(_ context.Context, number string) ([]*table.Table, error) {
	number = strings.TrimSpace(number)
	return r.collect(func(t *table.Table) bool { return strings.EqualFold(t.Number(), number) })
}

func (r *tableRepository) CountByFloor(_ context.Context, floorID kernel.UUID) (int64, error) {
	tables, err := r.collect(func(t *table.Table) bool { return sameFloor(t.FloorID(), &floorID) })
	return int64(len(tables)), err
}

func (r *tableRepository) collect(keep func(*table.Table) bool) ([]*table.Table, error) {
	var result []*table.Table
	displayOrder := map[kernel.UUID]int{}
	err := r.uow.do(func() error {
		for id, f := range r.uow.store.floors {
			displayOrder[id] = f.DisplayOrder()
		}
		for _, t := range r.uow.store.tables {
			if keep(t) {
				result = append(result, t.Clone())
			}
		}
		return nil
	})
	slices.SortFunc(result, func(a, b *table.Table) int {
		return cmp.Or(
			cmp.Compare(floorOrder(displayOrder, a.FloorID()), floorOrder(displayOrder, b.FloorID())),
			compareTableNumbers(a.Number(), b.Number()),
		)
	})
	return result, err
}

func floorOrder(displayOrder map[kernel.UUID]int, floorID *kernel.UUID) int {
	if floorID == nil {
		return int(^uint(0) >> 1)
	}
	return displayOrder[*floorID]
}

// compareTableNumbers orders "2" before "10".
func compareTableNumbers(a, b string) int {
	return cmp.Or(cmp.Compare(len(a), len(b)), strings.Compare(a, b))
}

func sameFloor(a, b *kernel.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.IsEqual(*b)
}

type floorRepository struct {
	uow *UnitOfWork
}

func (r *floorRepository) Add(_ context.Context, f *table.Floor) error {
	if err := f.Validate(); err != nil {
		return err
	}
	return r.uow.do(func() error {
		for _, existing := range r.uow.store.floors {
			if existing.ID().IsEqual(f.ID()) || existing.HasName(f.Name()) {
				return errs.NewConflictError("floor", f.Name()+" already exists")
			}
		}
		put(r.uow, r.uow.store.floors, f.ID(), f.Clone())
		return nil
	})
}

func (r *floorRepository) Get(_ context.Context, id kernel.UUID) (*table.Floor, error) {
	var found *table.Floor
	err := r.uow.do(func() error {
		f, ok := r.uow.store.floors[id]
		if !ok {
			return errs.NewObjectNotFoundError("floorId", id)
		}
		found = f.Clone()
		return nil
	})
	return found, err
}

func (r *floorRepository) GetAll(_ context.Context) ([]*table.Floor, error) {
	var result []*table.Floor
	err := r.uow.do(func() error {
		for _, f := range r.uow.store.floors {
			result = append(result, f.Clone())
		}
		return nil
	})
	slices.SortFunc(result, func(a, b *table.Floor) int {
		return cmp.Or(cmp.Compare(a.DisplayOrder(), b.DisplayOrder()), strings.Compare(a.Name(), b.Name()))
	})
	return result, err
}

func (r *floorRepository) GetByName(_ context.Context, name string) (*table.Floor, error) {
	var found *table.Floor
	err := r.uow.do(func() error {
		for _, f := range r.uow.store.floors {
			if f.HasName(name) {
				found = f.Clone()
				return nil
			}
		}
		return errs.NewObjectNotFoundError("floorName", name)
	})
	return found, err
}

func (r *floorRepository) Delete(_ context.Context, id kernel.UUID) error {
	return r.uow.do(func() error {
		if _, ok := r.uow.store.floors[id]; !ok {
			return errs.NewObjectNotFoundError("floorId", id)
		}
		remove(r.uow, r.uow.store.floors, id)
		return nil
	})
}

type invoiceRepository struct {
	uow *UnitOfWork
}

func (r *invoiceRepository) Add(_ context.Context, inv *invoice.Invoice) error {
	if err := inv.Validate(); err != nil {
		return err
	}
	return r.uow.do(func() error {
		for _, existing := range r.uow.store.invoices {
			if existing.ID().IsEqual(inv.ID()) || existing.Number() == inv.Number() {
				return errs.NewConflictError("invoice", inv.Number()+" already exists")
			}
		}
		put(r.uow, r.uow.store.invoices, inv.ID(), inv.Clone())
		return nil
	})
}

func (r *invoiceRepository) Update(_ context.Context, inv *invoice.Invoice) error {
	if err := inv.Validate(); err != nil {
		return err
	}
	return r.uow.do(func() error {
		if _, ok := r.uow.store.invoices[inv.ID()]; !ok {
			return errs.NewObjectNotFoundError("invoiceId", inv.ID())
		}
		put(r.uow, r.uow.store.invoices, inv.ID(), inv.Clone())
		return nil
	})
}

func (r *invoiceRepository) Get(_ context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	var found *invoice.Invoice
	err := r.uow.do(func() error {
		inv, ok := r.uow.store.invoices[id]
		if !ok {
			return errs.NewObjectNotFoundError("invoiceId", id)
		}
		found = inv.Clone()
		return nil
	})
	return found, err
}

func (r *invoiceRepository) GetByNumber(_ context.Context, number string) (*invoice.Invoice, error) {
	var found *invoice.Invoice
	err := r.uow.do(func() error {
		for _, inv := range r.uow.store.invoices {
			if inv.Number() == number {
				found = inv.Clone()
				return nil
			}
		}
		return errs.NewObjectNotFoundError("invoiceNumber", number)
	})
	return found, err
}

func (r *invoiceRepository) GetAll(_ context.Context) ([]*invoice.Invoice, error) {
	var result []*invoice.Invoice
	err := r.uow.do(func() error {
		for _, inv := range r.uow.store.invoices {
			result = append(result, inv.Clone())
		}
		return nil
	})
	slices.SortFunc(result, func(a, b *invoice.Invoice) int { return b.CreatedAt().Compare(a.CreatedAt()) })
	return result, err
}

func (r *invoiceRepository) Count(_ context.Context) (int64, error) {
	var n int64
	err := r.uow.do(func() error {
		n = int64(len(r.uow.store.invoices))
		return nil
	})
	return n, err
}

type reservationRepository struct {
	uow *UnitOfWork
}

func (r *reservationRepository) Add(_ context.Context, res *reservation.Reservation) error {
	if err := res.Validate(); err != nil {
		return err
	}
	return r.uow.do(func() error {
		if _, exists := r.uow.store.reservations[res.ID()]; exists {
			return errs.NewConflictError("reservation", res.ID().String()+" already exists")
		}
		put(r.uow, r.uow.store.reservations, res.ID(), res.Clone())
		return nil
	})
}

func (r *reservationRepository) Update(_ context.Context, res *reservation.Reservation) error {
	if err := res.Validate(); err != nil {
		return err
	}
	return r.uow.do(func() error {
		if _, exists := r.uow.store.reservations[res.ID()]; !exists {
			return errs.NewObjectNotFoundError("reservationId", res.ID())
		}
		put(r.uow, r.uow.store.reservations, res.ID(), res.Clone())
		return nil
	})
}

func (r *reservationRepository) Get(_ context.Context, id kernel.UUID) (*reservation.Reservation, error) {
	var found *reservation.Reservation
	err := r.uow.do(func() error {
		res, ok := r.uow.store.reservations[id]
		if !ok {
			return errs.NewObjectNotFoundError("reservationId", id)
		}
		found = res.Clone()
		return nil
	})
	return found, err
}

func (r *reservationRepository) Delete(_ context.Context, id kernel.UUID) error {
	return r.uow.do(func() error {
		if _, ok := r.uow.store.reservations[id]; !ok {
			return errs.NewObjectNotFoundError("reservationId", id)
		}
		remove(r.uow, r.uow.store.reservations, id)
		return nil
	})
}

func (r *reservationRepository) GetAll(_ context.Context) ([]*reservation.Reservation, error) {
	return r.collect(func(*reservation.Reservation) bool { return true })
}

func (r *reservationRepository) GetByTable(_ context.Context, tableID kernel.UUID) ([]*reservation.Reservation, error) {
	return r.collect(func(res *reservation.Reservation) bool { return res.TableID().IsEqual(tableID) })
}

func (r *reservationRepository) collect(keep func(*reservation.Reservation) bool) ([]*reservation.Reservation, error) {
	var result []*reservation.Reservation
	err := r.uow.do(func() error {
		for _, res := range r.uow.store.reservations {
			if keep(res) {
				result = append(result, res.Clone())
			}
		}
		return nil
	})
	slices.SortFunc(result, func(a, b *reservation.Reservation) int {
		return cmp.Or(strings.Compare(a.TimeSlot(), b.TimeSlot()), strings.Compare(a.ID().String(), b.ID().String()))
	})
	return result, err
}

type menuItemRepository struct {
	uow *UnitOfWork
}

func (r *menuItemRepository) Add(_ context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	return r.uow.do(func() error {
		for _, existing := range r.uow.store.menuItems {
			if existing.ID().IsEqual(item.ID()) || existing.HasName(item.Name()) {
				return errs.NewConflictError("menu item", item.Name()+" already exists")
			}
		}
		put(r.uow, r.uow.store.menuItems, item.ID(), item.Clone())
		return nil
	})
}

func (r *menuItemRepository) GetAll(_ context.Context) ([]*menu.MenuItem, error) {
	var result []*menu.MenuItem
	err := r.uow.do(func() error {
		for _, item := range r.uow.store.menuItems {
			result = append(result, item.Clone())
		}
		return nil
	})
	slices.SortFunc(result, func(a, b *menu.MenuItem) int {
		return cmp.Or(strings.Compare(a.Category(), b.Category()), strings.Compare(a.Name(), b.Name()))
	})
	return result, err
}

func (r *menuItemRepository) GetByName(_ context.Context, name string) (*menu.MenuItem, error) {
	var found *menu.MenuItem
	err := r.uow.do(func() error {
		for _, item := range r.uow.store.menuItems {
			if item.HasName(name) {
				found = item.Clone()
				return nil
			}
		}
		return errs.NewObjectNotFoundError("menuItemName", name)
	})
	return found, err
}

type settingRepository struct {
	uow *UnitOfWork
}

func (r *settingRepository) Get(_ context.Context, key string) (string, error) {
	var value string
	err := r.uow.do(func() error {
		v, ok := r.uow.store.settings[key]
		if !ok {
			return errs.NewObjectNotFoundError("settingKey", key)
		}
		value = v
		return nil
	})
	return value, err
}

func (r *settingRepository) Set(_ context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return errs.NewValueIsRequiredError("key")
	}
	return r.uow.do(func() error {
		put(r.uow, r.uow.store.settings, key, value)
		return nil
	})
}
