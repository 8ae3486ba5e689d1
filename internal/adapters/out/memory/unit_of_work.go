// Package memory is the in-process storage backend. It serves single-node
// deployments without a database and the use-case tests.
//
// A unit of work holds the store lock from Begin until Commit or Rollback, so
// transactions are serialised. Writes record an undo step that Rollback
// replays. Aggregates are cloned on the way in and out; callers never share
// state with the store.
package memory

import (
	"context"
	"errors"
	"sync"

	"restaurant/internal/core/domain/model/invoice"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/reservation"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
)

// ErrNoTransaction is returned by Commit and Rollback without a prior Begin.
var ErrNoTransaction = errors.New("no active transaction")

// Store holds all entities.
type Store struct {
	mu sync.Mutex

	orders       map[kernel.UUID]*order.Order
	tables       map[kernel.UUID]*table.Table
	floors       map[kernel.UUID]*table.Floor
	invoices     map[kernel.UUID]*invoice.Invoice
	reservations map[kernel.UUID]*reservation.Reservation
	menuItems    map[kernel.UUID]*menu.MenuItem
	settings     map[string]string
}

func NewStore() *Store {
	return &Store{
		orders:       make(map[kernel.UUID]*order.Order),
		tables:       make(map[kernel.UUID]*table.Table),
		floors:       make(map[kernel.UUID]*table.Floor),
		invoices:     make(map[kernel.UUID]*invoice.Invoice),
		reservations: make(map[kernel.UUID]*reservation.Reservation),
		menuItems:    make(map[kernel.UUID]*menu.MenuItem),
		settings:     make(map[string]string),
	}
}

var _ ports.UnitOfWorkFactory = UnitOfWorkFactory{}

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) UnitOfWorkFactory {
	return UnitOfWorkFactory{store: store}
}

func (f UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

var _ ports.UnitOfWork = &UnitOfWork{}

type UnitOfWork struct {
	store *Store
	inTx  bool
	undo  []func()
}

func (u *UnitOfWork) Begin(_ context.Context) error {
	u.store.mu.Lock()
	u.inTx = true
	u.undo = nil
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.inTx {
		return ErrNoTransaction
	}
	u.inTx = false
	u.undo = nil
	u.store.mu.Unlock()
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.inTx {
		return ErrNoTransaction
	}
	for i := len(u.undo) - 1; i >= 0; i-- {
		u.undo[i]()
	}
	u.inTx = false
	u.undo = nil
	u.store.mu.Unlock()
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: u}
}

func (u *UnitOfWork) TableRepository() ports.TableRepository {
	return &tableRepository{uow: u}
}

func (u *UnitOfWork) FloorRepository() ports.FloorRepository {
	return &floorRepository{uow: u}
}

func (u *UnitOfWork) InvoiceRepository() ports.InvoiceRepository {
	return &invoiceRepository{uow: u}
}

func (u *UnitOfWork) ReservationRepository() ports.ReservationRepository {
	return &reservationRepository{uow: u}
}

func (u *UnitOfWork) MenuItemRepository() ports.MenuItemRepository {
	return &menuItemRepository{uow: u}
}

func (u *UnitOfWork) SettingRepository() ports.SettingRepository {
	return &settingRepository{uow: u}
}

// do runs fn under the store lock, which a transaction already holds.
func (u *UnitOfWork) do(fn func() error) error {
	if u.inTx {
		return fn()
	}
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	return fn()
}

func put[K comparable, V any](u *UnitOfWork, m map[K]V, key K, value V) {
	prev, existed := m[key]
	m[key] = value
	if !u.inTx {
		return
	}
	u.undo = append(u.undo, func() {
		if existed {
			m[key] = prev
			return
		}
		delete(m, key)
	})
}

func remove[K comparable, V any](u *UnitOfWork, m map[K]V, key K) {
	prev, existed := m[key]
	if !existed {
		return
	}
	delete(m, key)
	if u.inTx {
		u.undo = append(u.undo, func() { m[key] = prev })
	}
}
