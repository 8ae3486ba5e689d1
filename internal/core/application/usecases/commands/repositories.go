// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence and, after a successful commit, change notifications.
package commands

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// Clock returns the current time. Handlers take one so tests can pin timestamps.
type Clock func() time.Time

func clockOrNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

// outbox collects the events of one unit of work. They are published only
// after the commit succeeded, so listeners never see rolled-back changes.
type outbox struct {
	now    Clock
	events []ports.Event
}

func newOutbox(now Clock) *outbox {
	return &outbox{now: now}
}

func (o *outbox) add(eventType ports.EventType, data any) {
	o.events = append(o.events, ports.Event{Type: eventType, Data: data, OccurredAt: o.now()})
}

func (o *outbox) addTable(t *table.Table) {
	o.add(ports.EventTableUpdated, views.NewTable(t))
}

func (o *outbox) flush(ctx context.Context, publisher ports.EventPublisher) {
	if publisher == nil {
		return
	}
	for _, e := range o.events {
		publisher.Publish(ctx, e)
	}
	o.events = nil
}

// seatedTable loads the table of a dine-in order, nil when the order has none.
func seatedTable(ctx context.Context, repo ports.TableRepository, o *order.Order) (*table.Table, error) {
	if o.TableID() == nil {
		return nil, nil
	}
	return repo.Get(ctx, *o.TableID())
}

// projectOntoTable recomputes the table status from the items of o and
// stores it. It returns the table when it changed.
func projectOntoTable(ctx context.Context, repo ports.TableRepository, o *order.Order) (*table.Table, error) {
	t, err := seatedTable(ctx, repo, o)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil || t == nil {
		return nil, err
	}

	changed, err := services.NewTableStatusProjector().Apply(o, t)
	if err != nil || !changed {
		return nil, err
	}
	if err = repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// releaseTable frees the table of o if it still serves o. It returns the
// table when it changed.
func releaseTable(ctx context.Context, repo ports.TableRepository, o *order.Order) (*table.Table, error) {
	t, err := seatedTable(ctx, repo, o)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil || t == nil {
		return nil, err
	}
	if !t.Release(o.ID()) {
		return nil, nil
	}
	if err = repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// hasActiveReservation reports whether the table holds an active reservation
// other than except.
func hasActiveReservation(
	ctx context.Context,
	repo ports.ReservationRepository,
	tableID kernel.UUID,
	except *kernel.UUID,
) (bool, error) {
	existing, err := repo.GetByTable(ctx, tableID)
	if err != nil {
		return false, err
	}
	for _, r := range existing {
		if except != nil && r.ID().IsEqual(*except) {
			continue
		}
		if r.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

// unreserveIfUnclaimed frees a reserved table once no active reservation and
// no order hold it. It returns the table when it changed.
func unreserveIfUnclaimed(ctx context.Context, uow ports.UnitOfWork, tableID kernel.UUID) (*table.Table, error) {
	active, err := hasActiveReservation(ctx, uow.ReservationRepository(), tableID, nil)
	if err != nil || active {
		return nil, err
	}
	t, err := uow.TableRepository().Get(ctx, tableID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !t.Unreserve() {
		return nil, nil
	}
	if err = uow.TableRepository().Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// reserveIfFree marks a free table reserved. It returns the table when it changed.
func reserveIfFree(ctx context.Context, repo ports.TableRepository, t *table.Table) (*table.Table, error) {
	if !t.Reserve() {
		return nil, nil
	}
	if err := repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func reservationConflict(t *table.Table) error {
	return errs.NewConflictError("table", t.Number()+" already has an active reservation")
}
