package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/billing"
	"restaurant/internal/core/domain/model/digitalmenu"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"go.uber.org/zap"
)

// SyncMetrics receives the counters of the digital-menu sync. A nil
// SyncMetrics records nothing.
type SyncMetrics interface {
	OrderImported()
	OrderFailed()
	StatusPropagated()
	PollFailed()
	ObservePoll(d time.Duration)
}

// SyncReport summarises one cycle.
type SyncReport struct {
	Imported   int
	Failed     int
	Propagated int
}

// SyncDigitalMenuOrdersCommandHandler imports new digital-menu orders as
// kitchen orders and mirrors later status changes of already imported ones
// onto their items.
//
// A failure on one document never stops the cycle. Only a failing feed
// query fails the whole cycle.
type SyncDigitalMenuOrdersCommandHandler struct {
	uowFactory   ports.UnitOfWorkFactory
	feed         ports.DigitalMenuFeed
	state        *SyncState
	itemsHandler UpdateOrderItemsStatusCommandHandler
	publisher    ports.EventPublisher
	metrics      SyncMetrics
	logger       *zap.Logger
	now          Clock
	resolver     services.TableResolver
}

func NewSyncDigitalMenuOrdersCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	feed ports.DigitalMenuFeed,
	state *SyncState,
	publisher ports.EventPublisher,
	metrics SyncMetrics,
	logger *zap.Logger,
	now Clock,
) (SyncDigitalMenuOrdersCommandHandler, error) {
	if feed == nil {
		return SyncDigitalMenuOrdersCommandHandler{}, errs.NewValueIsRequiredError("feed")
	}
	if state == nil {
		return SyncDigitalMenuOrdersCommandHandler{}, errs.NewValueIsRequiredError("state")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	now = clockOrNow(now)
	return SyncDigitalMenuOrdersCommandHandler{
		uowFactory:   uowFactory,
		feed:         feed,
		state:        state,
		itemsHandler: NewUpdateOrderItemsStatusCommandHandler(uowFactory, publisher, now),
		publisher:    publisher,
		metrics:      metrics,
		logger:       logger.Named("digital_menu_sync"),
		now:          now,
		resolver:     services.NewTableResolver(),
	}, nil
}

func (h SyncDigitalMenuOrdersCommandHandler) Handle(ctx context.Context, cmd SyncDigitalMenuOrdersCommand) (SyncReport, error) {
	if err := cmd.Validate(); err != nil {
		return SyncReport{}, err
	}

	started := h.now()
	var report SyncReport
	err := h.importNew(ctx, &report)
	if err == nil {
		err = h.propagateStatuses(ctx, &report)
	}
	if err != nil && h.metrics != nil {
		h.metrics.PollFailed()
	}

	finished := h.now()
	if h.metrics != nil {
		h.metrics.ObservePoll(finished.Sub(started))
	}
	h.state.RecordCycle(finished, err)
	return report, err
}

func (h SyncDigitalMenuOrdersCommandHandler) importNew(ctx context.Context, report *SyncReport) error {
	docs, err := h.feed.FindUnsynced(ctx)
	if err != nil {
		return fmt.Errorf("find unsynced digital menu orders: %w", err)
	}

	for _, doc := range docs {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if h.state.IsProcessed(doc.ID) || !doc.Status.IsImportable() {
			continue
		}

		log := h.logger.With(zap.String("digitalMenuOrderId", doc.ID))
		o, err := h.importOrder(ctx, doc, log)
		if err != nil {
			report.Failed++
			if h.metrics != nil {
				h.metrics.OrderFailed()
			}
			log.Error("import digital menu order", zap.Error(err))
			continue
		}

		// Without the flag the document would be imported again after a
		// restart; the order exists, so the next cycle only re-marks it.
		if err = h.feed.MarkSynced(ctx, doc.ID, o.ID().String(), h.now()); err != nil {
			report.Failed++
			if h.metrics != nil {
				h.metrics.OrderFailed()
			}
			log.Error("mark digital menu order synced", zap.Stringer("orderId", o.ID()), zap.Error(err))
			continue
		}

		h.state.MarkProcessed(doc.ID, doc.Status)
		report.Imported++
		if h.metrics != nil {
			h.metrics.OrderImported()
		}
		if h.publisher != nil {
			h.publisher.Publish(ctx, ports.Event{
				Type: ports.EventDigitalMenuOrderSynced,
				Data: views.DigitalMenuOrderSynced{
					DigitalMenuOrderID: doc.ID,
					POSOrderID:         o.ID(),
					TableID:            o.TableID(),
				},
				OccurredAt: h.now(),
			})
		}
		log.Info("digital menu order imported",
			zap.Stringer("orderId", o.ID()),
			zap.Int("items", len(o.Items())),
		)
	}
	return nil
}

// importOrder creates the kitchen order of doc, or returns the one an earlier
// cycle created.
func (h SyncDigitalMenuOrdersCommandHandler) importOrder(
	ctx context.Context,
	doc digitalmenu.Order,
	log *zap.Logger,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.GetByExternalRef(ctx, doc.ID)
	if err == nil {
		log.Info("digital menu order already imported", zap.Stringer("orderId", existing.ID()))
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	seat, err := h.resolveTable(ctx, uow, doc, log)
	if err != nil {
		return nil, err
	}

	items, err := h.importItems(ctx, uow.MenuItemRepository(), doc)
	if err != nil {
		return nil, err
	}

	var tableID *kernel.UUID
	if seat != nil {
		id := seat.ID()
		tableID = &id
	}
	o, err := order.NewImportedOrder(
		kernel.NewUUID(),
		doc.ID,
		tableID,
		order.Customer{Name: doc.CustomerName, Phone: doc.CustomerPhone},
		items,
		kernel.NewMoneyFromFloat(doc.Total),
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	computed := billing.Calculate(billingLines(o)).Total
	if !computed.WithinTolerance(o.Total()) {
		log.Warn("digital menu total differs from computed bill",
			zap.Stringer("declared", o.Total()),
			zap.Stringer("computed", computed),
		)
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	events := newOutbox(h.now)
	events.add(ports.EventOrderCreated, views.NewOrder(o))
	if seat != nil {
		if err = seat.Occupy(o.ID()); err != nil {
			log.Warn("digital menu table is serving another order",
				zap.String("tableNumber", seat.Number()),
				zap.Error(err),
			)
		} else {
			if err = uow.TableRepository().Update(ctx, seat); err != nil {
				return nil, err
			}
			events.addTable(seat)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	events.flush(ctx, h.publisher)
	return o, nil
}

func (h SyncDigitalMenuOrdersCommandHandler) resolveTable(
	ctx context.Context,
	uow ports.UnitOfWork,
	doc digitalmenu.Order,
	log *zap.Logger,
) (*table.Table, error) {
	if strings.TrimSpace(doc.TableNumber) == "" {
		return nil, nil
	}

	tables, err := uow.TableRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	floors, err := uow.FloorRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	res := h.resolver.Resolve(tables, floors, doc.TableNumber, doc.FloorNumber)
	switch {
	case res.Table == nil:
		log.Warn("digital menu table not found",
			zap.String("tableNumber", doc.TableNumber),
			zap.String("floor", doc.FloorNumber),
		)
	case res.Ambiguous:
		log.Warn("digital menu table is ambiguous, using the first match",
			zap.String("tableNumber", doc.TableNumber),
			zap.String("floor", doc.FloorNumber),
			zap.Int("candidates", res.Candidates),
		)
	case strings.TrimSpace(doc.FloorNumber) != "" && !res.FloorMatched:
		log.Warn("digital menu floor not found, matched by table number",
			zap.String("floor", doc.FloorNumber),
		)
	}
	return res.Table, nil
}

// importItems builds the order lines. A line whose name is on the menu links
// to that menu item and takes its veg flag; other lines count as veg.
func (h SyncDigitalMenuOrdersCommandHandler) importItems(
	ctx context.Context,
	menuRepo ports.MenuItemRepository,
	doc digitalmenu.Order,
) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(doc.Items))
	for _, line := range doc.Items {
		var menuItemID *kernel.UUID
		isVeg := true
		m, err := menuRepo.GetByName(ctx, line.MenuItemName)
		switch {
		case err == nil:
			id := m.ID()
			menuItemID = &id
			isVeg = m.IsVeg()
		case !errors.Is(err, errs.ErrObjectNotFound):
			return nil, err
		}

		item, err := order.NewItem(
			kernel.NewUUID(),
			menuItemID,
			line.MenuItemName,
			line.Quantity,
			kernel.NewMoneyFromFloat(line.Price),
			line.KitchenNotes(),
			isVeg,
		)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", line.MenuItemName, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (h SyncDigitalMenuOrdersCommandHandler) propagateStatuses(ctx context.Context, report *SyncReport) error {
	docs, err := h.feed.FindSynced(ctx)
	if err != nil {
		return fmt.Errorf("find synced digital menu orders: %w", err)
	}

	for _, doc := range docs {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if last, ok := h.state.LastStatus(doc.ID); ok && last == doc.Status {
			continue
		}

		log := h.logger.With(zap.String("digitalMenuOrderId", doc.ID), zap.String("status", string(doc.Status)))
		moved, err := h.propagate(ctx, doc)
		switch {
		case err == nil:
			h.state.SetLastStatus(doc.ID, doc.Status)
			if moved > 0 {
				report.Propagated++
				if h.metrics != nil {
					h.metrics.StatusPropagated()
				}
				log.Info("digital menu status propagated", zap.Int("items", moved))
			}
		case errors.Is(err, errs.ErrObjectNotFound),
			errors.Is(err, errs.ErrValueIsInvalid),
			errors.Is(err, errs.ErrValueIsRequired):
			// Nothing to retry: the link is broken or the status is unknown.
			h.state.SetLastStatus(doc.ID, doc.Status)
			log.Warn("skip digital menu status", zap.Error(err))
		default:
			log.Error("propagate digital menu status", zap.Error(err))
		}
	}
	return nil
}

func (h SyncDigitalMenuOrdersCommandHandler) propagate(ctx context.Context, doc digitalmenu.Order) (int, error) {
	if strings.TrimSpace(doc.POSOrderID) == "" {
		return 0, errs.NewValueIsRequiredError("posOrderId")
	}
	orderID, err := kernel.UUIDFromString(doc.POSOrderID)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("posOrderId", err)
	}
	target, err := doc.Status.ItemStatus()
	if err != nil {
		return 0, err
	}

	cmd, err := NewUpdateOrderItemsStatusCommand(orderID, target)
	if err != nil {
		return 0, err
	}
	_, moved, err := h.itemsHandler.Handle(ctx, cmd)
	return moved, err
}
