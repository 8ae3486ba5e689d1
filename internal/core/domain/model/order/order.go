package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// DefaultPaymentMode is recorded when checkout does not name one.
const DefaultPaymentMode = "cash"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or NewImportedOrder factories.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an empty order is sent to the kitchen.
	ErrOrderHasNoItems = errs.NewValueIsInvalidErrorWithCause("items", errors.New("order has no items"))

	// ErrTableIsRequired is returned when a dine-in order is sent to the kitchen without a table.
	ErrTableIsRequired = errs.NewValueIsRequiredErrorWithCause("tableId", errors.New("dine-in orders need a table"))

	// ErrItemsNotReady is returned when a delivery or pickup order is completed
	// while the kitchen still works on it.
	ErrItemsNotReady = errs.NewValueIsInvalidErrorWithCause("items", errors.New("all items must be ready or served"))
)

// Customer holds the optional contact details of an order.
type Customer struct {
	Name    string
	Phone   string
	Address string
}

// Order is the aggregate root of one restaurant transaction.
//
// Order follows these invariants:
//   - tableID is only set for dine-in orders
//   - total equals Σ price × quantity of the items, except for imported orders
//     whose total is the one declared by the ordering channel
//   - billedAt, paidAt and completedAt are set once and never cleared
//   - paid and completed orders reject item edits and status transitions
type Order struct {
	id          kernel.UUID
	orderType   Type
	source      Source
	externalRef string
	tableID     *kernel.UUID
	customer    Customer
	items       []*Item
	total       kernel.Money
	status      Status
	paymentMode string

	createdAt   time.Time
	billedAt    *time.Time
	paidAt      *time.Time
	completedAt *time.Time

	isConstructed bool
}

// NewOrder creates a POS order in status saved with no items.
//
// Parameters:
//   - id: unique identifier
//   - orderType: dine-in, delivery or pickup
//   - tableID: seating table; only allowed for dine-in, may be nil until a table is chosen
//   - customer: optional contact details
//   - createdAt: creation timestamp
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), order.DineIn, &tableID, order.Customer{}, time.Now())
func NewOrder(id kernel.UUID, orderType Type, tableID *kernel.UUID, customer Customer, createdAt time.Time) (*Order, error) {
	o := &Order{
		source:        SourcePOS,
		customer:      customer,
		total:         kernel.ZeroMoney(),
		status:        Saved,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setType(orderType),
		o.setTable(orderType, tableID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// NewImportedOrder creates a dine-in order received from the digital menu. It
// starts in sent_to_kitchen and keeps the declared total of the ordering
// channel, which may include charges the POS does not model.
func NewImportedOrder(
	id kernel.UUID,
	externalRef string,
	tableID *kernel.UUID,
	customer Customer,
	items []*Item,
	declaredTotal kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		orderType:     DineIn,
		source:        SourceDigitalMenu,
		tableID:       tableID,
		customer:      customer,
		total:         declaredTotal,
		status:        SentToKitchen,
		createdAt:     createdAt,
		isConstructed: true,
	}

	var itemErrs []error
	for _, item := range items {
		itemErrs = append(itemErrs, item.Validate())
	}

	if err := errors.Join(
		o.setID(id),
		o.setExternalRef(externalRef),
		errors.Join(itemErrs...),
	); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}
	if declaredTotal.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%s is negative", declaredTotal))
	}

	o.items = slices.Clone(items)
	return o, nil
}

// Snapshot carries the persisted state of an order for RestoreOrder.
type Snapshot struct {
	ID          kernel.UUID
	Type        Type
	Source      Source
	ExternalRef string
	TableID     *kernel.UUID
	Customer    Customer
	Items       []*Item
	Total       kernel.Money
	Status      Status
	PaymentMode string
	CreatedAt   time.Time
	BilledAt    *time.Time
	PaidAt      *time.Time
	CompletedAt *time.Time
}

// RestoreOrder rebuilds an order from persistence. No validation is applied;
// the stored state is trusted.
func RestoreOrder(s Snapshot) *Order {
	return &Order{
		id:            s.ID,
		orderType:     s.Type,
		source:        s.Source,
		externalRef:   s.ExternalRef,
		tableID:       s.TableID,
		customer:      s.Customer,
		items:         s.Items,
		total:         s.Total,
		status:        s.Status,
		paymentMode:   s.PaymentMode,
		createdAt:     s.CreatedAt,
		billedAt:      s.BilledAt,
		paidAt:        s.PaidAt,
		completedAt:   s.CompletedAt,
		isConstructed: true,
	}
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Type() Type {
	return o.orderType
}

func (o *Order) Source() Source {
	return o.source
}

// ExternalRef returns the id of the digital-menu document this order was imported from.
func (o *Order) ExternalRef() string {
	return o.externalRef
}

// TableID returns the seating table, nil for delivery/pickup and unseated orders.
func (o *Order) TableID() *kernel.UUID {
	return o.tableID
}

func (o *Order) Customer() Customer {
	return o.customer
}

// Items returns the order lines. The slice is a copy; the items are not.
func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

// Item finds a line by id.
func (o *Order) Item(itemID kernel.UUID) (*Item, bool) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, true
		}
	}
	return nil, false
}

// ItemIDs returns the ids of all lines in order.
func (o *Order) ItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(o.items))
	for _, item := range o.items {
		ids = append(ids, item.ID())
	}
	return ids
}

// ItemStatuses returns the status multiset the table projection is computed from.
func (o *Order) ItemStatuses() []ItemStatus {
	statuses := make([]ItemStatus, 0, len(o.items))
	for _, item := range o.items {
		statuses = append(statuses, item.Status())
	}
	return statuses
}

// AllItemsReadyOrServed reports whether the kitchen is done with every line.
// An order without items is not considered ready.
func (o *Order) AllItemsReadyOrServed() bool {
	if len(o.items) == 0 {
		return false
	}
	for _, item := range o.items {
		if !item.Status().IsReadyOrServed() {
			return false
		}
	}
	return true
}

// AllItemsServed reports whether every line was served. An order without items is not served.
func (o *Order) AllItemsServed() bool {
	if len(o.items) == 0 {
		return false
	}
	for _, item := range o.items {
		if item.Status() != ItemServed {
			return false
		}
	}
	return true
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PaymentMode() string {
	return o.paymentMode
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) BilledAt() *time.Time {
	return o.billedAt
}

func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// AddItem appends a line and recomputes the total.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewConflictError("order", fmt.Sprintf("in status %s cannot be edited", o.status))
	}
	if _, exists := o.Item(item.ID()); exists {
		return errs.NewConflictError("order item", fmt.Sprintf("%s already exists", item.ID()))
	}

	o.items = append(o.items, item)
	o.recomputeTotal()
	return nil
}

// RemoveItem detaches a line and recomputes the total.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if o.status.IsTerminal() {
		return errs.NewConflictError("order", fmt.Sprintf("in status %s cannot be edited", o.status))
	}
	idx := slices.IndexFunc(o.items, func(item *Item) bool { return item.ID().IsEqual(itemID) })
	if idx < 0 {
		return errs.NewObjectNotFoundError("itemId", itemID)
	}

	o.items = slices.Delete(o.items, idx, idx+1)
	o.recomputeTotal()
	return nil
}

// UpdateItemStatus moves one line forward. Kitchen progress is tracked for
// paid orders too, since a quick checkout may happen before serving.
func (o *Order) UpdateItemStatus(itemID kernel.UUID, target ItemStatus) error {
	item, ok := o.Item(itemID)
	if !ok {
		return errs.NewObjectNotFoundError("itemId", itemID)
	}
	return item.transitionTo(target)
}

// PromoteItems moves every line that is behind target up to target and
// returns how many lines changed. Lines already past target are kept.
func (o *Order) PromoteItems(target ItemStatus) (int, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	changed := 0
	for _, item := range o.items {
		moved, err := item.promoteTo(target)
		if err != nil {
			return changed, err
		}
		if moved {
			changed++
		}
	}
	return changed, nil
}

// SeatAt assigns a table to a dine-in order that has none yet, or moves it.
func (o *Order) SeatAt(tableID kernel.UUID) error {
	if o.status.IsTerminal() {
		return errs.NewConflictError("order", fmt.Sprintf("in status %s cannot be seated", o.status))
	}
	return o.setTable(o.orderType, &tableID)
}

// Unseat detaches the table from an order the kitchen has not seen yet.
func (o *Order) Unseat() error {
	if o.status != Saved {
		return errs.NewConflictError("order", fmt.Sprintf("in status %s cannot leave its table", o.status))
	}
	o.tableID = nil
	return nil
}

// SendToKitchen dispatches the order (KOT).
//
// Business rules:
//   - at least one item
//   - dine-in orders placed at the POS need a table
//   - a billed order stays billed
func (o *Order) SendToKitchen() error {
	if len(o.items) == 0 {
		return ErrOrderHasNoItems
	}
	if o.orderType == DineIn && o.source == SourcePOS && o.tableID == nil {
		return ErrTableIsRequired
	}

	next, err := o.status.SendToKitchen()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Save persists the order without a kitchen dispatch.
func (o *Order) Save() error {
	next, err := o.status.Save()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Bill marks the order billed. billedAt keeps the first billing time.
func (o *Order) Bill(now time.Time) error {
	next, err := o.status.Bill()
	if err != nil {
		return err
	}
	o.status = next
	if o.billedAt == nil {
		o.billedAt = &now
	}
	return nil
}

// Checkout marks the order paid. An empty paymentMode defaults to cash.
func (o *Order) Checkout(paymentMode string, now time.Time) error {
	next, err := o.status.Pay()
	if err != nil {
		return err
	}

	paymentMode = strings.TrimSpace(paymentMode)
	if paymentMode == "" {
		paymentMode = DefaultPaymentMode
	}

	o.status = next
	o.paymentMode = paymentMode
	if o.paidAt == nil {
		o.paidAt = &now
	}
	if o.completedAt == nil {
		o.completedAt = &now
	}
	return nil
}

// Complete hands a delivery or pickup order over to the customer.
func (o *Order) Complete(now time.Time) error {
	if o.orderType == DineIn {
		return errs.NewValueIsInvalidErrorWithCause("orderType", errors.New("only delivery and pickup orders can be completed"))
	}
	if len(o.items) > 0 && !o.AllItemsReadyOrServed() {
		return ErrItemsNotReady
	}

	next, err := o.status.Complete()
	if err != nil {
		return err
	}
	o.status = next
	if o.completedAt == nil {
		o.completedAt = &now
	}
	return nil
}

// Clone returns a deep copy that shares no mutable state with o.
func (o *Order) Clone() *Order {
	c := *o
	if o.tableID != nil {
		id := *o.tableID
		c.tableID = &id
	}
	c.items = make([]*Item, 0, len(o.items))
	for _, item := range o.items {
		c.items = append(c.items, item.clone())
	}
	c.billedAt = cloneTime(o.billedAt)
	c.paidAt = cloneTime(o.paidAt)
	c.completedAt = cloneTime(o.completedAt)
	return &c
}

func (o *Order) recomputeTotal() {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	o.total = total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setTable(orderType Type, tableID *kernel.UUID) error {
	if tableID == nil {
		o.tableID = nil
		return nil
	}
	if err := tableID.Validate(); err != nil {
		return err
	}
	if orderType != DineIn {
		return errs.NewValueIsInvalidErrorWithCause("tableId", fmt.Errorf("%s orders cannot have a table", orderType))
	}
	o.tableID = tableID
	return nil
}

func (o *Order) setExternalRef(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return errs.NewValueIsRequiredError("externalRef")
	}
	o.externalRef = ref
	return nil
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
