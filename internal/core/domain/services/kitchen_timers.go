package services

import (
	"sync"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// KitchenTimers keeps the elapsed-time record of every kitchen ticket.
//
// Rules:
//   - a record starts at the order's creation time when first observed
//   - the timer freezes once every item is ready or served
//   - a frozen timer restarts from the observation time when new item ids
//     appear (another KOT); a shrinking id set never resets it
//   - paid or completed orders report exactly completedAt - createdAt
//
// KitchenTimers is safe for concurrent use.
type KitchenTimers struct {
	mu      sync.Mutex
	now     func() time.Time
	records map[kernel.UUID]*timerRecord
}

type timerRecord struct {
	start   time.Time
	itemIDs map[kernel.UUID]struct{}
	frozen  bool
	elapsed time.Duration
}

// NewKitchenTimers creates an empty store. A nil clock means time.Now.
func NewKitchenTimers(now func() time.Time) *KitchenTimers {
	if now == nil {
		now = time.Now
	}
	return &KitchenTimers{
		now:     now,
		records: make(map[kernel.UUID]*timerRecord),
	}
}

// Observe updates the record of o and returns its elapsed time.
func (k *KitchenTimers) Observe(o *order.Order) time.Duration {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	ids := o.ItemIDs()

	rec, ok := k.records[o.ID()]
	if !ok {
		rec = &timerRecord{start: o.CreatedAt(), itemIDs: idSet(ids)}
		k.records[o.ID()] = rec
	} else if hasUnseen(ids, rec.itemIDs) {
		if rec.frozen {
			rec.start = now
			rec.frozen = false
			rec.elapsed = 0
		}
		rec.itemIDs = idSet(ids)
	}

	if o.Status().IsTerminal() && o.CompletedAt() != nil {
		rec.frozen = true
		rec.elapsed = nonNegative(o.CompletedAt().Sub(o.CreatedAt()))
		return rec.elapsed
	}

	if o.AllItemsReadyOrServed() {
		if !rec.frozen {
			rec.frozen = true
			rec.elapsed = nonNegative(now.Sub(rec.start))
		}
		return rec.elapsed
	}

	rec.frozen = false
	return nonNegative(now.Sub(rec.start))
}

// Retain drops the records of every order not in keep.
func (k *KitchenTimers) Retain(keep []kernel.UUID) {
	k.mu.Lock()
	defer k.mu.Unlock()

	wanted := idSet(keep)
	for id := range k.records {
		if _, ok := wanted[id]; !ok {
			delete(k.records, id)
		}
	}
}

func (k *KitchenTimers) Forget(orderID kernel.UUID) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.records, orderID)
}

// Reset drops every record.
func (k *KitchenTimers) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.records = make(map[kernel.UUID]*timerRecord)
}

func (k *KitchenTimers) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.records)
}

func idSet(ids []kernel.UUID) map[kernel.UUID]struct{} {
	set := make(map[kernel.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func hasUnseen(ids []kernel.UUID, seen map[kernel.UUID]struct{}) bool {
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			return true
		}
	}
	return false
}

func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
