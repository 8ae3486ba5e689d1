package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"restaurant/internal/core/domain/model/digitalmenu"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

var _ ports.DigitalMenuFeed = &DigitalMenuFeed{}

// DigitalMenuFeed keeps digital-menu documents in memory. It stands in for
// the Mongo collection when no URI is configured, and lets tests play the
// part of the ordering app.
type DigitalMenuFeed struct {
	mu   sync.Mutex
	docs map[string]digitalmenu.Order

	findErr       error
	markSyncedErr error
}

func NewDigitalMenuFeed() *DigitalMenuFeed {
	return &DigitalMenuFeed{docs: make(map[string]digitalmenu.Order)}
}

// Insert adds or replaces a document.
func (f *DigitalMenuFeed) Insert(doc digitalmenu.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[doc.ID] = cloneDigitalMenuOrder(doc)
}

// SetStatus changes the status of a document, as the ordering app would.
func (f *DigitalMenuFeed) SetStatus(id string, status digitalmenu.Status, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[id]
	if !ok {
		return errs.NewObjectNotFoundError("digitalMenuOrderId", id)
	}
	doc.Status = status
	doc.UpdatedAt = at
	f.docs[id] = doc
	return nil
}

func (f *DigitalMenuFeed) Get(id string) (digitalmenu.Order, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[id]
	return cloneDigitalMenuOrder(doc), ok
}

// SetFindError makes every query fail with err until it is reset with nil.
func (f *DigitalMenuFeed) SetFindError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findErr = err
}

// SetMarkSyncedError makes MarkSynced fail with err until it is reset with nil.
func (f *DigitalMenuFeed) SetMarkSyncedError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markSyncedErr = err
}

func (f *DigitalMenuFeed) FindUnsynced(_ context.Context) ([]digitalmenu.Order, error) {
	return f.find(func(d digitalmenu.Order) bool {
		return !d.SyncedToPOS && d.Status.IsImportable()
	}, false)
}

func (f *DigitalMenuFeed) FindSynced(_ context.Context) ([]digitalmenu.Order, error) {
	return f.find(func(d digitalmenu.Order) bool {
		return d.SyncedToPOS
	}, false)
}

func (f *DigitalMenuFeed) MarkSynced(_ context.Context, id, posOrderID string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markSyncedErr != nil {
		return f.markSyncedErr
	}
	doc, ok := f.docs[id]
	if !ok {
		return errs.NewObjectNotFoundError("digitalMenuOrderId", id)
	}
	doc.SyncedToPOS = true
	doc.SyncedAt = &at
	doc.POSOrderID = posOrderID
	f.docs[id] = doc
	return nil
}

func (f *DigitalMenuFeed) List(_ context.Context, limit int) ([]digitalmenu.Order, error) {
	docs, err := f.find(func(digitalmenu.Order) bool { return true }, true)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

func (f *DigitalMenuFeed) find(keep func(digitalmenu.Order) bool, newestFirst bool) ([]digitalmenu.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}

	var out []digitalmenu.Order
	for _, d := range f.docs {
		if keep(d) {
			out = append(out, cloneDigitalMenuOrder(d))
		}
	}
	slices.SortFunc(out, func(a, b digitalmenu.Order) int {
		c := a.CreatedAt.Compare(b.CreatedAt)
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		if newestFirst {
			return -c
		}
		return c
	})
	return out, nil
}

func cloneDigitalMenuOrder(d digitalmenu.Order) digitalmenu.Order {
	d.Items = slices.Clone(d.Items)
	if d.SyncedAt != nil {
		at := *d.SyncedAt
		d.SyncedAt = &at
	}
	return d
}
