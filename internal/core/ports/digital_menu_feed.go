package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/digitalmenu"
)

// DigitalMenuFeed is the read-mostly view of the digital menu's order
// collection. The only write is the sync bookkeeping of MarkSynced.
type DigitalMenuFeed interface {
	// FindUnsynced returns importable orders that were never synced, oldest first.
	FindUnsynced(ctx context.Context) ([]digitalmenu.Order, error)

	// FindSynced returns every order already linked to a POS order.
	FindSynced(ctx context.Context) ([]digitalmenu.Order, error)

	// MarkSynced sets syncedToPOS, syncedAt and posOrderId on the document.
	MarkSynced(ctx context.Context, id, posOrderID string, at time.Time) error

	// List returns up to limit orders, newest first. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]digitalmenu.Order, error)
}
