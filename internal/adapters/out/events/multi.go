package events

import (
	"context"

	"restaurant/internal/core/ports"
)

// Multi fans one event out to several publishers in order.
type Multi []ports.EventPublisher

func (m Multi) Publish(ctx context.Context, event ports.Event) {
	for _, p := range m {
		if p != nil {
			p.Publish(ctx, event)
		}
	}
}

// Noop drops every event.
type Noop struct{}

func (Noop) Publish(context.Context, ports.Event) {}
