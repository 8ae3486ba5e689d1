package commands

import (
	"context"
	"fmt"

	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

type RestoreDigitalMenuSyncStateCommandHandler struct {
	feed  ports.DigitalMenuFeed
	state *SyncState
}

func NewRestoreDigitalMenuSyncStateCommandHandler(
	feed ports.DigitalMenuFeed,
	state *SyncState,
) (RestoreDigitalMenuSyncStateCommandHandler, error) {
	if feed == nil {
		return RestoreDigitalMenuSyncStateCommandHandler{}, errs.NewValueIsRequiredError("feed")
	}
	if state == nil {
		return RestoreDigitalMenuSyncStateCommandHandler{}, errs.NewValueIsRequiredError("state")
	}
	return RestoreDigitalMenuSyncStateCommandHandler{feed: feed, state: state}, nil
}

// Handle returns how many synced orders were loaded.
func (h RestoreDigitalMenuSyncStateCommandHandler) Handle(
	ctx context.Context,
	cmd RestoreDigitalMenuSyncStateCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	synced, err := h.feed.FindSynced(ctx)
	if err != nil {
		return 0, fmt.Errorf("find synced digital menu orders: %w", err)
	}
	h.state.Restore(synced)
	return len(synced), nil
}
