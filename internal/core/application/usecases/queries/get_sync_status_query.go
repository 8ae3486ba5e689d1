package queries

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/pkg/guard"
)

var ErrGetSyncStatusQueryIsNotConstructed = errors.New(
	"GetSyncStatusQuery must be created via NewGetSyncStatusQuery constructor",
)

type GetSyncStatusQuery struct {
	guard guard.ConstructorGuard
}

func NewGetSyncStatusQuery() GetSyncStatusQuery {
	return GetSyncStatusQuery{guard: guard.NewConstructorGuard()}
}

func (q GetSyncStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetSyncStatusQueryIsNotConstructed)
}

// SyncStateReader is the read side of the reconciler's bookkeeping.
type SyncStateReader interface {
	Running() bool
	ProcessedCount() int
	LastCycle() (time.Time, string)
}

type SyncStatusView struct {
	IsRunning      bool       `json:"isRunning"`
	ProcessedCount int        `json:"processedOrdersCount"`
	LastCycleAt    *time.Time `json:"lastCycleAt"`
	LastError      string     `json:"lastError,omitempty"`
}

type GetSyncStatusQueryHandler struct {
	state SyncStateReader
}

func NewGetSyncStatusQueryHandler(state SyncStateReader) (GetSyncStatusQueryHandler, error) {
	if state == nil {
		return GetSyncStatusQueryHandler{}, errors.New("sync state is required")
	}
	return GetSyncStatusQueryHandler{state: state}, nil
}

func (h GetSyncStatusQueryHandler) Handle(_ context.Context, query GetSyncStatusQuery) (SyncStatusView, error) {
	if err := query.Validate(); err != nil {
		return SyncStatusView{}, err
	}
	view := SyncStatusView{
		IsRunning:      h.state.Running(),
		ProcessedCount: h.state.ProcessedCount(),
	}
	if at, lastErr := h.state.LastCycle(); !at.IsZero() {
		view.LastCycleAt = &at
		view.LastError = lastErr
	}
	return view, nil
}
