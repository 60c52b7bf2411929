package commands

import (
	"context"
	"time"
)

// PurgeStaleCartsCommandHandler deletes carts whose last modification is
// older than the command's TTL. Scheduled by the jobs layer; customers who
// come back after the TTL simply start a fresh cart.
type PurgeStaleCartsCommandHandler struct {
	uowFactory MaintenanceUoWFactory
}

// NewPurgeStaleCartsCommandHandler creates a handler for cart purging.
func NewPurgeStaleCartsCommandHandler(uowFactory MaintenanceUoWFactory) PurgeStaleCartsCommandHandler {
	return PurgeStaleCartsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes stale carts and returns how many were removed.
func (h *PurgeStaleCartsCommandHandler) Handle(ctx context.Context, cmd PurgeStaleCartsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.CartRepository().DeleteStale(ctx, time.Now().Add(-cmd.TTL()))
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
