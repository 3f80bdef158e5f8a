package commands

import (
	"context"

	"grabgo/internal/core/domain/model/order"
	"grabgo/internal/core/domain/services"
	"grabgo/internal/core/ports"

	"go.uber.org/zap"
)

// ChangeOrderStatusCommandHandler applies an administrator's status change.
//
// The order is read, the lifecycle decides the next status and the result is
// patched back. Read and patch are separate store calls, so two
// administrators changing the same order at once race; the last patch wins.
type ChangeOrderStatusCommandHandler struct {
	store     ports.OrderStore
	lifecycle services.OrderLifecycle
	logger    *zap.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(
	store ports.OrderStore,
	lifecycle services.OrderLifecycle,
	logger *zap.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		store:     store,
		lifecycle: lifecycle,
		logger:    logger.With(zap.String("component", "change_order_status")),
	}
}

// Handle returns the updated order.
//
// Errors:
//   - *errs.UnauthorizedError when the actor is not an administrator
//   - *errs.ObjectNotFoundError when the order does not exist
//   - *errs.ValueIsInvalidError when the move is not part of the lifecycle
//   - *errs.PersistenceError when the change is applied but not durable; the
//     updated order is returned with it
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.lifecycle.AuthorizeStatusChange(cmd.Actor()); err != nil {
		return nil, err
	}

	current, err := h.store.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	next, err := h.lifecycle.ChangeStatus(cmd.Actor(), current.Status(), cmd.Target())
	if err != nil {
		return nil, err
	}

	updated, err := h.store.Patch(ctx, cmd.OrderID(), order.StatusPatch(next))
	if updated == nil {
		return nil, err
	}

	if next == order.Pending && current.Status() != order.Pending {
		h.logger.Info("order reset to pending",
			zap.String("order_id", cmd.OrderID().String()),
			zap.String("from", current.Status().String()),
			zap.String("by", cmd.Actor().Email()),
		)
	}

	return updated, err
}
