package commands

import (
	"context"

	"grabgo/internal/core/domain/model/order"
	"grabgo/internal/core/domain/services"
	"grabgo/internal/core/ports"
)

// ToggleOrderPaymentCommandHandler flips payment status for an administrator.
// Delivery status is never touched.
type ToggleOrderPaymentCommandHandler struct {
	store     ports.OrderStore
	lifecycle services.OrderLifecycle
}

func NewToggleOrderPaymentCommandHandler(
	store ports.OrderStore,
	lifecycle services.OrderLifecycle,
) ToggleOrderPaymentCommandHandler {
	return ToggleOrderPaymentCommandHandler{
		store:     store,
		lifecycle: lifecycle,
	}
}

// Handle returns the updated order. A *errs.PersistenceError is returned
// together with the updated order when the toggle is not durable.
func (h *ToggleOrderPaymentCommandHandler) Handle(
	ctx context.Context,
	cmd ToggleOrderPaymentCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.lifecycle.AuthorizePaymentToggle(cmd.Actor()); err != nil {
		return nil, err
	}

	current, err := h.store.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	next, err := h.lifecycle.TogglePayment(cmd.Actor(), current.PaymentStatus())
	if err != nil {
		return nil, err
	}

	return h.store.Patch(ctx, cmd.OrderID(), order.PaymentPatch(next))
}
