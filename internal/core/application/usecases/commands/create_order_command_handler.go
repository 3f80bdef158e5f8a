package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grabgo/internal/core/domain/model/kernel"
	"grabgo/internal/core/domain/model/order"
	"grabgo/internal/core/ports"
	"grabgo/internal/pkg/errs"

	"go.uber.org/zap"
)

// MaxCreateAttempts bounds how many fresh ids are tried when the store
// reports a collision.
const MaxCreateAttempts = 5

// CreateOrderOption customizes a CreateOrderCommandHandler.
type CreateOrderOption func(*CreateOrderCommandHandler)

// WithIDGenerator replaces kernel.NewOrderID.
func WithIDGenerator(gen IDGenerator) CreateOrderOption {
	return func(h *CreateOrderCommandHandler) {
		h.newID = gen
	}
}

// WithClock replaces time.Now.
func WithClock(clock Clock) CreateOrderOption {
	return func(h *CreateOrderCommandHandler) {
		h.now = clock
	}
}

// CreateOrderCommandHandler builds a Pending, Unpaid order priced from urgency
// and appends it to the store.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(store, logger)
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrPersistence) {
//	    // o is created and visible, but not yet durable
//	}
type CreateOrderCommandHandler struct {
	store  ports.OrderStore
	newID  IDGenerator
	now    Clock
	logger *zap.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	store ports.OrderStore,
	logger *zap.Logger,
	opts ...CreateOrderOption,
) CreateOrderCommandHandler {
	h := CreateOrderCommandHandler{
		store:  store,
		newID:  kernel.NewOrderID,
		now:    time.Now,
		logger: logger.With(zap.String("component", "create_order")),
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// Handle creates the order. An id collision is retried with a new id and is
// never returned to the caller unless every attempt collides.
//
// When the order was appended but could not be persisted, Handle returns
// both the order and a *errs.PersistenceError.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= MaxCreateAttempts; attempt++ {
		o, err := order.NewOrder(
			h.newID(),
			cmd.Customer().Email(),
			cmd.Service(),
			cmd.Urgency(),
			cmd.Details(),
			h.now().UTC(),
		)
		if err != nil {
			return nil, err
		}

		err = h.store.Append(ctx, o)
		switch {
		case err == nil:
			h.logger.Info("order created",
				zap.String("order_id", o.ID().String()),
				zap.String("service", o.ServiceType()),
				zap.Int("amount", o.Amount()),
			)
			return o, nil
		case errors.Is(err, errs.ErrObjectAlreadyExists):
			h.logger.Debug("order id collision, regenerating",
				zap.String("order_id", o.ID().String()),
				zap.Int("attempt", attempt),
			)
			lastErr = err
		case errors.Is(err, errs.ErrPersistence):
			return o, err
		default:
			return nil, err
		}
	}

	return nil, fmt.Errorf("no unique order id after %d attempts: %w", MaxCreateAttempts, lastErr)
}
