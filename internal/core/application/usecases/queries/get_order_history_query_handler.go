package queries

import (
	"context"

	"grabgo/internal/core/domain/model/order"
	"grabgo/internal/core/domain/services"
)

// GetOrderHistoryQueryHandler returns a customer's orders, most recent first.
type GetOrderHistoryQueryHandler struct {
	orders OrderReader
}

func NewGetOrderHistoryQueryHandler(orders OrderReader) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{orders: orders}
}

// Handle never returns orders owned by another email.
func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := h.orders.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return services.HistoryFor(snapshot, query.Customer().Email()), nil
}
