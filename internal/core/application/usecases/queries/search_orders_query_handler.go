package queries

import (
	"context"

	"grabgo/internal/core/domain/model/order"
	"grabgo/internal/core/domain/services"
)

const actionSearchOrders = "search orders"

// SearchOrdersQueryHandler matches the term against order id, customer name
// and service type, ignoring case. Only administrators may search.
type SearchOrdersQueryHandler struct {
	orders OrderReader
}

func NewSearchOrdersQueryHandler(orders OrderReader) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{orders: orders}
}

func (h SearchOrdersQueryHandler) Handle(ctx context.Context, query SearchOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := requireAdmin(query.Actor(), actionSearchOrders); err != nil {
		return nil, err
	}

	snapshot, err := h.orders.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return services.Search(snapshot, query.Term()), nil
}
