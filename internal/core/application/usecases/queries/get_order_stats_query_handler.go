package queries

import (
	"context"

	"grabgo/internal/core/domain/services"
)

const actionViewStats = "view order stats"

// GetOrderStatsQueryHandler recomputes the dashboard counters on every call.
type GetOrderStatsQueryHandler struct {
	orders OrderReader
}

func NewGetOrderStatsQueryHandler(orders OrderReader) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{orders: orders}
}

// Handle returns totals for the orders matching the query term. Revenue only
// counts paid orders.
func (h GetOrderStatsQueryHandler) Handle(ctx context.Context, query GetOrderStatsQuery) (services.Stats, error) {
	if err := query.Validate(); err != nil {
		return services.Stats{}, err
	}

	if err := requireAdmin(query.Actor(), actionViewStats); err != nil {
		return services.Stats{}, err
	}

	snapshot, err := h.orders.Snapshot(ctx)
	if err != nil {
		return services.Stats{}, err
	}

	return services.AggregateStats(services.Search(snapshot, query.Term())), nil
}
