package services

import (
	"strings"

	"grabgo/internal/core/domain/model/order"
)

// Stats summarizes an order collection for the admin dashboard.
type Stats struct {
	Total        int
	Pending      int
	Delivered    int
	TotalRevenue int
}

// HistoryFor returns the orders owned by email in their original order.
func HistoryFor(orders []*order.Order, email string) []*order.Order {
	history := make([]*order.Order, 0)
	for _, o := range orders {
		if o.IsOwnedBy(email) {
			history = append(history, o)
		}
	}
	return history
}

// Search returns the orders whose id, customer name or service type contains
// term, ignoring case. An empty term matches every order.
func Search(orders []*order.Order, term string) []*order.Order {
	needle := strings.ToLower(strings.TrimSpace(term))

	matches := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if needle == "" || matchesTerm(o, needle) {
			matches = append(matches, o)
		}
	}
	return matches
}

func matchesTerm(o *order.Order, needle string) bool {
	for _, field := range []string{o.ID().String(), o.UserName(), o.ServiceType()} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// AggregateStats counts orders by status and sums the amount of paid orders.
// It is recomputed on every call.
func AggregateStats(orders []*order.Order) Stats {
	var s Stats
	for _, o := range orders {
		s.Total++
		switch o.Status() {
		case order.Pending:
			s.Pending++
		case order.Delivered:
			s.Delivered++
		case order.UnknownStatus, order.InProgress, order.Cancelled:
		}
		if o.PaymentStatus() == order.Paid {
			s.TotalRevenue += o.Amount()
		}
	}
	return s
}
