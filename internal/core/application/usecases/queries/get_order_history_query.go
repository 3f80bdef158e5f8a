package queries

import (
	"errors"

	"grabgo/internal/core/domain/model/user"
	"grabgo/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery lists the orders placed by one customer.
//
// Example:
//
//	query, err := NewGetOrderHistoryQuery(customer)
//	orders, err := handler.Handle(ctx, query)
type GetOrderHistoryQuery struct {
	customer user.User

	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(customer user.User) (GetOrderHistoryQuery, error) {
	if err := customer.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return GetOrderHistoryQuery{
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// Customer returns the user whose history is requested.
func (q GetOrderHistoryQuery) Customer() user.User {
	return q.customer
}
