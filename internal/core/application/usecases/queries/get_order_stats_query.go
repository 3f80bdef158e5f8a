package queries

import (
	"errors"

	"grabgo/internal/core/domain/model/user"
	"grabgo/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery aggregates the orders matching term. An empty term
// covers the whole collection.
type GetOrderStatsQuery struct {
	actor user.User
	term  string

	guard guard.ConstructorGuard
}

func NewGetOrderStatsQuery(actor user.User, term string) (GetOrderStatsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrderStatsQuery{}, err
	}

	return GetOrderStatsQuery{
		actor: actor,
		term:  term,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

func (q GetOrderStatsQuery) Actor() user.User {
	return q.actor
}

func (q GetOrderStatsQuery) Term() string {
	return q.term
}
