package queries

import (
	"errors"

	"grabgo/internal/core/domain/model/user"
	"grabgo/internal/pkg/guard"
)

var ErrSearchOrdersQueryIsNotConstructed = errors.New(
	"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
)

// SearchOrdersQuery filters every order by a free text term for the admin
// dashboard. An empty term lists everything.
type SearchOrdersQuery struct {
	actor user.User
	term  string

	guard guard.ConstructorGuard
}

func NewSearchOrdersQuery(actor user.User, term string) (SearchOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return SearchOrdersQuery{}, err
	}

	return SearchOrdersQuery{
		actor: actor,
		term:  term,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

func (q SearchOrdersQuery) Actor() user.User {
	return q.actor
}

func (q SearchOrdersQuery) Term() string {
	return q.term
}
