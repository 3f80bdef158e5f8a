// Package queries contains read-only operations over the order collection.
// Every query reads a fresh snapshot from the store, so results always reflect
// the latest mutation.
package queries

import (
	"context"

	"grabgo/internal/core/domain/model/order"
	"grabgo/internal/core/domain/model/user"
	"grabgo/internal/pkg/errs"
)

// OrderReader is the part of ports.OrderStore the queries need.
type OrderReader interface {
	Snapshot(ctx context.Context) ([]*order.Order, error)
}

func requireAdmin(actor user.User, action string) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return errs.NewUnauthorizedError(actor.Email(), action)
	}
	return nil
}
