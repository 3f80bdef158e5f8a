// Package ports defines the contracts between the order domain and its
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"grabgo/internal/core/domain/model/kernel"
	"grabgo/internal/core/domain/model/order"
)

// OrderStore owns the authoritative order collection. It is the only way to
// read or mutate orders and it persists the whole collection after every
// successful mutation.
//
// The store is transition-agnostic: it applies any valid patch. Lifecycle and
// authorization rules are enforced by the command handlers.
type OrderStore interface {
	// Append inserts the order at the head of the collection and persists.
	// Returns *errs.ObjectAlreadyExistsError if the id is already taken.
	Append(ctx context.Context, o *order.Order) error

	// Patch merges the present fields of patch into the order with the given id
	// and persists. Returns *errs.ObjectNotFoundError for unknown ids.
	//
	// A *errs.PersistenceError means the change was applied in memory but
	// could not be written; the updated order is returned alongside it.
	Patch(ctx context.Context, id kernel.OrderID, patch order.Patch) (*order.Order, error)

	// Get returns a copy of a single order.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// Snapshot returns copies of every order, most recent first.
	Snapshot(ctx context.Context) ([]*order.Order, error)
}
