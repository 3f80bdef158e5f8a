// Package commands contains business operations that modify orders.
// Every command follows the same pattern: a validated command object built by
// its constructor, and a handler that checks authorization, mutates through the
// order store and reports persistence failures without hiding the result.
package commands

import (
	"time"

	"grabgo/internal/core/domain/model/kernel"
)

type (
	// IDGenerator produces candidate order identifiers.
	IDGenerator func() kernel.OrderID

	// Clock returns the current instant.
	Clock func() time.Time
)
