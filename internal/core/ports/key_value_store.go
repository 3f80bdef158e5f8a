package ports

import "context"

// KeyValueStore is the durable slot the order collection is written to.
// Implementations overwrite the whole value on Put.
type KeyValueStore interface {
	// Get returns the value stored under key or *errs.ObjectNotFoundError if
	// the key was never written.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the value stored under key.
	Put(ctx context.Context, key string, value []byte) error
}
