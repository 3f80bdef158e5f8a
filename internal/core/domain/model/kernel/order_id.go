package kernel

import (
	"encoding/binary"
	"fmt"
	"strings"

	"grabgo/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	// OrderIDPrefix starts every order identifier.
	OrderIDPrefix = "ORD-"

	// OrderIDSuffixLength is the number of random characters generated after the prefix.
	OrderIDSuffixLength = 6

	orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// ErrOrderIDIsNotConstructed indicates a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"order id must be created via NewOrderID or OrderIDFromString")

// OrderID identifies a delivery order, e.g. "ORD-7K2Q9X".
//
// The random suffix is six upper-case base36 characters, which gives about
// 2.2 billion distinct values. Collisions are still possible, so the store
// rejects duplicates and creation retries with a fresh id.
type OrderID struct {
	value string
}

// NewOrderID generates a random identifier. The randomness comes from a
// version 4 UUID.
func NewOrderID() OrderID {
	raw := uuid.New()
	// The last eight bytes only carry the two variant bits.
	n := binary.BigEndian.Uint64(raw[8:])

	suffix := make([]byte, OrderIDSuffixLength)
	for i := OrderIDSuffixLength - 1; i >= 0; i-- {
		suffix[i] = orderIDAlphabet[n%uint64(len(orderIDAlphabet))]
		n /= uint64(len(orderIDAlphabet))
	}

	return OrderID{value: OrderIDPrefix + string(suffix)}
}

// OrderIDFromString parses a persisted or user supplied identifier.
//
// Identifiers written by older clients may have a shorter suffix, so any
// suffix of one to six characters from [0-9A-Z] is accepted.
func OrderIDFromString(s string) (OrderID, error) {
	suffix, ok := strings.CutPrefix(s, OrderIDPrefix)
	if !ok {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"order id", fmt.Errorf("%q does not start with %s", s, OrderIDPrefix))
	}

	if suffix == "" || len(suffix) > OrderIDSuffixLength {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"order id", fmt.Errorf("%q must have 1 to %d characters after the prefix", s, OrderIDSuffixLength))
	}

	for _, r := range suffix {
		if !strings.ContainsRune(orderIDAlphabet, r) {
			return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
				"order id", fmt.Errorf("%q contains %q", s, r))
		}
	}

	return OrderID{value: s}, nil
}

// String returns the identifier as stored and displayed.
func (id OrderID) String() string {
	return id.value
}

// IsEqual reports whether both identifiers are the same.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate returns ErrOrderIDIsNotConstructed for the zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
