package kernel

import (
	"errors"
	"strings"

	"grabgo/internal/pkg/errs"
	"grabgo/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is a pickup or drop point: a free-text street line plus a pincode.
//
// Only presence is enforced here. Pincode format checks belong to the form
// that collects it.
type Address struct { //nolint:recvcheck //using for validation
	line    string
	pincode string
	guard   guard.ConstructorGuard
}

// NewAddress trims both parts and rejects blank ones.
func NewAddress(line, pincode string) (Address, error) {
	a := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(a.setLine(line), a.setPincode(pincode)); err != nil {
		return Address{}, err
	}

	return a, nil
}

// Line returns the street part of the address.
func (a Address) Line() string {
	return a.line
}

// Pincode returns the postal code.
func (a Address) Pincode() string {
	return a.pincode
}

// String renders the address on one line.
func (a Address) String() string {
	return a.line + " - " + a.pincode
}

// IsEqual compares both parts.
func (a Address) IsEqual(other Address) bool {
	return a.line == other.line && a.pincode == other.pincode
}

// Validate reports whether the address came from NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a *Address) setLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return errs.NewValueIsRequiredError("address line")
	}
	a.line = line
	return nil
}

func (a *Address) setPincode(pincode string) error {
	pincode = strings.TrimSpace(pincode)
	if pincode == "" {
		return errs.NewValueIsRequiredError("pincode")
	}
	a.pincode = pincode
	return nil
}
