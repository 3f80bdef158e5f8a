package order

import (
	"fmt"

	"grabgo/internal/pkg/errs"
)

// PaymentStatus records whether the customer has paid. It is independent of
// the delivery Status.
type PaymentStatus int

const (
	UnknownPaymentStatus PaymentStatus = iota
	Unpaid
	Paid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		Unpaid: "Unpaid",
		Paid:   "Paid",
	}
}

// ParsePaymentStatus maps "Paid" or "Unpaid" (any case) to a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	key := normalizeLabel(s)
	for status, label := range getPaymentStatusStrings() {
		if normalizeLabel(label) == key {
			return status, nil
		}
	}
	return UnknownPaymentStatus, errs.NewValueIsInvalidErrorWithCause(
		"payment status is invalid", fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks the value is Paid or Unpaid.
func (p PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid", fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// Toggle flips Paid and Unpaid. Toggling twice restores the original value.
func (p PaymentStatus) Toggle() (PaymentStatus, error) {
	switch p {
	case Paid:
		return Unpaid, nil
	case Unpaid:
		return Paid, nil
	case UnknownPaymentStatus:
	}
	return UnknownPaymentStatus, p.Validate()
}
