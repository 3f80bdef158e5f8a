package order

import (
	"fmt"

	"grabgo/internal/pkg/errs"
)

// Prices in rupees.
const (
	NormalPrice  = 100
	ExpressPrice = 180
)

// Urgency is the delivery speed tier chosen by the customer.
type Urgency int

const (
	UnknownUrgency Urgency = iota
	Normal
	Express
)

func getUrgencyStrings() map[Urgency]string {
	return map[Urgency]string{
		Normal:  "Normal",
		Express: "Express",
	}
}

// ParseUrgency maps "Normal" or "Express" (any case) to an Urgency.
func ParseUrgency(s string) (Urgency, error) {
	key := normalizeLabel(s)
	for u, label := range getUrgencyStrings() {
		if normalizeLabel(label) == key {
			return u, nil
		}
	}
	return UnknownUrgency, errs.NewValueIsInvalidErrorWithCause(
		"urgency is invalid", fmt.Errorf("%q is not a valid urgency", s))
}

// Validate checks the value is Normal or Express.
func (u Urgency) Validate() error {
	if _, ok := getUrgencyStrings()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("urgency is invalid", fmt.Errorf("%d is not a valid urgency", u))
	}
	return nil
}

func (u Urgency) String() string {
	if str, ok := getUrgencyStrings()[u]; ok {
		return str
	}
	return "Unknown"
}

// Price returns the amount charged for urgency u.
func Price(u Urgency) int {
	if u == Normal {
		return NormalPrice
	}
	return ExpressPrice
}
