package order

import "grabgo/internal/core/domain/model/kernel"

// Patch is a partial update. Nil fields keep their current value.
//
// Identity, ownership, service type, urgency, amount and timestamp have no
// field here, which is what keeps them immutable.
type Patch struct {
	UserName        *string
	UserPhone       *string
	ItemDescription *string
	Pickup          *kernel.Address
	Drop            *kernel.Address
	Status          *Status
	PaymentStatus   *PaymentStatus
}

// StatusPatch sets only the delivery status.
func StatusPatch(s Status) Patch {
	return Patch{Status: &s}
}

// PaymentPatch sets only the payment status.
func PaymentPatch(p PaymentStatus) Patch {
	return Patch{PaymentStatus: &p}
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.UserName == nil && p.UserPhone == nil && p.ItemDescription == nil &&
		p.Pickup == nil && p.Drop == nil && p.Status == nil && p.PaymentStatus == nil
}
