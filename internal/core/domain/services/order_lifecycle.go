package services

import (
	"grabgo/internal/core/domain/model/order"
	"grabgo/internal/core/domain/model/user"
	"grabgo/internal/pkg/errs"
)

const (
	actionChangeStatus  = "change order status"
	actionTogglePayment = "toggle payment"
)

// OrderLifecycle decides whether an actor may move an order between states and
// what the resulting state is.
//
// Business rules:
//   - only administrators may change delivery status or payment status
//   - Pending -> In Progress -> Delivered is the forward path
//   - Pending and In Progress may be cancelled
//   - any status may be reset to Pending by an administrator
//   - payment toggles independently of delivery status
//
// Example usage:
//
//	lifecycle := services.NewOrderLifecycle()
//	next, err := lifecycle.ChangeStatus(admin, o.Status(), order.InProgress)
//	if errors.Is(err, errs.ErrUnauthorized) {
//	    // reject the request
//	}
type OrderLifecycle struct{}

// NewOrderLifecycle creates a new OrderLifecycle instance.
func NewOrderLifecycle() OrderLifecycle {
	return OrderLifecycle{}
}

// ChangeStatus returns the status an order moves to when actor requests target.
//
// Returns:
//   - *errs.UnauthorizedError if actor is not an administrator
//   - *errs.ValueIsInvalidError if the transition is not part of the lifecycle
func (l OrderLifecycle) ChangeStatus(actor user.User, current, target order.Status) (order.Status, error) {
	if err := l.AuthorizeStatusChange(actor); err != nil {
		return current, err
	}

	return current.TransitionTo(target)
}

// TogglePayment flips Paid and Unpaid for an administrator. It never fails
// for an administrator acting on a valid payment status.
func (l OrderLifecycle) TogglePayment(actor user.User, current order.PaymentStatus) (order.PaymentStatus, error) {
	if err := l.AuthorizePaymentToggle(actor); err != nil {
		return current, err
	}

	return current.Toggle()
}

// AuthorizeStatusChange rejects actors that may not change delivery status.
// Handlers call it before loading the order.
func (l OrderLifecycle) AuthorizeStatusChange(actor user.User) error {
	return l.authorize(actor, actionChangeStatus)
}

// AuthorizePaymentToggle rejects actors that may not toggle payment status.
func (l OrderLifecycle) AuthorizePaymentToggle(actor user.User) error {
	return l.authorize(actor, actionTogglePayment)
}

func (l OrderLifecycle) authorize(actor user.User, action string) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return errs.NewUnauthorizedError(actor.Email(), action)
	}
	return nil
}
