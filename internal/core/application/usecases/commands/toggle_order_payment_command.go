package commands

import (
	"errors"

	"grabgo/internal/core/domain/model/kernel"
	"grabgo/internal/core/domain/model/user"
	"grabgo/internal/pkg/guard"
)

var ErrToggleOrderPaymentCommandIsNotConstructed = errors.New(
	"ToggleOrderPaymentCommand must be created via NewToggleOrderPaymentCommand constructor",
)

// ToggleOrderPaymentCommand flips an order between Paid and Unpaid.
type ToggleOrderPaymentCommand struct { //nolint:recvcheck //using for validation
	actor   user.User
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

func NewToggleOrderPaymentCommand(actor user.User, orderID kernel.OrderID) (ToggleOrderPaymentCommand, error) {
	cmd := ToggleOrderPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return ToggleOrderPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleOrderPaymentCommand) Validate() error {
	return c.guard.Validate(ErrToggleOrderPaymentCommandIsNotConstructed)
}

func (c ToggleOrderPaymentCommand) Actor() user.User {
	return c.actor
}

func (c ToggleOrderPaymentCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *ToggleOrderPaymentCommand) setActor(actor user.User) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ToggleOrderPaymentCommand) setOrderID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}
