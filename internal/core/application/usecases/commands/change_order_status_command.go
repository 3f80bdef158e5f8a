package commands

import (
	"errors"

	"grabgo/internal/core/domain/model/kernel"
	"grabgo/internal/core/domain/model/order"
	"grabgo/internal/core/domain/model/user"
	"grabgo/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand asks to move an order to a new delivery status.
// Moving to Pending is the administrator reset.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor   user.User
	orderID kernel.OrderID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates the command. Authorization is checked
// by the handler, not here.
func NewChangeOrderStatusCommand(
	actor user.User,
	orderID kernel.OrderID,
	target order.Status,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) Actor() user.User {
	return c.actor
}

func (c ChangeOrderStatusCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Target returns the requested status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c *ChangeOrderStatusCommand) setActor(actor user.User) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ChangeOrderStatusCommand) setOrderID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
