package commands

import (
	"errors"
	"strings"

	"grabgo/internal/core/domain/model/catalog"
	"grabgo/internal/core/domain/model/kernel"
	"grabgo/internal/core/domain/model/order"
	"grabgo/internal/core/domain/model/user"
	"grabgo/internal/pkg/errs"
	"grabgo/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderForm holds the raw values a customer submits on the order form.
type OrderForm struct {
	FullName        string
	MobileNumber    string
	ItemDescription string
	Urgency         string
	FromAddress     string
	FromPincode     string
	ToAddress       string
	ToPincode       string
}

// CreateOrderCommand represents a customer placing a new errand order.
// The price is never part of the form; it is derived from urgency when the
// order is built.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customer, "medicines", OrderForm{
//	    FullName: "Alice", MobileNumber: "9876543210", ItemDescription: "Paracetamol",
//	    FromAddress: "Police Bazar", FromPincode: "793001",
//	    ToAddress: "Laitumkhrah", ToPincode: "793010",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order form: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customer user.User
	service  catalog.Service
	urgency  order.Urgency
	details  order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the form for customer. Every contact and
// address field is required. A blank urgency means Normal and an unknown
// service id falls back to Others.
func NewCreateOrderCommand(customer user.User, serviceID string, form OrderForm) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	service, _ := catalog.Lookup(serviceID)
	cmd.service = service

	if err := errors.Join(
		cmd.setCustomer(customer),
		cmd.setUrgency(form.Urgency),
		cmd.setDetails(form),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Customer returns the ordering user.
func (c CreateOrderCommand) Customer() user.User {
	return c.customer
}

// Service returns the resolved catalog entry.
func (c CreateOrderCommand) Service() catalog.Service {
	return c.service
}

func (c CreateOrderCommand) Urgency() order.Urgency {
	return c.urgency
}

func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c *CreateOrderCommand) setCustomer(customer user.User) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setUrgency(raw string) error {
	if strings.TrimSpace(raw) == "" {
		c.urgency = order.Normal
		return nil
	}

	urgency, err := order.ParseUrgency(raw)
	if err != nil {
		return err
	}

	c.urgency = urgency
	return nil
}

func (c *CreateOrderCommand) setDetails(form OrderForm) error {
	fullName, nameErr := required("full name", form.FullName)
	mobile, mobileErr := required("mobile number", form.MobileNumber)
	description, descriptionErr := required("item description", form.ItemDescription)
	pickup, pickupErr := address("pickup", form.FromAddress, form.FromPincode)
	drop, dropErr := address("drop", form.ToAddress, form.ToPincode)

	if err := errors.Join(nameErr, mobileErr, descriptionErr, pickupErr, dropErr); err != nil {
		return err
	}

	c.details = order.Details{
		UserName:        fullName,
		UserPhone:       mobile,
		ItemDescription: description,
		Pickup:          pickup,
		Drop:            drop,
	}
	return nil
}

func required(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errs.NewValueIsRequiredError(field)
	}
	return value, nil
}

func address(kind, line, pincode string) (kernel.Address, error) {
	_, lineErr := required(kind+" address", line)
	_, pincodeErr := required(kind+" pincode", pincode)
	if err := errors.Join(lineErr, pincodeErr); err != nil {
		return kernel.Address{}, err
	}

	return kernel.NewAddress(line, pincode)
}
