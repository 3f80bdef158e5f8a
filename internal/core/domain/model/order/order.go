package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"grabgo/internal/core/domain/model/catalog"
	"grabgo/internal/core/domain/model/kernel"
	"grabgo/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Details are the customer supplied parts of an order.
type Details struct {
	UserName        string
	UserPhone       string
	ItemDescription string
	Pickup          kernel.Address
	Drop            kernel.Address
}

// Order is one errand request. It is created once by a customer, mutated by
// status and payment changes, and never deleted.
//
// Order follows these invariants:
//   - id, owner email, service type, urgency, amount and timestamp never change
//   - amount equals Price(urgency)
//   - status and payment status always hold valid values
type Order struct {
	id          kernel.OrderID
	userEmail   string
	serviceType string
	urgency     Urgency
	amount      int
	timestamp   time.Time

	userName        string
	userPhone       string
	itemDescription string
	pickup          kernel.Address
	drop            kernel.Address

	status        Status
	paymentStatus PaymentStatus

	isConstructed bool
}

// NewOrder creates a Pending, Unpaid order priced from urgency.
//
// Example:
//
//	pickup, _ := kernel.NewAddress("Police Bazar", "793001")
//	drop, _ := kernel.NewAddress("Laitumkhrah", "793010")
//	service, _ := catalog.Lookup("medicines")
//	o, err := order.NewOrder(kernel.NewOrderID(), "alice@example.com", service, order.Normal,
//	    order.Details{UserName: "Alice", UserPhone: "9876543210", ItemDescription: "Paracetamol",
//	        Pickup: pickup, Drop: drop},
//	    time.Now().UTC())
func NewOrder(
	id kernel.OrderID,
	ownerEmail string,
	service catalog.Service,
	urgency Urgency,
	details Details,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: Unpaid,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserEmail(ownerEmail),
		o.setServiceType(service.Name),
		o.setUrgency(urgency),
		o.setDetails(details),
		o.setTimestamp(createdAt),
	); err != nil {
		return nil, err
	}
	o.amount = Price(o.urgency)

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state. It applies the same
// checks as NewOrder and also verifies the stored amount still matches the
// urgency price.
func RestoreOrder(
	id kernel.OrderID,
	ownerEmail string,
	serviceType string,
	urgency Urgency,
	details Details,
	status Status,
	paymentStatus PaymentStatus,
	amount int,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserEmail(ownerEmail),
		o.setServiceType(serviceType),
		o.setUrgency(urgency),
		o.setDetails(details),
		o.setTimestamp(createdAt),
		o.setStatus(status),
		o.setPaymentStatus(paymentStatus),
		o.setAmount(amount, urgency),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Clone returns an independent copy.
func (o *Order) Clone() *Order {
	c := *o
	return &c
}

// ID returns the order identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// UserEmail returns the owner's email.
func (o *Order) UserEmail() string {
	return o.userEmail
}

// IsOwnedBy reports whether email is exactly the owner's email.
func (o *Order) IsOwnedBy(email string) bool {
	return o.userEmail == email
}

func (o *Order) UserName() string {
	return o.userName
}

func (o *Order) UserPhone() string {
	return o.userPhone
}

// ServiceType returns the catalog name chosen at creation.
func (o *Order) ServiceType() string {
	return o.serviceType
}

func (o *Order) ItemDescription() string {
	return o.itemDescription
}

func (o *Order) Urgency() Urgency {
	return o.urgency
}

// Pickup returns the "from" address.
func (o *Order) Pickup() kernel.Address {
	return o.pickup
}

// Drop returns the "to" address.
func (o *Order) Drop() kernel.Address {
	return o.drop
}

func (o *Order) Status() Status {
	return o.status
}

// Amount returns the price in rupees.
func (o *Order) Amount() int {
	return o.amount
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Timestamp returns the creation instant.
func (o *Order) Timestamp() time.Time {
	return o.timestamp
}

// Apply returns a copy of o with every field present in p overwritten.
// The receiver is left untouched, so a failed patch has no effect.
func (o *Order) Apply(p Patch) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	next := o.Clone()
	var errList []error

	if p.UserName != nil {
		errList = append(errList, next.setUserName(*p.UserName))
	}
	if p.UserPhone != nil {
		errList = append(errList, next.setUserPhone(*p.UserPhone))
	}
	if p.ItemDescription != nil {
		errList = append(errList, next.setItemDescription(*p.ItemDescription))
	}
	if p.Pickup != nil {
		errList = append(errList, next.setPickup(*p.Pickup))
	}
	if p.Drop != nil {
		errList = append(errList, next.setDrop(*p.Drop))
	}
	if p.Status != nil {
		errList = append(errList, next.setStatus(*p.Status))
	}
	if p.PaymentStatus != nil {
		errList = append(errList, next.setPaymentStatus(*p.PaymentStatus))
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return next, nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("userEmail")
	}
	o.userEmail = email
	return nil
}

func (o *Order) setServiceType(serviceType string) error {
	serviceType = strings.TrimSpace(serviceType)
	if serviceType == "" {
		return errs.NewValueIsRequiredError("serviceType")
	}
	o.serviceType = serviceType
	return nil
}

func (o *Order) setUrgency(urgency Urgency) error {
	if err := urgency.Validate(); err != nil {
		return err
	}
	o.urgency = urgency
	return nil
}

func (o *Order) setDetails(d Details) error {
	return errors.Join(
		o.setUserName(d.UserName),
		o.setUserPhone(d.UserPhone),
		o.setItemDescription(d.ItemDescription),
		o.setPickup(d.Pickup),
		o.setDrop(d.Drop),
	)
}

func (o *Order) setUserName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("userName")
	}
	o.userName = name
	return nil
}

func (o *Order) setUserPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("userPhone")
	}
	o.userPhone = phone
	return nil
}

func (o *Order) setItemDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("itemDescription")
	}
	o.itemDescription = description
	return nil
}

func (o *Order) setPickup(a kernel.Address) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup address", err)
	}
	o.pickup = a
	return nil
}

func (o *Order) setDrop(a kernel.Address) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("drop address", err)
	}
	o.drop = a
	return nil
}

func (o *Order) setTimestamp(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	o.timestamp = t
	return nil
}

func (o *Order) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.status = s
	return nil
}

func (o *Order) setPaymentStatus(p PaymentStatus) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.paymentStatus = p
	return nil
}

func (o *Order) setAmount(amount int, urgency Urgency) error {
	if expected := Price(urgency); amount != expected {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%d does not match the %s price %d", amount, urgency, expected),
		)
	}
	o.amount = amount
	return nil
}
