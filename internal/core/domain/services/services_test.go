package services_test

import (
	"testing"
	"time"

	"grabgo/internal/core/domain/model/catalog"
	"grabgo/internal/core/domain/model/kernel"
	"grabgo/internal/core/domain/model/order"
	"grabgo/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

func newAdmin(t *testing.T) user.User {
	t.Helper()
	u, err := user.NewUser("admin-1", "Admin", "admin@grabgo.in", "", "", true)
	require.NoError(t, err)
	return u
}

func newCustomer(t *testing.T, email string) user.User {
	t.Helper()
	u, err := user.NewUser("user-"+email, "Customer", email, "", "", false)
	require.NoError(t, err)
	return u
}

func newOrder(t *testing.T, email, name, serviceID string, urgency order.Urgency) *order.Order {
	t.Helper()

	pickup, err := kernel.NewAddress("Police Bazar", "793001")
	require.NoError(t, err)
	drop, err := kernel.NewAddress("Laitumkhrah", "793010")
	require.NoError(t, err)
	service, _ := catalog.Lookup(serviceID)

	o, err := order.NewOrder(kernel.NewOrderID(), email, service, urgency, order.Details{
		UserName:        name,
		UserPhone:       "9876543210",
		ItemDescription: "A parcel",
		Pickup:          pickup,
		Drop:            drop,
	}, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func apply(t *testing.T, o *order.Order, p order.Patch) *order.Order {
	t.Helper()
	next, err := o.Apply(p)
	require.NoError(t, err)
	return next
}
