package commands_test

import (
	"context"
	"testing"
	"time"

	"grabgo/internal/core/application/usecases/commands"
	"grabgo/internal/core/domain/model/catalog"
	"grabgo/internal/core/domain/model/kernel"
	"grabgo/internal/core/domain/model/order"
	"grabgo/internal/core/domain/model/user"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) Append(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderStore) Patch(ctx context.Context, id kernel.OrderID, p order.Patch) (*order.Order, error) {
	args := m.Called(ctx, id, p)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderStore) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderStore) Snapshot(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func newUser(t *testing.T, email string, isAdmin bool) user.User {
	t.Helper()
	u, err := user.NewUser("uid-"+email, "Test User", email, "", "", isAdmin)
	require.NoError(t, err)
	return u
}

func validForm() commands.OrderForm {
	return commands.OrderForm{
		FullName:        "Alice",
		MobileNumber:    "9876543210",
		ItemDescription: "Paracetamol",
		FromAddress:     "Police Bazar",
		FromPincode:     "793001",
		ToAddress:       "Laitumkhrah",
		ToPincode:       "793010",
	}
}

func newStoredOrder(t *testing.T, status order.Status, payment order.PaymentStatus) *order.Order {
	t.Helper()

	pickup, _ := kernel.NewAddress("Police Bazar", "793001")
	drop, _ := kernel.NewAddress("Laitumkhrah", "793010")
	o, err := order.RestoreOrder(kernel.NewOrderID(), "alice@example.com", catalog.Others().Name, order.Normal,
		order.Details{
			UserName:        "Alice",
			UserPhone:       "9876543210",
			ItemDescription: "Keys",
			Pickup:          pickup,
			Drop:            drop,
		}, status, payment, order.NormalPrice, time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}
