package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"grabgo/internal/core/application/usecases/queries"
	"grabgo/internal/core/domain/model/catalog"
	"grabgo/internal/core/domain/model/kernel"
	"grabgo/internal/core/domain/model/order"
	"grabgo/internal/core/domain/model/user"
	"grabgo/internal/core/domain/services"
	"grabgo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Snapshot(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func newUser(t *testing.T, email string, isAdmin bool) user.User {
	t.Helper()
	u, err := user.NewUser("uid", "Name", email, "", "", isAdmin)
	require.NoError(t, err)
	return u
}

func newOrder(
	t *testing.T,
	email, name, serviceID string,
	urgency order.Urgency,
	status order.Status,
	payment order.PaymentStatus,
) *order.Order {
	t.Helper()

	pickup, _ := kernel.NewAddress("Police Bazar", "793001")
	drop, _ := kernel.NewAddress("Laitumkhrah", "793010")
	service, _ := catalog.Lookup(serviceID)
	o, err := order.RestoreOrder(kernel.NewOrderID(), email, service.Name, urgency, order.Details{
		UserName:        name,
		UserPhone:       "9876543210",
		ItemDescription: "Parcel",
		Pickup:          pickup,
		Drop:            drop,
	}, status, payment, order.Price(urgency), time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func fixture(t *testing.T) []*order.Order {
	t.Helper()
	return []*order.Order{
		newOrder(t, "alice@example.com", "Alice", "medicines", order.Express, order.Pending, order.Unpaid),
		newOrder(t, "bob@example.com", "Bob", "documents", order.Normal, order.Delivered, order.Paid),
		newOrder(t, "alice@example.com", "Alice", "stationery", order.Normal, order.Delivered, order.Paid),
		newOrder(t, "carol@example.com", "Carol", "household", order.Express, order.Cancelled, order.Paid),
	}
}

func TestGetOrderHistoryQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	orders := fixture(t)
	reader := new(MockOrderReader)
	reader.On("Snapshot", ctx).Return(orders, nil)

	h := queries.NewGetOrderHistoryQueryHandler(reader)

	t.Run("returns only the customer's orders in store order", func(t *testing.T) {
		query, err := queries.NewGetOrderHistoryQuery(newUser(t, "alice@example.com", false))
		require.NoError(t, err)

		history, err := h.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Same(t, orders[0], history[0])
		assert.Same(t, orders[2], history[1])
	})

	t.Run("admin sees only their own history", func(t *testing.T) {
		query, _ := queries.NewGetOrderHistoryQuery(newUser(t, "admin@grabgo.in", true))

		history, err := h.Handle(ctx, query)

		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("zero value query fails", func(t *testing.T) {
		_, err := h.Handle(ctx, queries.GetOrderHistoryQuery{})

		require.ErrorIs(t, err, queries.ErrGetOrderHistoryQueryIsNotConstructed)
	})

	t.Run("constructor rejects zero user", func(t *testing.T) {
		_, err := queries.NewGetOrderHistoryQuery(user.User{})

		require.ErrorIs(t, err, user.ErrUserIsNotConstructed)
	})
}

func TestSearchOrdersQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	orders := fixture(t)
	admin := newUser(t, "admin@grabgo.in", true)

	t.Run("filters by term", func(t *testing.T) {
		reader := new(MockOrderReader)
		reader.On("Snapshot", ctx).Return(orders, nil).Once()
		query, _ := queries.NewSearchOrdersQuery(admin, "alice")

		result, err := queries.NewSearchOrdersQueryHandler(reader).Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, []*order.Order{orders[0], orders[2]}, result)
		reader.AssertExpectations(t)
	})

	t.Run("empty term lists all", func(t *testing.T) {
		reader := new(MockOrderReader)
		reader.On("Snapshot", ctx).Return(orders, nil).Once()
		query, _ := queries.NewSearchOrdersQuery(admin, "")

		result, err := queries.NewSearchOrdersQueryHandler(reader).Handle(ctx, query)

		require.NoError(t, err)
		assert.Len(t, result, 4)
	})

	t.Run("non admin is rejected", func(t *testing.T) {
		reader := new(MockOrderReader)
		query, _ := queries.NewSearchOrdersQuery(newUser(t, "alice@example.com", false), "")

		_, err := queries.NewSearchOrdersQueryHandler(reader).Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
		reader.AssertNotCalled(t, "Snapshot", mock.Anything)
	})

	t.Run("reader error is returned", func(t *testing.T) {
		reader := new(MockOrderReader)
		reader.On("Snapshot", ctx).Return(nil, errors.New("boom")).Once()
		query, _ := queries.NewSearchOrdersQuery(admin, "")

		_, err := queries.NewSearchOrdersQueryHandler(reader).Handle(ctx, query)

		require.EqualError(t, err, "boom")
	})
}

func TestGetOrderStatsQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	orders := fixture(t)
	admin := newUser(t, "admin@grabgo.in", true)

	t.Run("whole collection", func(t *testing.T) {
		reader := new(MockOrderReader)
		reader.On("Snapshot", ctx).Return(orders, nil).Once()
		query, _ := queries.NewGetOrderStatsQuery(admin, "")

		stats, err := queries.NewGetOrderStatsQueryHandler(reader).Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, services.Stats{Total: 4, Pending: 1, Delivered: 2, TotalRevenue: 100 + 100 + 180}, stats)
	})

	t.Run("stats follow the search term", func(t *testing.T) {
		reader := new(MockOrderReader)
		reader.On("Snapshot", ctx).Return(orders, nil).Once()
		query, _ := queries.NewGetOrderStatsQuery(admin, "ALICE")

		stats, err := queries.NewGetOrderStatsQueryHandler(reader).Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, services.Stats{Total: 2, Pending: 1, Delivered: 1, TotalRevenue: 100}, stats)
	})

	t.Run("recomputed after the store changes", func(t *testing.T) {
		paid, err := orders[0].Apply(order.PaymentPatch(order.Paid))
		require.NoError(t, err)

		reader := new(MockOrderReader)
		reader.On("Snapshot", ctx).Return(orders[:1], nil).Once()
		reader.On("Snapshot", ctx).Return([]*order.Order{paid}, nil).Once()
		h := queries.NewGetOrderStatsQueryHandler(reader)
		query, _ := queries.NewGetOrderStatsQuery(admin, "")

		before, err := h.Handle(ctx, query)
		require.NoError(t, err)
		after, err := h.Handle(ctx, query)
		require.NoError(t, err)

		assert.Equal(t, 0, before.TotalRevenue)
		assert.Equal(t, 180, after.TotalRevenue)
	})

	t.Run("non admin is rejected", func(t *testing.T) {
		query, _ := queries.NewGetOrderStatsQuery(newUser(t, "bob@example.com", false), "")

		_, err := queries.NewGetOrderStatsQueryHandler(new(MockOrderReader)).Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("zero value query fails", func(t *testing.T) {
		_, err := queries.NewGetOrderStatsQueryHandler(new(MockOrderReader)).Handle(ctx, queries.GetOrderStatsQuery{})

		require.ErrorIs(t, err, queries.ErrGetOrderStatsQueryIsNotConstructed)
	})
}
