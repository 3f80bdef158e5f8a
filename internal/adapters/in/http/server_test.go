package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "grabgo/internal/adapters/in/http"
	"grabgo/internal/adapters/out/kv/memkv"
	"grabgo/internal/adapters/out/orderstore"
	"grabgo/internal/core/application/usecases/commands"
	"grabgo/internal/core/application/usecases/queries"
	"grabgo/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	adminEmail = "admin@grabgo.in"
	aliceEmail = "alice@example.com"
)

type switchableKV struct {
	*memkv.Store
	fail bool
}

func (s *switchableKV) Put(ctx context.Context, key string, value []byte) error {
	if s.fail {
		return errors.New("quota exceeded")
	}
	return s.Store.Put(ctx, key, value)
}

type testAPI struct {
	echo  *echo.Echo
	store *orderstore.Store
	kv    *switchableKV
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := zap.NewNop()
	kv := &switchableKV{Store: memkv.New()}
	store := orderstore.New(kv, logger)
	_, err := store.Load(context.Background())
	require.NoError(t, err)

	lifecycle := services.NewOrderLifecycle()
	server := httpadapter.NewServer(
		commands.NewCreateOrderCommandHandler(store, logger),
		commands.NewChangeOrderStatusCommandHandler(store, lifecycle, logger),
		commands.NewToggleOrderPaymentCommandHandler(store, lifecycle),
		queries.NewGetOrderHistoryQueryHandler(store),
		queries.NewSearchOrdersQueryHandler(store),
		queries.NewGetOrderStatsQueryHandler(store),
		httpadapter.Options{AdminEmail: adminEmail, PayeeVPA: "grabgo@okhdfc", PayeeName: "GrabGo"},
		logger,
	)

	return &testAPI{
		echo:  httpadapter.NewRouter(server, logger),
		store: store,
		kv:    kv,
	}
}

func (a *testAPI) do(t *testing.T, method, path, email, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if email != "" {
		req.Header.Set(httpadapter.HeaderUserEmail, email)
		req.Header.Set(httpadapter.HeaderUserName, "Test")
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

const orderBody = `{
	"serviceId": "medicines",
	"fullName": "Alice",
	"mobileNumber": "9876543210",
	"itemDescription": "Paracetamol",
	"urgency": "Normal",
	"fromAddress": "Police Bazar",
	"fromPincode": "793001",
	"toAddress": "Laitumkhrah",
	"toPincode": "793010"
}`

func (a *testAPI) createOrder(t *testing.T, email, body string) httpadapter.OrderResponse {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/v1/orders", email, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[httpadapter.OrderResponse](t, rec)
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestGetServices(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/services", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	entries := decode[[]httpadapter.ServiceResponse](t, rec)
	require.Len(t, entries, 5)
	assert.Equal(t, "medicines", entries[0].ID)
	assert.Equal(t, "others", entries[4].ID)
}

func TestCreateOrder(t *testing.T) {
	t.Run("creates a pending unpaid order with payment link", func(t *testing.T) {
		api := newTestAPI(t)

		created := api.createOrder(t, aliceEmail, orderBody)

		assert.True(t, strings.HasPrefix(created.ID, "ORD-"))
		assert.Equal(t, aliceEmail, created.UserEmail)
		assert.Equal(t, "Medicines", created.ServiceType)
		assert.Equal(t, 100, created.Amount)
		assert.Equal(t, "Pending", created.Status)
		assert.Equal(t, "Unpaid", created.PaymentStatus)
		assert.Equal(t, "upi://pay?pa=grabgo@okhdfc&pn=GrabGo&am=100&cu=INR", created.PaymentLink)
	})

	t.Run("price cannot be supplied by the client", func(t *testing.T) {
		api := newTestAPI(t)
		body := strings.Replace(orderBody, `"urgency": "Normal"`, `"urgency": "Express", "amount": 1`, 1)

		created := api.createOrder(t, aliceEmail, body)

		assert.Equal(t, 180, created.Amount)
	})

	t.Run("missing identity is unauthorized", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(t, http.MethodPost, "/api/v1/orders", "", orderBody)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(t, http.MethodPost, "/api/v1/orders", aliceEmail, `{"serviceId":"medicines"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode[httpadapter.ErrorResponse](t, rec)
		assert.Equal(t, http.StatusBadRequest, body.Code)
		assert.Contains(t, body.Message, "full name")
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(t, http.MethodPost, "/api/v1/orders", aliceEmail, `{`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("persistence failure still creates the order", func(t *testing.T) {
		api := newTestAPI(t)
		api.kv.fail = true

		rec := api.do(t, http.MethodPost, "/api/v1/orders", aliceEmail, orderBody)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(httpadapter.HeaderPersistenceWarning))
		assert.True(t, api.store.Dirty())
	})
}

func TestGetMyOrders(t *testing.T) {
	api := newTestAPI(t)
	first := api.createOrder(t, aliceEmail, orderBody)
	api.createOrder(t, "bob@example.com", orderBody)
	second := api.createOrder(t, aliceEmail, orderBody)

	rec := api.do(t, http.MethodGet, "/api/v1/orders/mine", aliceEmail, "")

	require.Equal(t, http.StatusOK, rec.Code)
	orders := decode[[]httpadapter.OrderResponse](t, rec)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
	for _, o := range orders {
		assert.Equal(t, aliceEmail, o.UserEmail)
	}
}

func TestAdminEndpoints_RejectCustomers(t *testing.T) {
	api := newTestAPI(t)
	created := api.createOrder(t, aliceEmail, orderBody)

	for _, tc := range []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/v1/admin/orders", ""},
		{http.MethodGet, "/api/v1/admin/stats", ""},
		{http.MethodPut, "/api/v1/admin/orders/" + created.ID + "/status", `{"status":"In Progress"}`},
		{http.MethodPost, "/api/v1/admin/orders/" + created.ID + "/payment/toggle", ""},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := api.do(t, tc.method, tc.path, aliceEmail, tc.body)

			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestAdminScenario(t *testing.T) {
	api := newTestAPI(t)
	created := api.createOrder(t, aliceEmail, orderBody)
	statusPath := "/api/v1/admin/orders/" + created.ID + "/status"

	rec := api.do(t, http.MethodPut, statusPath, adminEmail, `{"status":"In Progress"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "In Progress", decode[httpadapter.OrderResponse](t, rec).Status)

	rec = api.do(t, http.MethodPut, statusPath, adminEmail, `{"status":"Delivered"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Delivered", decode[httpadapter.OrderResponse](t, rec).Status)

	rec = api.do(t, http.MethodPut, statusPath, adminEmail, `{"status":"In Progress"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "delivered orders must be reset first")

	rec = api.do(t, http.MethodPost, "/api/v1/admin/orders/"+created.ID+"/payment/toggle", adminEmail, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	toggled := decode[httpadapter.OrderResponse](t, rec)
	assert.Equal(t, "Paid", toggled.PaymentStatus)
	assert.Equal(t, "Delivered", toggled.Status)

	rec = api.do(t, http.MethodGet, "/api/v1/admin/stats", adminEmail, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, httpadapter.StatsResponse{Total: 1, Pending: 0, Delivered: 1, TotalRevenue: 100},
		decode[httpadapter.StatsResponse](t, rec))

	rec = api.do(t, http.MethodPut, statusPath, adminEmail, `{"status":"Pending"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Pending", decode[httpadapter.OrderResponse](t, rec).Status)
}

func TestSearchOrders(t *testing.T) {
	api := newTestAPI(t)
	api.createOrder(t, aliceEmail, orderBody)
	docs := api.createOrder(t, "bob@example.com", strings.Replace(orderBody, "medicines", "documents", 1))

	rec := api.do(t, http.MethodGet, "/api/v1/admin/orders?q=documents", "ADMIN@grabgo.in", "")

	require.Equal(t, http.StatusOK, rec.Code)
	orders := decode[[]httpadapter.OrderResponse](t, rec)
	require.Len(t, orders, 1)
	assert.Equal(t, docs.ID, orders[0].ID)

	rec = api.do(t, http.MethodGet, "/api/v1/admin/orders", adminEmail, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]httpadapter.OrderResponse](t, rec), 2)
}

func TestChangeOrderStatus_Errors(t *testing.T) {
	api := newTestAPI(t)

	t.Run("unknown order", func(t *testing.T) {
		rec := api.do(t, http.MethodPut, "/api/v1/admin/orders/ORD-ZZZZZZ/status", adminEmail, `{"status":"Delivered"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := api.do(t, http.MethodPut, "/api/v1/admin/orders/12345/status", adminEmail, `{"status":"Delivered"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown status label", func(t *testing.T) {
		created := api.createOrder(t, aliceEmail, orderBody)

		rec := api.do(t, http.MethodPut, "/api/v1/admin/orders/"+created.ID+"/status", adminEmail, `{"status":"Lost"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("persistence failure is a warning", func(t *testing.T) {
		created := api.createOrder(t, aliceEmail, orderBody)
		api.kv.fail = true
		defer func() { api.kv.fail = false }()

		rec := api.do(t, http.MethodPut, "/api/v1/admin/orders/"+created.ID+"/status", adminEmail, `{"status":"Cancelled"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(httpadapter.HeaderPersistenceWarning))
		assert.Equal(t, "Cancelled", decode[httpadapter.OrderResponse](t, rec).Status)
	})
}
