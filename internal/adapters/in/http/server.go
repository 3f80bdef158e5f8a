package http

import (
	"net/http"
	"strings"

	"grabgo/internal/core/application/usecases/commands"
	"grabgo/internal/core/application/usecases/queries"
	"grabgo/internal/core/domain/model/catalog"
	"grabgo/internal/core/domain/model/kernel"
	"grabgo/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Options carries the boundary settings that are not handlers.
type Options struct {
	// AdminEmail identifies the administrator account.
	AdminEmail string
	// PayeeVPA and PayeeName are used to build the UPI link of a new order.
	PayeeVPA  string
	PayeeName string
}

// Server exposes the order use cases over HTTP.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	changeStatusHandler  commands.ChangeOrderStatusCommandHandler
	togglePaymentHandler commands.ToggleOrderPaymentCommandHandler

	// Query handlers
	orderHistoryHandler queries.GetOrderHistoryQueryHandler
	searchOrdersHandler queries.SearchOrdersQueryHandler
	orderStatsHandler   queries.GetOrderStatsQueryHandler

	options Options
	logger  *zap.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	togglePaymentHandler commands.ToggleOrderPaymentCommandHandler,
	orderHistoryHandler queries.GetOrderHistoryQueryHandler,
	searchOrdersHandler queries.SearchOrdersQueryHandler,
	orderStatsHandler queries.GetOrderStatsQueryHandler,
	options Options,
	logger *zap.Logger,
) *Server {
	return &Server{
		createOrderHandler:   createOrderHandler,
		changeStatusHandler:  changeStatusHandler,
		togglePaymentHandler: togglePaymentHandler,
		orderHistoryHandler:  orderHistoryHandler,
		searchOrdersHandler:  searchOrdersHandler,
		orderStatsHandler:    orderStatsHandler,
		options:              options,
		logger:               logger.With(zap.String("component", "http")),
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetServices handles GET /api/v1/services - lists the service catalog.
func (s *Server) GetServices(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, toServiceResponses(catalog.All()))
}

// CreateOrder handles POST /api/v1/orders - places an order for the caller.
func (s *Server) CreateOrder(ctx echo.Context) error {
	customer, err := currentUser(ctx, s.options.AdminEmail)
	if err != nil {
		return writeError(ctx, http.StatusUnauthorized, "Missing or invalid identity")
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(customer, req.ServiceID, commands.OrderForm{
		FullName:        req.FullName,
		MobileNumber:    req.MobileNumber,
		ItemDescription: req.ItemDescription,
		Urgency:         req.Urgency,
		FromAddress:     req.FromAddress,
		FromPincode:     req.FromPincode,
		ToAddress:       req.ToAddress,
		ToPincode:       req.ToPincode,
	})
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil && !s.warnIfNotDurable(ctx, err) {
		return s.fail(ctx, err)
	}

	response := toOrderResponse(created)
	response.PaymentLink = order.NewUPIPaymentLink(s.options.PayeeVPA, s.options.PayeeName, created.Amount())

	return ctx.JSON(http.StatusCreated, response)
}

// GetMyOrders handles GET /api/v1/orders/mine - the caller's order history.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	customer, err := currentUser(ctx, s.options.AdminEmail)
	if err != nil {
		return writeError(ctx, http.StatusUnauthorized, "Missing or invalid identity")
	}

	query, err := queries.NewGetOrderHistoryQuery(customer)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.orderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// SearchOrders handles GET /api/v1/admin/orders?q= - every order matching q.
func (s *Server) SearchOrders(ctx echo.Context) error {
	actor, err := currentUser(ctx, s.options.AdminEmail)
	if err != nil {
		return writeError(ctx, http.StatusUnauthorized, "Missing or invalid identity")
	}

	query, err := queries.NewSearchOrdersQuery(actor, ctx.QueryParam("q"))
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.searchOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetStats handles GET /api/v1/admin/stats?q= - dashboard counters.
func (s *Server) GetStats(ctx echo.Context) error {
	actor, err := currentUser(ctx, s.options.AdminEmail)
	if err != nil {
		return writeError(ctx, http.StatusUnauthorized, "Missing or invalid identity")
	}

	query, err := queries.NewGetOrderStatsQuery(actor, ctx.QueryParam("q"))
	if err != nil {
		return s.fail(ctx, err)
	}

	stats, err := s.orderStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStatsResponse(stats))
}

// ChangeOrderStatus handles PUT /api/v1/admin/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	actor, err := currentUser(ctx, s.options.AdminEmail)
	if err != nil {
		return writeError(ctx, http.StatusUnauthorized, "Missing or invalid identity")
	}

	id, err := kernel.OrderIDFromString(strings.ToUpper(ctx.Param("id")))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(actor, id, target)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil && !s.warnIfNotDurable(ctx, err) {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// ToggleOrderPayment handles POST /api/v1/admin/orders/:id/payment/toggle.
func (s *Server) ToggleOrderPayment(ctx echo.Context) error {
	actor, err := currentUser(ctx, s.options.AdminEmail)
	if err != nil {
		return writeError(ctx, http.StatusUnauthorized, "Missing or invalid identity")
	}

	id, err := kernel.OrderIDFromString(strings.ToUpper(ctx.Param("id")))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewToggleOrderPaymentCommand(actor, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.togglePaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil && !s.warnIfNotDurable(ctx, err) {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}
