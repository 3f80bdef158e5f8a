package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// NewRouter registers every route of s on a new echo instance. Requests are
// logged through logger.
func NewRouter(s *Server, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/services", s.GetServices)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/mine", s.GetMyOrders)

	admin := api.Group("/admin")
	admin.GET("/orders", s.SearchOrders)
	admin.GET("/stats", s.GetStats)
	admin.PUT("/orders/:id/status", s.ChangeOrderStatus)
	admin.POST("/orders/:id/payment/toggle", s.ToggleOrderPayment)

	return e
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	logger = logger.With(zap.String("component", "http_access"))

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				logger.Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	})
}
