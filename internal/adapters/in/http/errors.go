package http

import (
	"errors"
	"net/http"

	"grabgo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HeaderPersistenceWarning is set on successful responses whose change is
// applied but not yet durable.
const HeaderPersistenceWarning = "X-Persistence-Warning"

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("path", ctx.Path()),
			zap.Error(err),
		)
		return writeError(ctx, code, "Internal error")
	}
	return writeError(ctx, code, err.Error())
}

// warnIfNotDurable reports whether err is a persistence failure, and sets the
// warning header if so. Any other error is left to the caller.
func (s *Server) warnIfNotDurable(ctx echo.Context, err error) bool {
	var persistenceErr *errs.PersistenceError
	if !errors.As(err, &persistenceErr) {
		return false
	}

	s.logger.Warn("change applied but not persisted",
		zap.String("path", ctx.Path()),
		zap.Error(err),
	)
	ctx.Response().Header().Set(HeaderPersistenceWarning, "change saved in memory only, retrying")
	return true
}
