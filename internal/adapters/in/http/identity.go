package http

import (
	"strings"

	"grabgo/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// Headers set by the session layer in front of the API.
const (
	HeaderUserID    = "X-User-Id"
	HeaderUserName  = "X-User-Name"
	HeaderUserEmail = "X-User-Email"
	HeaderUserPhone = "X-User-Phone"
	HeaderUserPhoto = "X-User-Photo"
)

// currentUser builds the caller from the identity headers. The caller is an
// administrator when their email matches adminEmail, ignoring case.
func currentUser(ctx echo.Context, adminEmail string) (user.User, error) {
	h := ctx.Request().Header
	email := strings.TrimSpace(h.Get(HeaderUserEmail))

	return user.NewUser(
		h.Get(HeaderUserID),
		h.Get(HeaderUserName),
		email,
		h.Get(HeaderUserPhoto),
		h.Get(HeaderUserPhone),
		adminEmail != "" && strings.EqualFold(email, adminEmail),
	)
}
