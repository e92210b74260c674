package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pharmaplus/pharmacy-system/internal/api/middleware"
	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty role proves
// the middleware ran, and every authenticated caller must carry a subject id.
func ctxClaims(c echo.Context) (userID, role string, err error) {
	role, _ = c.Get(middleware.CtxRole).(string)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ = c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing subject identity")
	}

	return userID, role, nil
}

// scopeUserID resolves the userId list filter for the caller: admins may
// filter on any user (or none), customers are always pinned to themselves.
func scopeUserID(c echo.Context) (string, error) {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return "", err
	}
	if role == domain.RoleAdmin {
		return c.QueryParam("userId"), nil
	}
	return userID, nil
}
