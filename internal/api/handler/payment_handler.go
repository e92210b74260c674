package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
	"github.com/pharmaplus/pharmacy-system/internal/core/ports"
)

type PaymentMethodHandler struct {
	service ports.PaymentMethodService
}

func NewPaymentMethodHandler(service ports.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{service: service}
}

type createPaymentMethodRequest struct {
	Type    string `json:"type"    validate:"required"`
	Details string `json:"details" validate:"required"`
}

func (h *PaymentMethodHandler) List(c echo.Context) error {
	userID, err := scopeUserID(c)
	if err != nil {
		return err
	}

	methods, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, methods)
}

func (h *PaymentMethodHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createPaymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	method, err := h.service.Create(c.Request().Context(), ports.CreatePaymentMethodInput{
		UserID:  userID,
		Type:    req.Type,
		Details: req.Details,
	})
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, method)
}

func (h *PaymentMethodHandler) Delete(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	method, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if role != domain.RoleAdmin && method.UserID != userID {
		return echo.NewHTTPError(http.StatusNotFound, domain.ErrPaymentMethodNotFound.Error())
	}

	if err := h.service.Delete(c.Request().Context(), method.ID); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "payment method deleted")
}
