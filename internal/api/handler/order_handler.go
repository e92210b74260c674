package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pharmaplus/pharmacy-system/internal/api/metrics"
	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
	"github.com/pharmaplus/pharmacy-system/internal/core/ports"
)

type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type createOrderRequest struct {
	PrescriptionID string  `json:"prescription_id"`
	Total          float64 `json:"total"  validate:"gte=0"`
	Status         string  `json:"status" validate:"omitempty,oneof=pending processing shipped delivered cancelled"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

// List returns orders; customers only ever see their own.
func (h *OrderHandler) List(c echo.Context) error {
	userID, err := scopeUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, orders)
}

func (h *OrderHandler) Get(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	order, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if role != domain.RoleAdmin && order.UserID != userID {
		// Hide the existence of other customers' orders.
		return echo.NewHTTPError(http.StatusNotFound, domain.ErrOrderNotFound.Error())
	}
	return respondData(c, http.StatusOK, order)
}

// Create places an order for the authenticated customer.
func (h *OrderHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.Create(c.Request().Context(), ports.CreateOrderInput{
		UserID:         userID,
		PrescriptionID: req.PrescriptionID,
		Total:          req.Total,
		Status:         domain.OrderStatus(req.Status),
	})
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.WithLabelValues(string(order.Status)).Inc()
	return respondData(c, http.StatusCreated, order)
}

// UpdateStatus advances the order state machine (admin only).
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, order)
}

// Delete removes an order (admin only).
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "order deleted")
}
