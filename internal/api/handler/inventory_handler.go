package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
	"github.com/pharmaplus/pharmacy-system/internal/core/ports"
)

// InventoryHandler exposes warehouse stock management. All routes are mounted
// behind Auth + AdminOnly.
type InventoryHandler struct {
	service ports.InventoryService
}

func NewInventoryHandler(service ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

type createInventoryRequest struct {
	Name       string    `json:"name"        validate:"required"`
	Dosage     string    `json:"dosage"      validate:"required"`
	Quantity   int       `json:"quantity"    validate:"gte=0"`
	Supplier   string    `json:"supplier"    validate:"required"`
	ExpiryDate time.Time `json:"expiry_date" validate:"required"`
	Status     string    `json:"status"      validate:"omitempty,oneof=in_stock low_stock out_of_stock"`
}

type updateInventoryRequest struct {
	Name       *string    `json:"name"`
	Dosage     *string    `json:"dosage"`
	Quantity   *int       `json:"quantity"`
	Supplier   *string    `json:"supplier"`
	ExpiryDate *time.Time `json:"expiry_date"`
	Status     *string    `json:"status" validate:"omitempty,oneof=in_stock low_stock out_of_stock"`
}

func (h *InventoryHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, items)
}

func (h *InventoryHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, item)
}

func (h *InventoryHandler) Create(c echo.Context) error {
	var req createInventoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.Create(c.Request().Context(), ports.CreateInventoryInput{
		Name:       req.Name,
		Dosage:     req.Dosage,
		Quantity:   req.Quantity,
		Supplier:   req.Supplier,
		ExpiryDate: req.ExpiryDate,
		Status:     domain.StockStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, item)
}

func (h *InventoryHandler) Update(c echo.Context) error {
	var req updateInventoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var status *domain.StockStatus
	if req.Status != nil {
		s := domain.StockStatus(*req.Status)
		status = &s
	}

	item, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateInventoryInput{
		Name:       req.Name,
		Dosage:     req.Dosage,
		Quantity:   req.Quantity,
		Supplier:   req.Supplier,
		ExpiryDate: req.ExpiryDate,
		Status:     status,
	})
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, item)
}

func (h *InventoryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "inventory item deleted")
}
