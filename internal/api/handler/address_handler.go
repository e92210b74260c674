package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
	"github.com/pharmaplus/pharmacy-system/internal/core/ports"
)

type AddressHandler struct {
	service ports.AddressService
}

func NewAddressHandler(service ports.AddressService) *AddressHandler {
	return &AddressHandler{service: service}
}

type createAddressRequest struct {
	Street    string `json:"street"     validate:"required"`
	City      string `json:"city"       validate:"required"`
	State     string `json:"state"`
	Zip       string `json:"zip"        validate:"required"`
	Country   string `json:"country"    validate:"required"`
	IsDefault bool   `json:"is_default"`
}

func (h *AddressHandler) List(c echo.Context) error {
	userID, err := scopeUserID(c)
	if err != nil {
		return err
	}

	addresses, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, addresses)
}

func (h *AddressHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	address, err := h.service.Create(c.Request().Context(), ports.CreateAddressInput{
		UserID:    userID,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Country:   req.Country,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, address)
}

func (h *AddressHandler) Delete(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	address, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if role != domain.RoleAdmin && address.UserID != userID {
		return echo.NewHTTPError(http.StatusNotFound, domain.ErrAddressNotFound.Error())
	}

	if err := h.service.Delete(c.Request().Context(), address.ID); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "address deleted")
}
