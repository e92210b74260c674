package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
	"github.com/pharmaplus/pharmacy-system/internal/core/ports"
)

type PrescriptionHandler struct {
	service ports.PrescriptionService
}

func NewPrescriptionHandler(service ports.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{service: service}
}

type createPrescriptionRequest struct {
	DoctorName   string `json:"doctor_name"  validate:"required"`
	Medication   string `json:"medication"   validate:"required"`
	Dosage       string `json:"dosage"`
	Instructions string `json:"instructions"`
}

type updatePrescriptionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved completed rejected"`
}

func (h *PrescriptionHandler) List(c echo.Context) error {
	userID, err := scopeUserID(c)
	if err != nil {
		return err
	}

	prescriptions, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, prescriptions)
}

func (h *PrescriptionHandler) Get(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	p, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if role != domain.RoleAdmin && p.UserID != userID {
		return echo.NewHTTPError(http.StatusNotFound, domain.ErrPrescriptionNotFound.Error())
	}
	return respondData(c, http.StatusOK, p)
}

func (h *PrescriptionHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createPrescriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.service.Create(c.Request().Context(), ports.CreatePrescriptionInput{
		UserID:       userID,
		DoctorName:   req.DoctorName,
		Medication:   req.Medication,
		Dosage:       req.Dosage,
		Instructions: req.Instructions,
	})
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, p)
}

// UpdateStatus moves a prescription through review (admin only).
func (h *PrescriptionHandler) UpdateStatus(c echo.Context) error {
	var req updatePrescriptionStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.PrescriptionStatus(req.Status))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, p)
}

func (h *PrescriptionHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "prescription deleted")
}
