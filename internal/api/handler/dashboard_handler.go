package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pharmaplus/pharmacy-system/internal/api/metrics"
	"github.com/pharmaplus/pharmacy-system/internal/core/ports"
)

// DashboardHandler serves the admin dashboard stats snapshot.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats returns the aggregate dashboard snapshot (admin only).
//
// @Summary      Admin dashboard stats
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dataResponse
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, cached, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	if cached {
		metrics.DashboardCacheTotal.WithLabelValues("hit").Inc()
	} else {
		metrics.DashboardCacheTotal.WithLabelValues("miss").Inc()
	}

	return respondData(c, http.StatusOK, stats)
}
