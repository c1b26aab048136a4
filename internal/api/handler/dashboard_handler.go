package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stocklane/inventory-system/internal/core/ports"
)

// DashboardHandler serves the aggregate stats behind the landing page.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Overview handles GET /dashboard/overview.
//
// @Summary      Aggregate stats for the landing page
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Overview
// @Router       /dashboard/overview [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	overview, err := h.service.Overview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}
