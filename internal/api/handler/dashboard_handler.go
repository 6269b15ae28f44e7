package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/safespend/safespend-api/internal/core/ports"
)

// DashboardHandler serves the aggregate read models.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary handles GET /api/dashboard.
//
// @Summary      Dashboard summary
// @Description  Aggregates allergy count, month-to-date expenses, total
// @Description  balance, recent activities, active bill splits, and accounts.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardSummary
// @Failure      401  {object}  map[string]string
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	summary, err := h.service.Summary(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, summary)
}

// Achievements handles GET /api/achievements.
//
// @Summary      Achievement counters
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.AchievementSummary
// @Failure      401  {object}  map[string]string
// @Router       /api/achievements [get]
func (h *DashboardHandler) Achievements(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	achievements, err := h.service.Achievements(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, achievements)
}
