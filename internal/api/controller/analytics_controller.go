package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pranit96/life.me/internal/api/response"
	"github.com/pranit96/life.me/internal/service"
)

type AnalyticsController struct {
	service *service.AnalyticsService
}

func NewAnalyticsController(s *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{service: s}
}

// Snapshot recomputes the analytics for a user from their current expenses
// and goals.
// @Summary Get analytics snapshot
// @Tags Analytics
// @Produce json
// @Param userId path string true "user ID"
// @Success 200 {object} model.Analytics
// @Router /api/analytics/{userId} [get]
func (ctrl *AnalyticsController) Snapshot(c *gin.Context) {
	if ctrl.service == nil {
		response.Error(c, http.StatusInternalServerError, "Database not configured")
		return
	}

	analytics, err := ctrl.service.Snapshot(c.Request.Context(), c.Param("userId"))
	if err != nil {
		slog.Error("analytics snapshot failed", "user_id", c.Param("userId"), "error", err)
		response.FromError(c, err, "Failed to compute analytics")
		return
	}
	c.JSON(http.StatusOK, analytics)
}
