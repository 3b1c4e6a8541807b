package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pranit96/life.me/internal/api/response"
	"github.com/pranit96/life.me/internal/service"
)

type InsightController struct {
	service *service.InsightService
}

func NewInsightController(s *service.InsightService) *InsightController {
	return &InsightController{service: s}
}

type InsightRequest struct {
	UserID string `json:"userId" binding:"required"`
	Type   string `json:"type"`
}

type InsightResponse struct {
	Insights string `json:"insights"`
}

// Generate produces on-demand insight text over the user's recent spending.
// Provider outages surface as fallback text with a 200, never as a failure;
// only a missing configuration or a store error is a 500.
// @Summary Generate AI insights
// @Tags AI
// @Accept json
// @Produce json
// @Param request body InsightRequest true "userId and insight type"
// @Success 200 {object} InsightResponse
// @Router /api/ai/insights [post]
func (ctrl *InsightController) Generate(c *gin.Context) {
	if ctrl.service == nil {
		response.Error(c, http.StatusInternalServerError, "AI service not configured")
		return
	}

	var req InsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	insights, err := ctrl.service.Generate(c.Request.Context(), req.UserID, req.Type)
	if err != nil {
		slog.Error("insight generation failed", "user_id", req.UserID, "error", err)
		response.FromError(c, err, "Failed to generate insights")
		return
	}
	c.JSON(http.StatusOK, InsightResponse{Insights: insights})
}
