package controller

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pranit96/life.me/internal/api/response"
	"github.com/pranit96/life.me/internal/model"
	"github.com/pranit96/life.me/internal/service"
)

type GoalController struct {
	service *service.GoalService
}

func NewGoalController(s *service.GoalService) *GoalController {
	return &GoalController{service: s}
}

type CreateGoalRequest struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description"`
	TargetAmount  float64 `json:"targetAmount" binding:"required"`
	CurrentAmount float64 `json:"currentAmount"`
	Category      string  `json:"category"`
	Deadline      string  `json:"deadline"` // YYYY-MM-DD
	Status        string  `json:"status"`
}

// List returns the user's goals, newest first.
// @Summary List goals
// @Tags Goals
// @Produce json
// @Param userId path string true "user ID"
// @Success 200 {array} model.Goal
// @Router /api/goals/{userId} [get]
func (ctrl *GoalController) List(c *gin.Context) {
	if ctrl.service == nil {
		response.Error(c, http.StatusInternalServerError, "Database not configured")
		return
	}

	goals, err := ctrl.service.List(c.Request.Context(), c.Param("userId"))
	if err != nil {
		slog.Error("goal list failed", "user_id", c.Param("userId"), "error", err)
		response.FromError(c, err, "Failed to fetch goals")
		return
	}
	c.JSON(http.StatusOK, goals)
}

// Create inserts a goal and kicks off best-effort AI insight population in
// the background. The response never waits on the provider.
// @Summary Create a goal
// @Tags Goals
// @Accept json
// @Produce json
// @Param userId path string true "user ID"
// @Param request body CreateGoalRequest true "goal payload"
// @Success 200 {object} model.Goal
// @Router /api/goals/{userId} [post]
func (ctrl *GoalController) Create(c *gin.Context) {
	if ctrl.service == nil {
		response.Error(c, http.StatusInternalServerError, "Database not configured")
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var deadline time.Time
	if req.Deadline != "" {
		parsed, err := time.Parse("2006-01-02", req.Deadline)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid deadline format, expected YYYY-MM-DD")
			return
		}
		deadline = parsed
	}

	goal, err := ctrl.service.Create(c.Request.Context(), c.Param("userId"), service.GoalInput{
		Title:         req.Title,
		Description:   req.Description,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Category:      req.Category,
		Deadline:      deadline,
		Status:        req.Status,
	})
	if err != nil {
		slog.Error("goal create failed", "user_id", c.Param("userId"), "error", err)
		response.FromError(c, err, "Failed to create goal")
		return
	}
	c.JSON(http.StatusOK, goal)
}

// Update applies a typed partial update (currentAmount, status, aiInsights).
// @Summary Update a goal
// @Tags Goals
// @Accept json
// @Produce json
// @Param userId path string true "user ID"
// @Param goalId path string true "goal ID"
// @Param request body model.GoalPatch true "fields to change"
// @Success 200 {object} model.Goal
// @Router /api/goals/{userId}/{goalId} [patch]
func (ctrl *GoalController) Update(c *gin.Context) {
	if ctrl.service == nil {
		response.Error(c, http.StatusInternalServerError, "Database not configured")
		return
	}

	var patch model.GoalPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	goal, err := ctrl.service.Update(c.Request.Context(), c.Param("goalId"), patch)
	if err != nil {
		slog.Error("goal update failed", "goal_id", c.Param("goalId"), "error", err)
		response.FromError(c, err, "Failed to update goal")
		return
	}
	c.JSON(http.StatusOK, goal)
}
