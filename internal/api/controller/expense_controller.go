package controller

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pranit96/life.me/internal/api/response"
	"github.com/pranit96/life.me/internal/service"
)

type ExpenseController struct {
	service *service.ExpenseService
}

func NewExpenseController(s *service.ExpenseService) *ExpenseController {
	return &ExpenseController{service: s}
}

type AddExpenseRequest struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"` // YYYY-MM-DD; defaults to today
}

// List returns the user's expenses, newest spend first.
// @Summary List expenses
// @Tags Expenses
// @Produce json
// @Param userId path string true "user ID"
// @Param limit query int false "max rows, default 50"
// @Success 200 {array} model.Expense
// @Router /api/expenses/{userId} [get]
func (ctrl *ExpenseController) List(c *gin.Context) {
	if ctrl.service == nil {
		response.Error(c, http.StatusInternalServerError, "Database not configured")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	expenses, err := ctrl.service.List(c.Request.Context(), c.Param("userId"), limit)
	if err != nil {
		slog.Error("expense list failed", "user_id", c.Param("userId"), "error", err)
		response.FromError(c, err, "Failed to fetch expenses")
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// Add records a new expense. An empty category is filled in by the AI
// categorizer when a provider is configured.
// @Summary Add an expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param userId path string true "user ID"
// @Param request body AddExpenseRequest true "expense payload"
// @Success 200 {object} model.Expense
// @Router /api/expenses/{userId} [post]
func (ctrl *ExpenseController) Add(c *gin.Context) {
	if ctrl.service == nil {
		response.Error(c, http.StatusInternalServerError, "Database not configured")
		return
	}

	var req AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	expense, err := ctrl.service.Add(c.Request.Context(), c.Param("userId"), service.ExpenseInput{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		slog.Error("expense add failed", "user_id", c.Param("userId"), "error", err)
		response.FromError(c, err, "Failed to add expense")
		return
	}
	c.JSON(http.StatusOK, expense)
}
