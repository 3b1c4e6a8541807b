package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pranit96/life.me/internal/api/response"
	"github.com/pranit96/life.me/internal/infrastructure/database"
	"github.com/pranit96/life.me/internal/repository"
)

// DatabaseController exposes the schema init endpoint and the raw query
// passthrough. Both are internal plumbing: they sit behind the JWT
// middleware and are not part of the public client contract.
type DatabaseController struct {
	db  *gorm.DB
	raw repository.RawRepo
}

func NewDatabaseController(db *gorm.DB, raw repository.RawRepo) *DatabaseController {
	return &DatabaseController{db: db, raw: raw}
}

type QueryRequest struct {
	Query  string `json:"query" binding:"required"`
	Params []any  `json:"params"`
}

// Init idempotently creates the tables and indexes.
// @Summary Initialize the database schema
// @Tags Database
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/database/init [post]
func (ctrl *DatabaseController) Init(c *gin.Context) {
	if ctrl.db == nil {
		response.Error(c, http.StatusInternalServerError,
			"Database URL not configured. Please set LIFEME_DATABASE_DSN.")
		return
	}

	if err := database.Migrate(ctrl.db.WithContext(c.Request.Context())); err != nil {
		slog.Error("database init failed", "error", err)
		response.Error(c, http.StatusInternalServerError, "Database initialization failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Database initialized successfully"})
}

// Query runs a parameterized statement and returns the rows.
// @Summary Execute a raw query (internal)
// @Tags Database
// @Accept json
// @Produce json
// @Param request body QueryRequest true "query and params"
// @Success 200 {object} map[string]any
// @Router /api/database/query [post]
func (ctrl *DatabaseController) Query(c *gin.Context) {
	if ctrl.raw == nil {
		response.Error(c, http.StatusInternalServerError, "Database not configured")
		return
	}

	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	rows, err := ctrl.raw.Execute(c.Request.Context(), req.Query, req.Params)
	if err != nil {
		slog.Error("raw query failed", "error", err)
		response.FromError(c, err, "Query failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}
