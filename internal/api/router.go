package api

import (
	"github.com/gin-gonic/gin"

	"github.com/pranit96/life.me/internal/api/controller"
	"github.com/pranit96/life.me/internal/api/middleware"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth      *controller.AuthController
	Expense   *controller.ExpenseController
	Goal      *controller.GoalController
	Insight   *controller.InsightController
	Database  *controller.DatabaseController
	Analytics *controller.AnalyticsController
}

// RegisterRoutes wires up all endpoints. The database group is internal
// plumbing and sits behind the JWT issued at login; everything else keys
// on the user ID in the path.
func RegisterRoutes(r *gin.Engine, ctrls Controllers, jwtSecret string) {
	r.Use(middleware.Cors())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/login", ctrls.Auth.Login)

		api.GET("/expenses/:userId", ctrls.Expense.List)
		api.POST("/expenses/:userId", ctrls.Expense.Add)

		api.GET("/goals/:userId", ctrls.Goal.List)
		api.POST("/goals/:userId", ctrls.Goal.Create)
		api.PATCH("/goals/:userId/:goalId", ctrls.Goal.Update)

		api.POST("/ai/insights", ctrls.Insight.Generate)

		api.GET("/analytics/:userId", ctrls.Analytics.Snapshot)
	}

	internal := r.Group("/api/database")
	internal.Use(middleware.JWTAuth(jwtSecret))
	{
		internal.POST("/init", ctrls.Database.Init)
		internal.POST("/query", ctrls.Database.Query)
	}
}
