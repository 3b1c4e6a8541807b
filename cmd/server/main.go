package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pranit96/life.me/internal/api"
	"github.com/pranit96/life.me/internal/api/controller"
	"github.com/pranit96/life.me/internal/config"
	"github.com/pranit96/life.me/internal/infrastructure/database"
	"github.com/pranit96/life.me/internal/infrastructure/llm"
	"github.com/pranit96/life.me/internal/repository"
	"github.com/pranit96/life.me/internal/service"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Missing database or AI configuration degrades the matching features
	// instead of stopping the process.
	var db *gorm.DB
	if cfg.DatabaseConfigured() {
		db, err = database.Connect(cfg.Database.DSN)
		if err != nil {
			slog.Warn("database connection failed, persistence endpoints disabled", "error", err)
			db = nil
		} else if err := database.Migrate(db); err != nil {
			slog.Warn("startup migration failed, call /api/database/init to retry", "error", err)
		}
	} else {
		slog.Warn("database DSN not set, skipping init; persistence endpoints disabled")
	}

	var aiProvider llm.Provider
	if cfg.AIConfigured() {
		aiProvider = llm.NewGroqClient(
			cfg.Groq.APIKey,
			cfg.Groq.BaseURL,
			cfg.Groq.InsightModel,
			cfg.Groq.CategorizeModel,
			time.Duration(cfg.Groq.RequestTimeoutSecs)*time.Second,
		)
	} else {
		slog.Warn("groq API key not set, AI insights disabled")
	}

	var (
		authSvc      *service.AuthService
		expenseSvc   *service.ExpenseService
		goalSvc      *service.GoalService
		insightSvc   *service.InsightService
		analyticsSvc *service.AnalyticsService
		rawRepo      repository.RawRepo
	)
	if db != nil {
		userRepo := repository.NewUserRepo(db)
		expenseRepo := repository.NewExpenseRepo(db)
		goalRepo := repository.NewGoalRepo(db)
		rawRepo = repository.NewRawRepo(db)

		authSvc = service.NewAuthService(userRepo, cfg.JWT)
		expenseSvc = service.NewExpenseService(expenseRepo, aiProvider)
		goalSvc = service.NewGoalService(goalRepo, expenseRepo, aiProvider)
		analyticsSvc = service.NewAnalyticsService(expenseRepo, goalRepo)
		if aiProvider != nil {
			insightSvc = service.NewInsightService(expenseRepo, aiProvider)
		}
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	api.RegisterRoutes(r, api.Controllers{
		Auth:      controller.NewAuthController(authSvc),
		Expense:   controller.NewExpenseController(expenseSvc),
		Goal:      controller.NewGoalController(goalSvc),
		Insight:   controller.NewInsightController(insightSvc),
		Database:  controller.NewDatabaseController(db, rawRepo),
		Analytics: controller.NewAnalyticsController(analyticsSvc),
	}, cfg.JWT.Secret)

	slog.Info("server starting", "port", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		slog.Error("server exited", "error", err)
	}
}
