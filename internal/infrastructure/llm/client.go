package llm

import (
	"context"

	"github.com/pranit96/life.me/internal/model"
)

// Provider generates short financial guidance from domain data. All methods
// are best-effort: on any provider failure they return a fixed fallback
// string instead of an error, so a caller's primary operation is never
// blocked by a third-party outage.
type Provider interface {
	// GenerateGoalInsights produces advice for a goal given recent spending.
	GenerateGoalInsights(ctx context.Context, goal model.Goal, expenses []model.Expense) string

	// GenerateSpendingInsights produces advice from overall spending patterns.
	GenerateSpendingInsights(ctx context.Context, expenses []model.Expense) string

	// CategorizeExpense classifies a description/amount pair into one of
	// the fixed category labels.
	CategorizeExpense(ctx context.Context, description string, amount float64) string
}
