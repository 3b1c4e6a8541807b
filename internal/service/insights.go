package service

import (
	"context"
	"fmt"

	"github.com/pranit96/life.me/internal/infrastructure/llm"
	"github.com/pranit96/life.me/internal/model"
	"github.com/pranit96/life.me/internal/repository"
)

// Insight request types accepted by Generate.
const (
	InsightTypeSpending = "spending"
)

// NoInsightForType is returned for insight types the service does not
// generate. It is a normal payload, not an error.
const NoInsightForType = "No insights available for this type."

// InsightService orchestrates on-demand insight generation over the user's
// recent expenses.
type InsightService struct {
	expenses repository.ExpenseRepo
	ai       llm.Provider
}

func NewInsightService(expenses repository.ExpenseRepo, ai llm.Provider) *InsightService {
	return &InsightService{expenses: expenses, ai: ai}
}

// Generate produces insight text for the given type. A persistence failure
// is an error; a provider failure is not, the llm layer already degraded it
// to fallback text.
func (s *InsightService) Generate(ctx context.Context, userID, insightType string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("%w: user ID is required", model.ErrValidation)
	}
	if s.ai == nil {
		return "", fmt.Errorf("AI provider not configured")
	}

	expenses, err := s.expenses.ListByUser(ctx, userID, repository.DefaultExpenseLimit)
	if err != nil {
		return "", err
	}

	switch insightType {
	case InsightTypeSpending:
		return s.ai.GenerateSpendingInsights(ctx, expenses), nil
	default:
		return NoInsightForType, nil
	}
}
