package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pranit96/life.me/internal/infrastructure/llm"
	"github.com/pranit96/life.me/internal/model"
	"github.com/pranit96/life.me/internal/repository"
)

// ExpenseInput carries caller-supplied fields for a new expense. Category
// may be empty, in which case the AI categorizer is consulted.
type ExpenseInput struct {
	Amount      float64
	Category    string
	Description string
	Date        time.Time
}

// ExpenseService owns the append-only expense flow. ai may be nil when the
// provider is unconfigured; categorization then falls back to the default
// bucket.
type ExpenseService struct {
	repo repository.ExpenseRepo
	ai   llm.Provider
}

func NewExpenseService(repo repository.ExpenseRepo, ai llm.Provider) *ExpenseService {
	return &ExpenseService{repo: repo, ai: ai}
}

// Add validates and inserts a new expense, returning the stored record with
// its server-assigned ID and creation time.
func (s *ExpenseService) Add(ctx context.Context, userID string, input ExpenseInput) (*model.Expense, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", model.ErrValidation)
	}
	if input.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must be non-negative", model.ErrValidation)
	}

	category := input.Category
	if category == "" {
		category = s.categorize(ctx, input.Description, input.Amount)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("%w: generate expense id: %v", model.ErrPersistence, err)
	}

	expense := &model.Expense{
		ID:          id.String(),
		UserID:      userID,
		Amount:      input.Amount,
		Category:    category,
		Description: input.Description,
		Date:        date,
	}
	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// List returns the user's expenses, newest spend first.
func (s *ExpenseService) List(ctx context.Context, userID string, limit int) ([]model.Expense, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", model.ErrValidation)
	}
	return s.repo.ListByUser(ctx, userID, limit)
}

// categorize is best-effort: no provider or an unusable reply both resolve
// to the default category rather than failing the insert.
func (s *ExpenseService) categorize(ctx context.Context, description string, amount float64) string {
	if s.ai == nil {
		return model.DefaultCategory
	}
	category := s.ai.CategorizeExpense(ctx, description, amount)
	slog.Debug("expense categorized", "category", category)
	return category
}
