package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pranit96/life.me/internal/model"
	"github.com/pranit96/life.me/internal/repository"
)

// AnalyticsService derives the analytics snapshot from a user's current
// expense and goal collections. Nothing is cached; every call recomputes
// from a fresh read.
type AnalyticsService struct {
	expenses repository.ExpenseRepo
	goals    repository.GoalRepo
}

func NewAnalyticsService(expenses repository.ExpenseRepo, goals repository.GoalRepo) *AnalyticsService {
	return &AnalyticsService{expenses: expenses, goals: goals}
}

// Snapshot fetches expenses and goals concurrently and aggregates them.
// The two reads are independent entities, so ordering between them does
// not matter; the join waits for both.
func (s *AnalyticsService) Snapshot(ctx context.Context, userID string) (model.Analytics, error) {
	if userID == "" {
		return model.Analytics{}, fmt.Errorf("%w: user ID is required", model.ErrValidation)
	}

	var (
		expenses []model.Expense
		goals    []model.Goal
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = s.expenses.ListByUser(ctx, userID, repository.DefaultExpenseLimit)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = s.goals.ListByUser(ctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Analytics{}, err
	}

	return Compute(expenses, goals), nil
}

// Compute aggregates totals, the current calendar month's subtotal, the
// per-category breakdown and goal progress. Pure and side-effect free.
func Compute(expenses []model.Expense, goals []model.Goal) model.Analytics {
	return computeAt(time.Now(), expenses, goals)
}

func computeAt(now time.Time, expenses []model.Expense, goals []model.Goal) model.Analytics {
	a := model.Analytics{
		CategoryBreakdown: make(map[string]float64),
		ExpenseCount:      len(expenses),
	}

	for _, e := range expenses {
		a.TotalExpenses += e.Amount
		a.CategoryBreakdown[e.Category] += e.Amount
		if e.Date.Year() == now.Year() && e.Date.Month() == now.Month() {
			a.MonthlyExpenses += e.Amount
		}
	}

	// Goal progress is the mean of current/target ratios as a percentage.
	// A goal with a non-positive target contributes 0 but stays in the
	// denominator, so one bad row dampens the average instead of skewing
	// it or dividing by zero.
	var ratioSum float64
	for _, g := range goals {
		if g.TargetAmount > 0 {
			ratioSum += g.CurrentAmount / g.TargetAmount
		}
		switch g.Status {
		case model.GoalStatusActive:
			a.ActiveGoals++
		case model.GoalStatusCompleted:
			a.CompletedGoals++
		}
	}
	if len(goals) > 0 {
		a.GoalProgress = ratioSum / float64(len(goals)) * 100
	}

	return a
}
