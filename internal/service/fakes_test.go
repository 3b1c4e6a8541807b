package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pranit96/life.me/internal/model"
	"github.com/pranit96/life.me/internal/repository"
)

type fakeExpenseRepo struct {
	expenses []model.Expense
	err      error
}

func (f *fakeExpenseRepo) Create(_ context.Context, expense *model.Expense) error {
	if f.err != nil {
		return f.err
	}
	f.expenses = append(f.expenses, *expense)
	return nil
}

func (f *fakeExpenseRepo) ListByUser(_ context.Context, userID string, limit int) ([]model.Expense, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit <= 0 {
		limit = repository.DefaultExpenseLimit
	}
	var out []model.Expense
	for _, e := range f.expenses {
		if e.UserID == userID && len(out) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeGoalRepo struct {
	goals map[string]model.Goal
	err   error
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[string]model.Goal)}
}

func (f *fakeGoalRepo) Create(_ context.Context, goal *model.Goal) error {
	if f.err != nil {
		return f.err
	}
	goal.CreatedAt = time.Now()
	goal.UpdatedAt = goal.CreatedAt
	f.goals[goal.ID] = *goal
	return nil
}

func (f *fakeGoalRepo) ListByUser(_ context.Context, userID string) ([]model.Goal, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Goal
	for _, g := range f.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGoalRepo) GetByID(_ context.Context, goalID string) (*model.Goal, error) {
	if f.err != nil {
		return nil, f.err
	}
	g, ok := f.goals[goalID]
	if !ok {
		return nil, fmt.Errorf("%w: goal %s", model.ErrNotFound, goalID)
	}
	return &g, nil
}

func (f *fakeGoalRepo) Update(_ context.Context, goalID string, patch model.GoalPatch) (*model.Goal, error) {
	if f.err != nil {
		return nil, f.err
	}
	g, ok := f.goals[goalID]
	if !ok {
		return nil, fmt.Errorf("%w: goal %s", model.ErrNotFound, goalID)
	}
	if patch.CurrentAmount != nil {
		g.CurrentAmount = *patch.CurrentAmount
	}
	if patch.Status != nil {
		g.Status = *patch.Status
	}
	if patch.AIInsights != nil {
		g.AIInsights = *patch.AIInsights
	}
	g.UpdatedAt = time.Now()
	f.goals[goalID] = g
	return &g, nil
}

type fakeUserRepo struct {
	users map[string]model.User // keyed by telegram ID
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]model.User)}
}

func (f *fakeUserRepo) Upsert(_ context.Context, telegramID string, profile model.UserProfile) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[telegramID]
	if !ok {
		user = model.User{
			ID:         "user-" + telegramID,
			TelegramID: telegramID,
			CreatedAt:  time.Now(),
		}
	}
	user.Username = profile.Username
	user.FirstName = profile.FirstName
	user.LastName = profile.LastName
	f.users[telegramID] = user
	return &user, nil
}

func (f *fakeUserRepo) GetByTelegramID(_ context.Context, telegramID string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[telegramID]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", model.ErrNotFound, telegramID)
	}
	return &user, nil
}

type fakeProvider struct {
	goalInsight     string
	spendingInsight string
	category        string

	goalCalls     int
	spendingCalls int
	categoryCalls int
}

func (f *fakeProvider) GenerateGoalInsights(_ context.Context, _ model.Goal, _ []model.Expense) string {
	f.goalCalls++
	return f.goalInsight
}

func (f *fakeProvider) GenerateSpendingInsights(_ context.Context, _ []model.Expense) string {
	f.spendingCalls++
	return f.spendingInsight
}

func (f *fakeProvider) CategorizeExpense(_ context.Context, _ string, _ float64) string {
	f.categoryCalls++
	return f.category
}
