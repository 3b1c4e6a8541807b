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

// insightTimeout bounds the background insight population kicked off after
// goal creation. The request context cannot be reused there because it dies
// with the HTTP response.
const insightTimeout = 15 * time.Second

// GoalInput carries caller-supplied fields for a new goal. CurrentAmount
// and Status are optional and default to 0 and "active".
type GoalInput struct {
	Title         string
	Description   string
	TargetAmount  float64
	CurrentAmount float64
	Category      string
	Deadline      time.Time
	Status        string
}

// GoalService owns goal CRUD plus the best-effort AI insight population
// that follows a create. ai may be nil when the provider is unconfigured.
type GoalService struct {
	goals    repository.GoalRepo
	expenses repository.ExpenseRepo
	ai       llm.Provider
}

func NewGoalService(goals repository.GoalRepo, expenses repository.ExpenseRepo, ai llm.Provider) *GoalService {
	return &GoalService{goals: goals, expenses: expenses, ai: ai}
}

// Create validates, defaults and inserts a new goal. When the AI provider
// is configured, insight generation runs in the background afterwards;
// a provider outage never fails or delays the create itself.
func (s *GoalService) Create(ctx context.Context, userID string, input GoalInput) (*model.Goal, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", model.ErrValidation)
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", model.ErrValidation)
	}
	if input.TargetAmount <= 0 {
		return nil, fmt.Errorf("%w: target amount must be positive", model.ErrValidation)
	}
	if input.CurrentAmount < 0 {
		return nil, fmt.Errorf("%w: current amount must be non-negative", model.ErrValidation)
	}

	status := input.Status
	if status == "" {
		status = model.GoalStatusActive
	}
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("%w: generate goal id: %v", model.ErrPersistence, err)
	}

	goal := &model.Goal{
		ID:            id.String(),
		UserID:        userID,
		Title:         input.Title,
		Description:   input.Description,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
		Category:      input.Category,
		Deadline:      input.Deadline,
		Status:        status,
	}
	if err := s.goals.Create(ctx, goal); err != nil {
		return nil, err
	}

	if s.ai != nil {
		go s.populateInsights(*goal)
	}

	return goal, nil
}

// populateInsights generates advice for a fresh goal and patches it in.
// Runs detached from the request with its own deadline.
func (s *GoalService) populateInsights(goal model.Goal) {
	ctx, cancel := context.WithTimeout(context.Background(), insightTimeout)
	defer cancel()

	expenses, err := s.expenses.ListByUser(ctx, goal.UserID, 20)
	if err != nil {
		slog.Error("insight population: expense fetch failed", "goal_id", goal.ID, "error", err)
		return
	}

	insights := s.ai.GenerateGoalInsights(ctx, goal, expenses)
	if _, err := s.goals.Update(ctx, goal.ID, model.GoalPatch{AIInsights: &insights}); err != nil {
		slog.Error("insight population: goal patch failed", "goal_id", goal.ID, "error", err)
	}
}

// List returns the user's goals, newest first.
func (s *GoalService) List(ctx context.Context, userID string) ([]model.Goal, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", model.ErrValidation)
	}
	return s.goals.ListByUser(ctx, userID)
}

// Update applies a typed partial update to a goal.
func (s *GoalService) Update(ctx context.Context, goalID string, patch model.GoalPatch) (*model.Goal, error) {
	if goalID == "" {
		return nil, fmt.Errorf("%w: goal ID is required", model.ErrValidation)
	}
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: empty update", model.ErrValidation)
	}
	if patch.CurrentAmount != nil && *patch.CurrentAmount < 0 {
		return nil, fmt.Errorf("%w: current amount must be non-negative", model.ErrValidation)
	}
	if patch.Status != nil {
		if err := validateStatus(*patch.Status); err != nil {
			return nil, err
		}
	}
	return s.goals.Update(ctx, goalID, patch)
}

func validateStatus(status string) error {
	switch status {
	case model.GoalStatusActive, model.GoalStatusCompleted, model.GoalStatusPaused:
		return nil
	}
	return fmt.Errorf("%w: unknown goal status %q", model.ErrValidation, status)
}
