package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pranit96/life.me/internal/model"
)

// GoalRepo persists savings goals.
type GoalRepo interface {
	Create(ctx context.Context, goal *model.Goal) error

	// ListByUser returns goals newest first.
	ListByUser(ctx context.Context, userID string) ([]model.Goal, error)

	GetByID(ctx context.Context, goalID string) (*model.Goal, error)

	// Update applies the non-nil patch fields and refreshes updated_at.
	// Returns model.ErrNotFound when no goal matches.
	Update(ctx context.Context, goalID string, patch model.GoalPatch) (*model.Goal, error)
}

type goalRepo struct {
	db *gorm.DB
}

func NewGoalRepo(db *gorm.DB) GoalRepo {
	return &goalRepo{db: db}
}

func (r *goalRepo) Create(ctx context.Context, goal *model.Goal) error {
	if err := r.db.WithContext(ctx).Create(goal).Error; err != nil {
		return persistence("create goal", err)
	}
	return nil
}

func (r *goalRepo) ListByUser(ctx context.Context, userID string) ([]model.Goal, error) {
	var goals []model.Goal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	if err != nil {
		return nil, persistence("list goals", err)
	}
	return goals, nil
}

func (r *goalRepo) GetByID(ctx context.Context, goalID string) (*model.Goal, error) {
	var goal model.Goal
	err := r.db.WithContext(ctx).Where("id = ?", goalID).First(&goal).Error
	if err != nil {
		return nil, notFoundOr("get goal", err)
	}
	return &goal, nil
}

func (r *goalRepo) Update(ctx context.Context, goalID string, patch model.GoalPatch) (*model.Goal, error) {
	// Column names are fixed here; the patch carries values only.
	updates := map[string]any{"updated_at": time.Now()}
	if patch.CurrentAmount != nil {
		updates["current_amount"] = *patch.CurrentAmount
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.AIInsights != nil {
		updates["ai_insights"] = *patch.AIInsights
	}

	tx := r.db.WithContext(ctx).Model(&model.Goal{}).Where("id = ?", goalID).Updates(updates)
	if tx.Error != nil {
		return nil, persistence("update goal", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, notFoundOr("update goal", gorm.ErrRecordNotFound)
	}

	return r.GetByID(ctx, goalID)
}
