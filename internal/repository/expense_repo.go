package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pranit96/life.me/internal/model"
)

// DefaultExpenseLimit bounds list reads when the caller does not say.
const DefaultExpenseLimit = 50

// ExpenseRepo persists append-only spend records.
type ExpenseRepo interface {
	Create(ctx context.Context, expense *model.Expense) error

	// ListByUser returns expenses newest first (spend date, then creation
	// time), truncated to limit. limit <= 0 means DefaultExpenseLimit.
	ListByUser(ctx context.Context, userID string, limit int) ([]model.Expense, error)
}

type expenseRepo struct {
	db *gorm.DB
}

func NewExpenseRepo(db *gorm.DB) ExpenseRepo {
	return &expenseRepo{db: db}
}

func (r *expenseRepo) Create(ctx context.Context, expense *model.Expense) error {
	if err := r.db.WithContext(ctx).Create(expense).Error; err != nil {
		return persistence("create expense", err)
	}
	return nil
}

func (r *expenseRepo) ListByUser(ctx context.Context, userID string, limit int) ([]model.Expense, error) {
	if limit <= 0 {
		limit = DefaultExpenseLimit
	}

	var expenses []model.Expense
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&expenses).Error
	if err != nil {
		return nil, persistence("list expenses", err)
	}
	return expenses, nil
}
