package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pranit96/life.me/internal/model"
)

// UserRepo persists identity records keyed on Telegram ID.
type UserRepo interface {
	// Upsert inserts a user or, when the Telegram ID already exists,
	// overwrites the profile fields. The stored row is returned either way.
	Upsert(ctx context.Context, telegramID string, profile model.UserProfile) (*model.User, error)

	// GetByTelegramID returns the user or model.ErrNotFound.
	GetByTelegramID(ctx context.Context, telegramID string) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) Upsert(ctx context.Context, telegramID string, profile model.UserProfile) (*model.User, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, persistence("generate user id", err)
	}

	user := model.User{
		ID:         id.String(),
		TelegramID: telegramID,
		Username:   profile.Username,
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
	}

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "telegram_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "first_name", "last_name"}),
	}).Create(&user).Error
	if err != nil {
		return nil, persistence("upsert user", err)
	}

	// On conflict the generated ID was discarded; read back the stored row
	// so the caller always sees the canonical record.
	return r.GetByTelegramID(ctx, telegramID)
}

func (r *userRepo) GetByTelegramID(ctx context.Context, telegramID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("telegram_id = ?", telegramID).First(&user).Error
	if err != nil {
		return nil, notFoundOr("get user", err)
	}
	return &user, nil
}
