package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pranit96/life.me/internal/config"
	"github.com/pranit96/life.me/internal/model"
	"github.com/pranit96/life.me/internal/repository"
)

// AuthService handles Telegram-identity login. There is no password: the
// Telegram ID is the identity, and login is an upsert that refreshes the
// profile fields on every visit.
type AuthService struct {
	userRepo repository.UserRepo
	jwtCfg   config.JWTConfig
}

func NewAuthService(userRepo repository.UserRepo, jwtCfg config.JWTConfig) *AuthService {
	return &AuthService{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login validates the Telegram ID, upserts the user and issues a signed
// token for the internal endpoints. The token is empty when no JWT secret
// is configured.
func (s *AuthService) Login(ctx context.Context, telegramID string, profile model.UserProfile) (*model.User, string, error) {
	if err := ValidateTelegramID(telegramID); err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.Upsert(ctx, telegramID, profile)
	if err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		// A broken signing setup should not lock users out of their data.
		slog.Error("token issue failed", "user_id", user.ID, "error", err)
		token = ""
	}

	return user, token, nil
}

// GetUser looks a user up by Telegram ID.
func (s *AuthService) GetUser(ctx context.Context, telegramID string) (*model.User, error) {
	if err := ValidateTelegramID(telegramID); err != nil {
		return nil, err
	}
	return s.userRepo.GetByTelegramID(ctx, telegramID)
}

func (s *AuthService) issueToken(userID string) (string, error) {
	if s.jwtCfg.Secret == "" {
		return "", nil
	}

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour * time.Duration(s.jwtCfg.ExpireHours)).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.Secret))
}

// ValidateTelegramID requires a non-empty, purely numeric identifier.
func ValidateTelegramID(telegramID string) error {
	if telegramID == "" {
		return fmt.Errorf("%w: telegram ID is required", model.ErrValidation)
	}
	for _, r := range telegramID {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: invalid telegram ID format", model.ErrValidation)
		}
	}
	return nil
}
