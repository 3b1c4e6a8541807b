package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pranit96/life.me/internal/model"
)

// persistence wraps a store failure so callers can match model.ErrPersistence
// while the underlying detail stays available for server-side logs.
func persistence(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", model.ErrPersistence, op, err)
}

// notFoundOr converts gorm's record-not-found into the taxonomy sentinel
// and wraps anything else as a persistence failure.
func notFoundOr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", model.ErrNotFound, op)
	}
	return persistence(op, err)
}
