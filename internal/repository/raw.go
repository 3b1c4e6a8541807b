package repository

import (
	"context"

	"gorm.io/gorm"
)

// RawRepo executes parameterized SQL on behalf of the internal query
// passthrough endpoint. It owns no business logic and is not part of the
// public API surface.
type RawRepo interface {
	Execute(ctx context.Context, query string, params []any) ([]map[string]any, error)
}

type rawRepo struct {
	db *gorm.DB
}

func NewRawRepo(db *gorm.DB) RawRepo {
	return &rawRepo{db: db}
}

func (r *rawRepo) Execute(ctx context.Context, query string, params []any) ([]map[string]any, error) {
	rows := make([]map[string]any, 0)
	err := r.db.WithContext(ctx).Raw(query, params...).Scan(&rows).Error
	if err != nil {
		return nil, persistence("raw query", err)
	}
	return rows, nil
}
