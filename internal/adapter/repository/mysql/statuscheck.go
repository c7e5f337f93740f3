package mysql

import (
	"context"

	scDomain "moneymornings-backend/internal/domain/statuscheck"

	"gorm.io/gorm"
)

type StatusCheckRepository struct{ db *gorm.DB }

func NewStatusCheckRepository(db *gorm.DB) *StatusCheckRepository {
	return &StatusCheckRepository{db: db}
}

func (r *StatusCheckRepository) Create(ctx context.Context, s *scDomain.StatusCheck) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StatusCheckRepository) List(ctx context.Context, limit int) ([]scDomain.StatusCheck, error) {
	var out []scDomain.StatusCheck
	res := r.db.WithContext(ctx).Limit(limit).Find(&out)
	return out, res.Error
}
