package mysql

import (
	"context"

	appDomain "moneymornings-backend/internal/domain/application"

	"gorm.io/gorm"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.Application) error {
	res := r.db.WithContext(ctx).Create(a)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return appDomain.ErrNotSaved
	}
	return nil
}

func (r *ApplicationRepository) GetByAppID(ctx context.Context, appID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).Where("app_id = ?", appID).First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *ApplicationRepository) List(ctx context.Context, f appDomain.ListFilter) ([]appDomain.Application, error) {
	q := r.db.WithContext(ctx).Model(&appDomain.Application{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var out []appDomain.Application
	res := q.Order("submission_date DESC, id DESC").
		Offset(f.Skip).
		Limit(f.Limit).
		Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) UpdateByAppID(ctx context.Context, appID string, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&appDomain.Application{}).
		Where("app_id = ?", appID).
		Updates(fields).Error
}

func (r *ApplicationRepository) Count(ctx context.Context, f appDomain.CountFilter) (int64, error) {
	q := r.db.WithContext(ctx).Model(&appDomain.Application{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if !f.SubmittedSince.IsZero() {
		q = q.Where("submission_date >= ?", f.SubmittedSince)
	}
	var n int64
	res := q.Count(&n)
	return n, res.Error
}
