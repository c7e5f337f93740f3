package appmock

import (
	"context"

	domain "moneymornings-backend/internal/domain/application"

	"gorm.io/gorm"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, a *domain.Application) error
	GetByAppIDFn    func(ctx context.Context, appID string) (*domain.Application, error)
	ListFn          func(ctx context.Context, f domain.ListFilter) ([]domain.Application, error)
	UpdateByAppIDFn func(ctx context.Context, appID string, fields map[string]any) error
	CountFn         func(ctx context.Context, f domain.CountFilter) (int64, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByAppID(ctx context.Context, appID string) (*domain.Application, error) {
	if m.GetByAppIDFn != nil {
		return m.GetByAppIDFn(ctx, appID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Application, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) UpdateByAppID(ctx context.Context, appID string, fields map[string]any) error {
	if m.UpdateByAppIDFn != nil {
		return m.UpdateByAppIDFn(ctx, appID, fields)
	}
	return nil
}

func (m *Repo) Count(ctx context.Context, f domain.CountFilter) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx, f)
	}
	return 0, nil
}
