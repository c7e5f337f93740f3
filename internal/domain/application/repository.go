package application

import (
	"context"
	"time"
)

type ListFilter struct {
	Status Status // empty = all statuses
	Limit  int
	Skip   int
}

type CountFilter struct {
	Status         Status    // empty = all statuses
	SubmittedSince time.Time // zero = no lower bound
}

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByAppID(ctx context.Context, appID string) (*Application, error)
	List(ctx context.Context, f ListFilter) ([]Application, error)
	UpdateByAppID(ctx context.Context, appID string, fields map[string]any) error
	Count(ctx context.Context, f CountFilter) (int64, error)
}
