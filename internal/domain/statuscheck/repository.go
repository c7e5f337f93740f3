package statuscheck

import "context"

type Repository interface {
	Create(ctx context.Context, s *StatusCheck) error
	List(ctx context.Context, limit int) ([]StatusCheck, error)
}
