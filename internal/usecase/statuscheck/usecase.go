package statuscheck

import (
	"context"
	"time"

	"moneymornings-backend/internal/domain/statuscheck"
	"moneymornings-backend/pkg/id"
)

const listLimit = 1000

type Usecase struct{ repo statuscheck.Repository }

func NewUsecase(r statuscheck.Repository) *Usecase { return &Usecase{repo: r} }

type CreateInput struct {
	ClientName string `json:"client_name"`
}

type StatusCheckDTO struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*StatusCheckDTO, error) {
	s := &statuscheck.StatusCheck{
		CheckID:    id.NewUUID(),
		ClientName: in.ClientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return &StatusCheckDTO{ID: s.CheckID, ClientName: s.ClientName, Timestamp: s.Timestamp}, nil
}

func (u *Usecase) List(ctx context.Context) ([]StatusCheckDTO, error) {
	checks, err := u.repo.List(ctx, listLimit)
	if err != nil {
		return nil, err
	}
	out := make([]StatusCheckDTO, 0, len(checks))
	for _, s := range checks {
		out = append(out, StatusCheckDTO{ID: s.CheckID, ClientName: s.ClientName, Timestamp: s.Timestamp})
	}
	return out, nil
}
