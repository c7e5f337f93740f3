package application

import (
	"context"
	"errors"
	"time"

	"moneymornings-backend/internal/domain/application"
	"moneymornings-backend/pkg/id"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// Notifier accepts a stored application for out-of-band delivery.
// Enqueue must not block; delivery is at-most-once and its outcome
// never affects the submission result.
type Notifier interface {
	Enqueue(a application.Application)
}

type Usecase struct {
	repo     application.Repository
	notifier Notifier
	log      *zap.Logger
}

func NewUsecase(r application.Repository, n Notifier, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{repo: r, notifier: n, log: log}
}

func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*ApplicationDTO, error) {
	a := &application.Application{
		AppID:           id.NewUUID(),
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Phone:           in.Phone,
		BusinessName:    in.BusinessName,
		ServiceInterest: in.ServiceInterest,
		FundingAmount:   in.FundingAmount,
		TimeInBusiness:  in.TimeInBusiness,
		SubmissionDate:  time.Now().UTC(),
		Status:          application.StatusPending,
	}

	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	u.log.Info("new application submitted",
		zap.String("id", a.AppID),
		zap.String("email", a.Email))

	if u.notifier != nil {
		u.notifier.Enqueue(*a)
	}
	return toDTO(a), nil
}

func (u *Usecase) List(ctx context.Context, status string, limit, skip int) ([]ApplicationDTO, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if skip < 0 {
		skip = 0
	}

	apps, err := u.repo.List(ctx, application.ListFilter{
		Status: application.Status(status),
		Limit:  limit,
		Skip:   skip,
	})
	if err != nil {
		return nil, err
	}

	out := make([]ApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, *toDTO(&apps[i]))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, appID string) (*ApplicationDTO, error) {
	a, err := u.repo.GetByAppID(ctx, appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, application.ErrNotFound
		}
		return nil, err
	}
	return toDTO(a), nil
}

func (u *Usecase) Update(ctx context.Context, appID string, in UpdateInput) (*ApplicationDTO, error) {
	fields := map[string]any{}
	if in.Status != nil {
		if !application.Status(*in.Status).Valid() {
			return nil, application.ErrInvalidStatus
		}
		fields["status"] = *in.Status
	}
	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}
	if len(fields) == 0 {
		return nil, application.ErrEmptyUpdate
	}

	// Existence is checked here, not via affected-row counts: MySQL
	// reports zero affected rows for a value-identical write, which
	// would misread a repeat update as a missing record.
	if _, err := u.repo.GetByAppID(ctx, appID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, application.ErrNotFound
		}
		return nil, err
	}

	if err := u.repo.UpdateByAppID(ctx, appID, fields); err != nil {
		return nil, err
	}

	a, err := u.repo.GetByAppID(ctx, appID)
	if err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

func (u *Usecase) Stats(ctx context.Context) (*StatsDTO, error) {
	var (
		out StatsDTO
		err error
	)

	if out.TotalApplications, err = u.repo.Count(ctx, application.CountFilter{}); err != nil {
		return nil, err
	}
	if out.PendingApplications, err = u.repo.Count(ctx, application.CountFilter{Status: application.StatusPending}); err != nil {
		return nil, err
	}
	if out.QualifiedApplications, err = u.repo.Count(ctx, application.CountFilter{Status: application.StatusQualified}); err != nil {
		return nil, err
	}
	if out.ApprovedApplications, err = u.repo.Count(ctx, application.CountFilter{Status: application.StatusApproved}); err != nil {
		return nil, err
	}

	// Window opens at midnight UTC seven days back, not now-168h.
	since := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -7)
	if out.RecentApplications7d, err = u.repo.Count(ctx, application.CountFilter{SubmittedSince: since}); err != nil {
		return nil, err
	}
	return &out, nil
}

func toDTO(a *application.Application) *ApplicationDTO {
	return &ApplicationDTO{
		ID:              a.AppID,
		FirstName:       a.FirstName,
		LastName:        a.LastName,
		Email:           a.Email,
		Phone:           a.Phone,
		BusinessName:    a.BusinessName,
		ServiceInterest: a.ServiceInterest,
		FundingAmount:   a.FundingAmount,
		TimeInBusiness:  a.TimeInBusiness,
		SubmissionDate:  a.SubmissionDate,
		Status:          string(a.Status),
		Notes:           a.Notes,
	}
}
