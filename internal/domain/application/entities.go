package application

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusContacted Status = "contacted"
	StatusQualified Status = "qualified"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusContacted, StatusQualified, StatusApproved, StatusRejected:
		return true
	}
	return false
}

var (
	ErrNotFound      = errors.New("application not found")
	ErrEmptyUpdate   = errors.New("no update data provided")
	ErrInvalidStatus = errors.New("invalid status value")
	ErrNotSaved      = errors.New("application not saved")
)

type Application struct {
	ID              uint64    `gorm:"primaryKey;column:id" json:"-"`
	AppID           string    `gorm:"size:36;uniqueIndex:ux_applications_app_id;column:app_id" json:"id"`
	FirstName       string    `gorm:"size:100" json:"first_name"`
	LastName        string    `gorm:"size:100" json:"last_name"`
	Email           string    `gorm:"size:255" json:"email"`
	Phone           string    `gorm:"size:50" json:"phone"`
	BusinessName    *string   `gorm:"size:255" json:"business_name"`
	ServiceInterest string    `gorm:"size:100" json:"service_interest"`
	FundingAmount   *string   `gorm:"size:100" json:"funding_amount"`
	TimeInBusiness  *string   `gorm:"size:100" json:"time_in_business"`
	SubmissionDate  time.Time `gorm:"index:idx_applications_submission_date" json:"submission_date"`
	Status          Status    `gorm:"type:enum('pending','contacted','qualified','approved','rejected');default:'pending';index:idx_applications_status" json:"status"`
	Notes           *string   `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Application) TableName() string { return "applications" }
