package application

import "time"

type SubmitInput struct {
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	BusinessName    *string `json:"business_name"`
	ServiceInterest string  `json:"service_interest"`
	FundingAmount   *string `json:"funding_amount"`
	TimeInBusiness  *string `json:"time_in_business"`
}

// UpdateInput carries the two mutable fields; nil means "leave as is".
type UpdateInput struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

type ApplicationDTO struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	BusinessName    *string   `json:"business_name"`
	ServiceInterest string    `json:"service_interest"`
	FundingAmount   *string   `json:"funding_amount"`
	TimeInBusiness  *string   `json:"time_in_business"`
	SubmissionDate  time.Time `json:"submission_date"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes"`
}

type StatsDTO struct {
	TotalApplications     int64 `json:"total_applications"`
	PendingApplications   int64 `json:"pending_applications"`
	QualifiedApplications int64 `json:"qualified_applications"`
	ApprovedApplications  int64 `json:"approved_applications"`
	RecentApplications7d  int64 `json:"recent_applications_7_days"`
}
