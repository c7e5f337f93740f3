package notifier

import (
	"strings"
	"testing"
	"time"

	domain "moneymornings-backend/internal/domain/application"
)

func strptr(s string) *string { return &s }

func TestHumanizeSlug(t *testing.T) {
	cases := map[string]string{
		"business-funding":   "Business Funding",
		"credit-repair":      "Credit Repair",
		"consulting":         "Consulting",
		"real-estate-rental": "Real Estate Rental",
	}
	for in, want := range cases {
		if got := humanizeSlug(in); got != want {
			t.Fatalf("humanizeSlug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSubjectFor(t *testing.T) {
	a := domain.Application{FirstName: "Ann", LastName: "Lee"}
	if got := subjectFor(a); got != "New Application Submitted - Ann Lee" {
		t.Fatalf("subject = %q", got)
	}
}

func TestBodyFor_AllFields(t *testing.T) {
	a := domain.Application{
		AppID:           "abc-123",
		FirstName:       "Ann",
		LastName:        "Lee",
		Email:           "ann@x.com",
		Phone:           "555-0000",
		BusinessName:    strptr("Ann's Bakery"),
		ServiceInterest: "business-funding",
		FundingAmount:   strptr("$50,000"),
		TimeInBusiness:  strptr("2 years"),
		SubmissionDate:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Status:          domain.StatusPending,
	}
	body := bodyFor(a, "https://api.example.com")

	for _, want := range []string{
		"Name: Ann Lee",
		"Email: ann@x.com",
		"Business Name: Ann's Bakery",
		"Service Interest: Business Funding",
		"Funding Amount: $50,000",
		"Application ID: abc-123",
		"Status: pending",
		"Admin Dashboard: https://api.example.com/admin",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}

func TestBodyFor_MissingOptionals(t *testing.T) {
	a := domain.Application{
		FirstName:       "Ann",
		LastName:        "Lee",
		ServiceInterest: "consulting",
		Status:          domain.StatusPending,
	}
	body := bodyFor(a, "http://localhost:8080")

	if !strings.Contains(body, "Business Name: Not provided") {
		t.Fatalf("missing business-name placeholder:\n%s", body)
	}
	if !strings.Contains(body, "Funding Amount: Not specified") {
		t.Fatalf("missing funding placeholder:\n%s", body)
	}
	if !strings.Contains(body, "Time in Business: Not specified") {
		t.Fatalf("missing time-in-business placeholder:\n%s", body)
	}
}
