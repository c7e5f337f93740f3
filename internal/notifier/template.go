package notifier

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"moneymornings-backend/internal/domain/application"
)

var titleCaser = cases.Title(language.English)

// humanizeSlug turns a category slug like "business-funding" into
// "Business Funding" for the email body.
func humanizeSlug(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "-", " "))
}

func orFallback(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

func subjectFor(a application.Application) string {
	return fmt.Sprintf("New Application Submitted - %s %s", a.FirstName, a.LastName)
}

func bodyFor(a application.Application, dashboardURL string) string {
	var b strings.Builder

	b.WriteString("New Money Mornings Empire Application Submitted!\n\n")

	b.WriteString("APPLICANT DETAILS:\n")
	b.WriteString("==================\n")
	fmt.Fprintf(&b, "Name: %s %s\n", a.FirstName, a.LastName)
	fmt.Fprintf(&b, "Email: %s\n", a.Email)
	fmt.Fprintf(&b, "Phone: %s\n\n", a.Phone)

	b.WriteString("BUSINESS DETAILS:\n")
	b.WriteString("=================\n")
	fmt.Fprintf(&b, "Business Name: %s\n", orFallback(a.BusinessName, "Not provided"))
	fmt.Fprintf(&b, "Service Interest: %s\n", humanizeSlug(a.ServiceInterest))
	fmt.Fprintf(&b, "Funding Amount: %s\n", orFallback(a.FundingAmount, "Not specified"))
	fmt.Fprintf(&b, "Time in Business: %s\n\n", orFallback(a.TimeInBusiness, "Not specified"))

	b.WriteString("SUBMISSION INFO:\n")
	b.WriteString("===============\n")
	fmt.Fprintf(&b, "Application ID: %s\n", a.AppID)
	fmt.Fprintf(&b, "Submitted: %s\n", a.SubmissionDate.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "Status: %s\n\n", a.Status)

	b.WriteString("NEXT STEPS:\n")
	b.WriteString("===========\n")
	b.WriteString("1. Review the application in your admin dashboard\n")
	b.WriteString("2. Contact the applicant within 24 hours\n")
	b.WriteString("3. Update the application status as needed\n\n")
	fmt.Fprintf(&b, "Admin Dashboard: %s/admin\n\n", dashboardURL)

	b.WriteString("Best regards,\nMoney Mornings Empire System\n")

	return b.String()
}
