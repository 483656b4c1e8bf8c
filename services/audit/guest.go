package audit

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"innsight/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// checkGuestData validates contact details and the guest count.
func (s *DefaultAuditService) checkGuestData(_ context.Context, snap *snapshot) ([]models.Issue, error) {
	var issues []models.Issue
	for _, b := range snap.bookings {
		name := strings.TrimSpace(b.GuestName)
		email := strings.TrimSpace(b.GuestEmail)

		if name == "" || email == "" {
			issues = append(issues, models.Issue{
				Type:         models.IssueTypeWarning,
				Severity:     models.SeverityMedium,
				Category:     models.CategoryGuestData,
				Description:  "booking is missing guest contact details (name or email)",
				BookingID:    b.ID,
				PropertyID:   b.PropertyID,
				SuggestedFix: "Collect the guest's name and email before the stay",
			})
		} else if !emailPattern.MatchString(email) {
			issues = append(issues, models.Issue{
				Type:        models.IssueTypeWarning,
				Severity:    models.SeverityLow,
				Category:    models.CategoryGuestData,
				Description: fmt.Sprintf("guest email %q does not look like a valid address", email),
				BookingID:   b.ID,
				PropertyID:  b.PropertyID,
			})
		}

		if b.Guests <= 0 || b.Guests > s.Limits.MaxGuests {
			issues = append(issues, models.Issue{
				Type:        models.IssueTypeWarning,
				Severity:    models.SeverityMedium,
				Category:    models.CategoryGuestData,
				Description: fmt.Sprintf("guest count %d is outside the plausible range of 1 to %d", b.Guests, s.Limits.MaxGuests),
				BookingID:   b.ID,
				PropertyID:  b.PropertyID,
			})
		}
	}
	return issues, nil
}
