package audit

import (
	"context"
	"fmt"
	"time"

	"innsight/models"
)

var validBookingStatuses = map[string]bool{
	models.BookingStatusPending:   true,
	models.BookingStatusConfirmed: true,
	models.BookingStatusCancelled: true,
	models.BookingStatusCompleted: true,
}

// checkStatusValidity flags unknown statuses, completed bookings that have not
// started yet, and pending bookings whose stay is long over.
func (s *DefaultAuditService) checkStatusValidity(_ context.Context, snap *snapshot) ([]models.Issue, error) {
	now := time.Now()
	staleCutoff := now.AddDate(0, 0, -s.Limits.StalePendingDays)

	var issues []models.Issue
	for _, b := range snap.bookings {
		if !validBookingStatuses[b.Status] {
			issues = append(issues, models.Issue{
				Type:         models.IssueTypeError,
				Severity:     models.SeverityHigh,
				Category:     models.CategoryStatusValidity,
				Description:  fmt.Sprintf("unknown booking status %q", b.Status),
				BookingID:    b.ID,
				PropertyID:   b.PropertyID,
				SuggestedFix: "Set the status to one of pending, confirmed, cancelled or completed",
			})
			continue
		}

		switch b.Status {
		case models.BookingStatusCompleted:
			if b.CheckIn.After(now) {
				issues = append(issues, models.Issue{
					Type:        models.IssueTypeWarning,
					Severity:    models.SeverityMedium,
					Category:    models.CategoryStatusValidity,
					Description: "booking is marked completed but its check-in is still in the future",
					BookingID:   b.ID,
					PropertyID:  b.PropertyID,
				})
			}
		case models.BookingStatusPending:
			if b.CheckOut.Before(staleCutoff) {
				issues = append(issues, models.Issue{
					Type:     models.IssueTypeWarning,
					Severity: models.SeverityMedium,
					Category: models.CategoryStatusValidity,
					Description: fmt.Sprintf("booking is still pending although its check-out passed more than %d days ago",
						s.Limits.StalePendingDays),
					BookingID:    b.ID,
					PropertyID:   b.PropertyID,
					SuggestedFix: "Confirm, complete or cancel the stale booking",
				})
			}
		}
	}
	return issues, nil
}
