package audit

import (
	"context"
	"fmt"
	"time"

	"innsight/models"
)

// checkBusinessRules flags stays below the minimum duration and bookings made
// unusually far in advance.
func (s *DefaultAuditService) checkBusinessRules(_ context.Context, snap *snapshot) ([]models.Issue, error) {
	advanceHorizon := time.Now().AddDate(s.Limits.AdvanceBookingYears, 0, 0)

	var issues []models.Issue
	for _, b := range snap.bookings {
		// Zero and negative durations are already critical findings in the
		// date module; only genuine sub-day stays belong here.
		if nights := b.Nights(); nights > 0 && nights < 1 {
			issues = append(issues, models.Issue{
				Type:        models.IssueTypeWarning,
				Severity:    models.SeverityMedium,
				Category:    models.CategoryBusinessRules,
				Description: fmt.Sprintf("stay lasts %.1f days, below the one-night minimum", nights),
				BookingID:   b.ID,
				PropertyID:  b.PropertyID,
			})
		}

		if b.CheckIn.After(advanceHorizon) {
			issues = append(issues, models.Issue{
				Type:     models.IssueTypeInfo,
				Severity: models.SeverityLow,
				Category: models.CategoryBusinessRules,
				Description: fmt.Sprintf("booking was made more than %d years ahead of the stay",
					s.Limits.AdvanceBookingYears),
				BookingID:  b.ID,
				PropertyID: b.PropertyID,
			})
		}
	}
	return issues, nil
}
