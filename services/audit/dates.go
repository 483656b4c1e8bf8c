package audit

import (
	"context"
	"fmt"
	"time"

	"innsight/models"
)

// checkDateConsistency flags inverted stay intervals, dates far outside the
// plausible horizon, and same-day check-in/check-out stays.
func (s *DefaultAuditService) checkDateConsistency(_ context.Context, snap *snapshot) ([]models.Issue, error) {
	now := time.Now()
	pastHorizon := now.AddDate(-s.Limits.PastHorizonYears, 0, 0)
	futureHorizon := now.AddDate(s.Limits.FutureHorizonYears, 0, 0)

	var issues []models.Issue
	for _, b := range snap.bookings {
		if !b.CheckOut.After(b.CheckIn) {
			issues = append(issues, models.Issue{
				Type:     models.IssueTypeError,
				Severity: models.SeverityCritical,
				Category: models.CategoryDateConsistency,
				Description: fmt.Sprintf("check-out (%s) is not after check-in (%s)",
					b.CheckOut.Format("2006-01-02"), b.CheckIn.Format("2006-01-02")),
				BookingID:    b.ID,
				PropertyID:   b.PropertyID,
				SuggestedFix: "Correct the stay interval so the check-out date follows the check-in date",
			})
			continue
		}

		if b.CheckIn.Before(pastHorizon) {
			issues = append(issues, models.Issue{
				Type:     models.IssueTypeWarning,
				Severity: models.SeverityMedium,
				Category: models.CategoryDateConsistency,
				Description: fmt.Sprintf("check-in %s is more than %d years in the past",
					b.CheckIn.Format("2006-01-02"), s.Limits.PastHorizonYears),
				BookingID:  b.ID,
				PropertyID: b.PropertyID,
			})
		} else if b.CheckIn.After(futureHorizon) {
			issues = append(issues, models.Issue{
				Type:     models.IssueTypeWarning,
				Severity: models.SeverityMedium,
				Category: models.CategoryDateConsistency,
				Description: fmt.Sprintf("check-in %s is more than %d years in the future",
					b.CheckIn.Format("2006-01-02"), s.Limits.FutureHorizonYears),
				BookingID:  b.ID,
				PropertyID: b.PropertyID,
			})
		} else if b.CheckOut.After(futureHorizon) {
			// The check-in alone can sit inside the horizon while the stay
			// runs past it; the check-out needs its own comparison.
			issues = append(issues, models.Issue{
				Type:     models.IssueTypeWarning,
				Severity: models.SeverityMedium,
				Category: models.CategoryDateConsistency,
				Description: fmt.Sprintf("check-out %s is more than %d years in the future",
					b.CheckOut.Format("2006-01-02"), s.Limits.FutureHorizonYears),
				BookingID:  b.ID,
				PropertyID: b.PropertyID,
			})
		}

		if sameCalendarDay(b.CheckIn, b.CheckOut) {
			issues = append(issues, models.Issue{
				Type:        models.IssueTypeInfo,
				Severity:    models.SeverityLow,
				Category:    models.CategoryDateConsistency,
				Description: "check-in and check-out fall on the same calendar day",
				BookingID:   b.ID,
				PropertyID:  b.PropertyID,
			})
		}
	}
	return issues, nil
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
