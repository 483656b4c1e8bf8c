package audit

import (
	"context"
	"fmt"

	"innsight/models"
)

// requiredBookingFields must be present and non-null on every booking document.
var requiredBookingFields = []string{"propertyId", "dateFrom", "dateTo", "status"}

// checkRequiredFields walks the raw documents so that a field absent from the
// document and a field stored as null are reported as distinct defects.
func (s *DefaultAuditService) checkRequiredFields(_ context.Context, snap *snapshot) ([]models.Issue, error) {
	var issues []models.Issue
	for _, doc := range snap.raw {
		bookingID, _ := doc["id"].(string)
		propertyID, _ := doc["propertyId"].(string)

		for _, field := range requiredBookingFields {
			value, present := doc[field]
			switch {
			case !present:
				issues = append(issues, models.Issue{
					Type:         models.IssueTypeError,
					Severity:     models.SeverityCritical,
					Category:     models.CategoryDataIntegrity,
					Description:  fmt.Sprintf("required field %q is missing from the booking document", field),
					BookingID:    bookingID,
					PropertyID:   propertyID,
					SuggestedFix: fmt.Sprintf("Backfill %q on the booking document", field),
				})
			case value == nil:
				issues = append(issues, models.Issue{
					Type:         models.IssueTypeError,
					Severity:     models.SeverityCritical,
					Category:     models.CategoryDataIntegrity,
					Description:  fmt.Sprintf("required field %q is present but null", field),
					BookingID:    bookingID,
					PropertyID:   propertyID,
					SuggestedFix: fmt.Sprintf("Replace the null %q with a real value", field),
				})
			}
		}
	}
	return issues, nil
}
