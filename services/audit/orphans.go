package audit

import (
	"context"
	"fmt"

	"innsight/models"
)

// checkOrphanedReferences verifies that every booking still points at an
// existing property and, where set, an existing user. The valid id sets are
// fetched once per run.
func (s *DefaultAuditService) checkOrphanedReferences(ctx context.Context, snap *snapshot) ([]models.Issue, error) {
	propertyIDs, err := s.Store.DistinctPropertyIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch property ids: %w", err)
	}
	userIDs, err := s.Store.DistinctUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch user ids: %w", err)
	}

	validProperties := make(map[string]bool, len(propertyIDs))
	for _, id := range propertyIDs {
		validProperties[id] = true
	}
	validUsers := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		validUsers[id] = true
	}

	var issues []models.Issue
	for _, b := range snap.bookings {
		if !validProperties[b.PropertyID] {
			issues = append(issues, models.Issue{
				Type:         models.IssueTypeError,
				Severity:     models.SeverityHigh,
				Category:     models.CategoryOrphanedRecords,
				Description:  fmt.Sprintf("booking references property %q which no longer exists", b.PropertyID),
				BookingID:    b.ID,
				PropertyID:   b.PropertyID,
				SuggestedFix: "Archive the booking or restore the deleted property record",
			})
		}
		if b.UserID != "" && !validUsers[b.UserID] {
			issues = append(issues, models.Issue{
				Type:        models.IssueTypeWarning,
				Severity:    models.SeverityMedium,
				Category:    models.CategoryOrphanedRecords,
				Description: fmt.Sprintf("booking references user %q which no longer exists", b.UserID),
				BookingID:   b.ID,
				PropertyID:  b.PropertyID,
			})
		}
	}
	return issues, nil
}
