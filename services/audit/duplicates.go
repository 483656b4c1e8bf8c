package audit

import (
	"context"
	"fmt"
	"sort"

	"innsight/models"
)

// checkDuplicateBookings reports candidate duplicate clusters: bookings
// sharing property, guest email and stay interval. The lowest id in a cluster
// is treated as canonical; every other member is flagged against it.
func (s *DefaultAuditService) checkDuplicateBookings(ctx context.Context, snap *snapshot) ([]models.Issue, error) {
	groups, err := s.Store.DuplicateGroups(ctx, snap.propertyID)
	if err != nil {
		return nil, fmt.Errorf("fetch duplicate groups: %w", err)
	}

	var issues []models.Issue
	for _, g := range groups {
		if len(g.IDs) < 2 {
			continue
		}
		ids := append([]string(nil), g.IDs...)
		sort.Strings(ids)
		canonical := ids[0]
		for _, id := range ids[1:] {
			issues = append(issues, models.Issue{
				Type:     models.IssueTypeWarning,
				Severity: models.SeverityMedium,
				Category: models.CategoryDuplicateBookings,
				Description: fmt.Sprintf("booking appears to duplicate %s (%d bookings share guest %s and dates %s to %s)",
					canonical, len(ids), g.GuestEmail,
					g.CheckIn.Format("2006-01-02"), g.CheckOut.Format("2006-01-02")),
				BookingID:  id,
				PropertyID: g.PropertyID,
				Data: map[string]interface{}{
					"canonicalId": canonical,
					"clusterSize": len(ids),
				},
				SuggestedFix: "Verify with the guest and cancel the redundant booking",
			})
		}
	}
	return issues, nil
}
