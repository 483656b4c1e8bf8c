package audit

import (
	"fmt"

	"innsight/models"
)

// Recommendation strings reused by the coordinator and its tests.
const (
	RecommendationAllClear            = "All consistency checks passed; no action needed"
	RecommendationRestoreConnectivity = "Restore connectivity to the booking store and rerun the audit"
)

// GenerateRecommendations derives remediation guidance from the aggregated
// issue set. It depends only on which severities and categories are present
// (and the total count), never on the ordering of the issues.
func GenerateRecommendations(issues []models.Issue, bulkCleanupThreshold int) []string {
	hasCritical := false
	categories := make(map[string]bool)
	for _, issue := range issues {
		if issue.Severity == models.SeverityCritical {
			hasCritical = true
		}
		categories[issue.Category] = true
	}

	var recs []string
	if hasCritical {
		recs = append(recs, "Critical data issues detected; address them immediately")
	}
	if categories[models.CategoryDateConsistency] {
		recs = append(recs, "Review bookings with inconsistent or implausible stay dates")
	}
	if categories[models.CategoryPaymentConsistency] {
		recs = append(recs, "Reconcile payment records against booking statuses")
	}
	if categories[models.CategoryRoomAllocation] {
		recs = append(recs, "Resolve room allocation conflicts before they cause overbooking")
	}
	if categories[models.CategoryOrphanedRecords] {
		recs = append(recs, "Clean up bookings referencing deleted properties or users")
	}
	if categories[models.CategoryDuplicateBookings] {
		recs = append(recs, "Add duplicate prevention when bookings are created")
	}
	if len(issues) > bulkCleanupThreshold {
		recs = append(recs, fmt.Sprintf("More than %d issues found; schedule a bulk data cleanup", bulkCleanupThreshold))
	}
	if len(recs) == 0 {
		recs = append(recs, RecommendationAllClear)
	}
	return recs
}
