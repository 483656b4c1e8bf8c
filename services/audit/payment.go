package audit

import (
	"context"
	"fmt"

	"innsight/models"
)

var validPaymentStatuses = map[string]bool{
	models.PaymentStatusPending:  true,
	models.PaymentStatusPaid:     true,
	models.PaymentStatusFailed:   true,
	models.PaymentStatusRefunded: true,
}

// checkPaymentConsistency cross-checks the payment status against the booking
// lifecycle status.
func (s *DefaultAuditService) checkPaymentConsistency(_ context.Context, snap *snapshot) ([]models.Issue, error) {
	var issues []models.Issue
	for _, b := range snap.bookings {
		if !validPaymentStatuses[b.PayStatus] {
			issues = append(issues, models.Issue{
				Type:         models.IssueTypeError,
				Severity:     models.SeverityHigh,
				Category:     models.CategoryPaymentConsistency,
				Description:  fmt.Sprintf("unknown payment status %q", b.PayStatus),
				BookingID:    b.ID,
				PropertyID:   b.PropertyID,
				SuggestedFix: "Set the payment status to one of pending, paid, failed or refunded",
			})
			continue
		}

		if b.Status == models.BookingStatusCompleted &&
			b.PayStatus != models.PaymentStatusPaid && b.PayStatus != models.PaymentStatusRefunded {
			issues = append(issues, models.Issue{
				Type:     models.IssueTypeWarning,
				Severity: models.SeverityHigh,
				Category: models.CategoryPaymentConsistency,
				Description: fmt.Sprintf("completed booking has payment status %q instead of paid or refunded",
					b.PayStatus),
				BookingID:    b.ID,
				PropertyID:   b.PropertyID,
				SuggestedFix: "Reconcile the payment record for this completed stay",
			})
		}

		if b.Status == models.BookingStatusCancelled && b.PayStatus == models.PaymentStatusPaid {
			issues = append(issues, models.Issue{
				Type:        models.IssueTypeInfo,
				Severity:    models.SeverityMedium,
				Category:    models.CategoryPaymentConsistency,
				Description: "cancelled booking is still marked paid; a refund may not have been processed",
				BookingID:   b.ID,
				PropertyID:  b.PropertyID,
			})
		}
	}
	return issues, nil
}
