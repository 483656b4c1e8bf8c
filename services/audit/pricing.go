package audit

import (
	"context"
	"fmt"

	"innsight/models"

	"github.com/montanaflynn/stats"
)

// checkPricingSanity flags non-positive totals, totals above the configured
// ceiling, and per-night price outliers relative to the scope's mean.
func (s *DefaultAuditService) checkPricingSanity(_ context.Context, snap *snapshot) ([]models.Issue, error) {
	var issues []models.Issue
	for _, b := range snap.bookings {
		if b.TotalPrice <= 0 {
			issues = append(issues, models.Issue{
				Type:         models.IssueTypeError,
				Severity:     models.SeverityHigh,
				Category:     models.CategoryPricing,
				Description:  fmt.Sprintf("total price %.2f is not positive", b.TotalPrice),
				BookingID:    b.ID,
				PropertyID:   b.PropertyID,
				SuggestedFix: "Recalculate the booking total from the rate plan",
			})
		} else if b.TotalPrice > s.Limits.PriceCeiling {
			issues = append(issues, models.Issue{
				Type:        models.IssueTypeWarning,
				Severity:    models.SeverityMedium,
				Category:    models.CategoryPricing,
				Description: fmt.Sprintf("total price %.2f exceeds the ceiling of %.2f", b.TotalPrice, s.Limits.PriceCeiling),
				BookingID:   b.ID,
				PropertyID:  b.PropertyID,
			})
		}
	}

	outliers, err := s.priceOutliers(snap.bookings)
	if err != nil {
		return nil, err
	}
	return append(issues, outliers...), nil
}

// priceOutliers compares each booking's per-night price against the mean over
// every booking with a positive price and a positive stay duration. With no
// qualifying booking there is no baseline and the step is skipped.
func (s *DefaultAuditService) priceOutliers(bookings []models.Booking) ([]models.Issue, error) {
	type nightly struct {
		booking models.Booking
		rate    float64
	}
	var rates []float64
	var qualifying []nightly
	for _, b := range bookings {
		nights := b.Nights()
		if nights <= 0 || b.TotalPrice <= 0 {
			continue
		}
		rate := b.TotalPrice / nights
		rates = append(rates, rate)
		qualifying = append(qualifying, nightly{booking: b, rate: rate})
	}
	if len(qualifying) == 0 {
		return nil, nil
	}

	mean, err := stats.Mean(rates)
	if err != nil {
		return nil, fmt.Errorf("per-night mean: %w", err)
	}
	threshold := mean * s.Limits.OutlierMultiplier

	var issues []models.Issue
	for _, q := range qualifying {
		if q.rate > threshold {
			issues = append(issues, models.Issue{
				Type:     models.IssueTypeWarning,
				Severity: models.SeverityMedium,
				Category: models.CategoryPricing,
				Description: fmt.Sprintf("per-night price %.2f exceeds %.0fx the scope average of %.2f",
					q.rate, s.Limits.OutlierMultiplier, mean),
				BookingID:  q.booking.ID,
				PropertyID: q.booking.PropertyID,
				Data: map[string]interface{}{
					"perNightPrice": q.rate,
					"scopeMean":     mean,
				},
			})
		}
	}
	return issues, nil
}
