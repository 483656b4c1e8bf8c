package audit

import (
	"context"

	"innsight/config"
	bookingsRepo "innsight/database/repository/bookings"
	"innsight/models"

	"go.uber.org/zap"
)

// AuditService runs consistency checks over the booking store.
type AuditService interface {
	// RunConsistencyCheck audits the bookings scoped to propertyID (empty
	// means the whole store) and returns the report. It never returns an
	// error: connectivity and check failures are reported inside the report.
	RunConsistencyCheck(ctx context.Context, propertyID string) *models.ConsistencyReport
}

// Thresholds are the tunable limits of the rule modules. Zero values are not
// meaningful; build them with DefaultThresholds or ThresholdsFromConfig.
type Thresholds struct {
	PriceCeiling         float64 // absolute total-price ceiling
	OutlierMultiplier    float64 // per-night price vs scope mean
	PastHorizonYears     int     // check-in older than this is suspicious
	FutureHorizonYears   int     // check-in further out than this is suspicious
	StalePendingDays     int     // pending bookings ended this long ago are stale
	AdvanceBookingYears  int     // advance-booking policy flag horizon
	MaxGuests            int     // guest-count sanity bound
	BulkCleanupThreshold int     // issue count that triggers the bulk-cleanup advice
	MaxConcurrentChecks  int     // fan-out bound for the rule modules
}

// DefaultThresholds returns the documented default limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		PriceCeiling:         100000,
		OutlierMultiplier:    5,
		PastHorizonYears:     2,
		FutureHorizonYears:   5,
		StalePendingDays:     3,
		AdvanceBookingYears:  2,
		MaxGuests:            50,
		BulkCleanupThreshold: 50,
		MaxConcurrentChecks:  4,
	}
}

// ThresholdsFromConfig builds Thresholds from the loaded app configuration.
func ThresholdsFromConfig() Thresholds {
	return Thresholds{
		PriceCeiling:         config.AppConfig.AuditPriceCeiling,
		OutlierMultiplier:    config.AppConfig.AuditOutlierMultiplier,
		PastHorizonYears:     config.AppConfig.AuditPastHorizonYears,
		FutureHorizonYears:   config.AppConfig.AuditFutureHorizonYears,
		StalePendingDays:     config.AppConfig.AuditStalePendingDays,
		AdvanceBookingYears:  config.AppConfig.AuditAdvanceBookingYears,
		MaxGuests:            config.AppConfig.AuditMaxGuests,
		BulkCleanupThreshold: config.AppConfig.AuditBulkCleanupThreshold,
		MaxConcurrentChecks:  config.AppConfig.AuditMaxConcurrentChecks,
	}
}

// DefaultAuditService implements AuditService.
type DefaultAuditService struct {
	Store  bookingsRepo.ConsistencyStore
	Limits Thresholds
	Logger *zap.Logger
}
