package audit

import (
	"context"
	"fmt"
	"time"

	"innsight/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// snapshot is the in-scope booking set loaded once per run and shared,
// read-only, by every rule module.
type snapshot struct {
	propertyID string
	bookings   []models.Booking
	raw        []models.RawBooking
}

// check is one rule module: a pure function of the snapshot, safe to run in
// parallel with the others.
type check struct {
	category string
	name     string
	fn       func(ctx context.Context, snap *snapshot) ([]models.Issue, error)
}

func (s *DefaultAuditService) checks() []check {
	return []check{
		{models.CategoryDateConsistency, "date consistency", s.checkDateConsistency},
		{models.CategoryPricing, "pricing sanity", s.checkPricingSanity},
		{models.CategoryStatusValidity, "status validity", s.checkStatusValidity},
		{models.CategoryPaymentConsistency, "payment consistency", s.checkPaymentConsistency},
		{models.CategoryRoomAllocation, "room allocation overlap", s.checkRoomAllocationOverlap},
		{models.CategoryGuestData, "guest data validity", s.checkGuestData},
		{models.CategoryOrphanedRecords, "orphaned references", s.checkOrphanedReferences},
		{models.CategoryDuplicateBookings, "duplicate bookings", s.checkDuplicateBookings},
		{models.CategoryBusinessRules, "business rules", s.checkBusinessRules},
		{models.CategoryDataIntegrity, "required field integrity", s.checkRequiredFields},
	}
}

// RunConsistencyCheck audits the scoped bookings and always returns a report.
func (s *DefaultAuditService) RunConsistencyCheck(ctx context.Context, propertyID string) *models.ConsistencyReport {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	report := &models.ConsistencyReport{
		RunID:      uuid.New().String(),
		PropertyID: propertyID,
		Issues:     []models.Issue{},
	}

	// Connectivity gate: if the store cannot even be reached, no module runs.
	if err := s.Store.Ping(ctx); err != nil {
		logger.Error("audit: store unreachable", zap.Error(err))
		return s.connectivityFailure(report, err)
	}
	snap, err := s.loadSnapshot(ctx, propertyID)
	if err != nil {
		logger.Error("audit: initial booking load failed", zap.Error(err))
		return s.connectivityFailure(report, err)
	}

	limit := s.Limits.MaxConcurrentChecks
	if limit < 1 {
		limit = 1
	}
	checks := s.checks()
	results := make([][]models.Issue, len(checks))
	sem := make(chan struct{}, limit)
	done := make(chan int, len(checks))
	for i, c := range checks {
		go func(i int, c check) {
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = s.runCheck(ctx, c, snap, logger)
			done <- i
		}(i, c)
	}
	for range checks {
		<-done
	}
	for _, issues := range results {
		report.Issues = append(report.Issues, issues...)
	}

	total, err := s.Store.CountBookings(ctx, propertyID)
	if err != nil {
		logger.Warn("audit: count query failed, using snapshot size", zap.Error(err))
		total = int64(len(snap.bookings))
	}

	report.Summary = summarize(total, report.Issues)
	report.Recommendations = GenerateRecommendations(report.Issues, s.Limits.BulkCleanupThreshold)
	logger.Info("audit: run complete",
		zap.String("runId", report.RunID),
		zap.String("propertyId", propertyID),
		zap.Int64("totalBookings", total),
		zap.Int("issuesFound", report.Summary.IssuesFound),
		zap.Int("criticalIssues", report.Summary.CriticalIssues),
	)
	return report
}

func (s *DefaultAuditService) loadSnapshot(ctx context.Context, propertyID string) (*snapshot, error) {
	bookings, err := s.Store.FindBookings(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	raw, err := s.Store.FindRawBookings(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	return &snapshot{propertyID: propertyID, bookings: bookings, raw: raw}, nil
}

// runCheck contains a single module's failure: a returned error becomes one
// high-severity issue for the module's category, a panic one critical system
// issue. Either way the other modules keep running.
func (s *DefaultAuditService) runCheck(ctx context.Context, c check, snap *snapshot, logger *zap.Logger) (issues []models.Issue) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("audit: check panicked", zap.String("category", c.category), zap.Any("panic", r))
			issues = []models.Issue{{
				Type:        models.IssueTypeError,
				Severity:    models.SeverityCritical,
				Category:    models.CategorySystem,
				Description: fmt.Sprintf("consistency check for %s failed unexpectedly: %v", c.category, r),
			}}
		}
	}()

	out, err := c.fn(ctx, snap)
	if err != nil {
		logger.Warn("audit: check failed", zap.String("category", c.category), zap.Error(err))
		return []models.Issue{{
			Type:        models.IssueTypeError,
			Severity:    models.SeverityHigh,
			Category:    c.category,
			Description: fmt.Sprintf("failed to check %s: %v", c.name, err),
		}}
	}
	return out
}

// connectivityFailure fills in the short-circuit report for an unreachable store.
func (s *DefaultAuditService) connectivityFailure(report *models.ConsistencyReport, err error) *models.ConsistencyReport {
	report.Issues = []models.Issue{{
		Type:         models.IssueTypeError,
		Severity:     models.SeverityCritical,
		Category:     models.CategorySystem,
		Description:  fmt.Sprintf("cannot reach booking store: %v", err),
		SuggestedFix: "Verify database connectivity and credentials, then rerun the audit",
	}}
	report.Summary = summarize(0, report.Issues)
	report.Recommendations = []string{RecommendationRestoreConnectivity}
	return report
}

func summarize(total int64, issues []models.Issue) models.ReportSummary {
	summary := models.ReportSummary{
		TotalBookings: total,
		IssuesFound:   len(issues),
		Timestamp:     time.Now().UTC(),
	}
	for _, issue := range issues {
		switch issue.Severity {
		case models.SeverityCritical:
			summary.CriticalIssues++
		case models.SeverityHigh:
			summary.HighPriorityIssues++
		}
	}
	return summary
}
