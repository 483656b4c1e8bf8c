package models

import "time"

// ReportSummary holds the headline counters of one audit run.
type ReportSummary struct {
	TotalBookings      int64     `bson:"totalBookings" json:"totalBookings"`
	IssuesFound        int       `bson:"issuesFound" json:"issuesFound"`
	CriticalIssues     int       `bson:"criticalIssues" json:"criticalIssues"`
	HighPriorityIssues int       `bson:"highPriorityIssues" json:"highPriorityIssues"`
	Timestamp          time.Time `bson:"timestamp" json:"timestamp"`
}

// ConsistencyReport is the full result of one audit run. It is created fresh
// per invocation and owned by the caller once returned.
type ConsistencyReport struct {
	RunID           string        `bson:"runId" json:"runId"`
	PropertyID      string        `bson:"propertyId,omitempty" json:"propertyId,omitempty"` // empty = whole store
	Summary         ReportSummary `bson:"summary" json:"summary"`
	Issues          []Issue       `bson:"issues" json:"issues"`
	Recommendations []string      `bson:"recommendations" json:"recommendations"`
}
