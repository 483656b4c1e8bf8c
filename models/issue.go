package models

// Issue type — the class of a finding.
const (
	IssueTypeError   = "error"
	IssueTypeWarning = "warning"
	IssueTypeInfo    = "info"
)

// Issue severity — operational urgency, independent of the type above.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// Issue categories, one per rule module plus "system" for engine-level
// failures (store unreachable, check panicked).
const (
	CategoryDateConsistency    = "date_consistency"
	CategoryPricing            = "pricing"
	CategoryStatusValidity     = "status_validity"
	CategoryPaymentConsistency = "payment_consistency"
	CategoryRoomAllocation     = "room_allocation"
	CategoryGuestData          = "guest_data"
	CategoryOrphanedRecords    = "orphaned_records"
	CategoryDuplicateBookings  = "duplicate_bookings"
	CategoryBusinessRules      = "business_rules"
	CategoryDataIntegrity      = "data_integrity"
	CategorySystem             = "system"
)

// Issue is a single finding produced by one rule module during an audit run.
// Issues are immutable once produced and are never persisted by the engine.
type Issue struct {
	Type         string                 `bson:"type" json:"type"`
	Severity     string                 `bson:"severity" json:"severity"`
	Category     string                 `bson:"category" json:"category"`
	Description  string                 `bson:"description" json:"description"`
	BookingID    string                 `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	PropertyID   string                 `bson:"propertyId,omitempty" json:"propertyId,omitempty"`
	Data         map[string]interface{} `bson:"data,omitempty" json:"data,omitempty"`
	SuggestedFix string                 `bson:"suggestedFix,omitempty" json:"suggestedFix,omitempty"`
}
