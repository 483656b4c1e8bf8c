package bookingsRepo

import (
	"context"

	"innsight/models"
)

// ConsistencyStore is the read-only view of the booking platform's data that
// the audit engine consumes. An empty propertyID means the whole store.
//
// Implementations should serve one fixed snapshot per run where they can;
// the engine tolerates the rare cross-query discrepancy as non-fatal.
type ConsistencyStore interface {
	// Ping verifies the store is reachable. A failed ping short-circuits the run.
	Ping(ctx context.Context) error

	// FindBookings returns the in-scope bookings decoded into the typed model.
	FindBookings(ctx context.Context, propertyID string) ([]models.Booking, error)

	// FindRawBookings returns the same scope as raw documents, so that
	// missing fields and present-but-null fields stay distinguishable.
	FindRawBookings(ctx context.Context, propertyID string) ([]models.RawBooking, error)

	// CountBookings counts the in-scope bookings.
	CountBookings(ctx context.Context, propertyID string) (int64, error)

	// DuplicateGroups returns clusters of bookings sharing
	// (property, guest email, check-in, check-out), clusters of size > 1 only.
	DuplicateGroups(ctx context.Context, propertyID string) ([]models.DuplicateGroup, error)

	// DistinctPropertyIDs returns the full set of valid property ids.
	DistinctPropertyIDs(ctx context.Context) ([]string, error)

	// DistinctUserIDs returns the full set of valid user ids.
	DistinctUserIDs(ctx context.Context) ([]string, error)
}
