package audit

import (
	"context"
	"testing"
	"time"

	"innsight/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roomBooking(id, room string, checkIn time.Time, nights int) models.Booking {
	b := validBooking(id)
	b.CheckIn = checkIn
	b.CheckOut = checkIn.AddDate(0, 0, nights)
	b.Room = &models.AllocatedRoom{RoomNumber: room}
	return b
}

func TestOverlapDetectsConflictingStays(t *testing.T) {
	base := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	a := roomBooking("a", "101", base, 4)
	b := roomBooking("b", "101", base.AddDate(0, 0, 2), 4)
	svc := newTestService(newFakeStore())

	issues, err := svc.checkRoomAllocationOverlap(context.Background(), &snapshot{bookings: []models.Booking{a, b}})
	require.NoError(t, err)
	require.Len(t, issues, 1)

	issue := issues[0]
	assert.Equal(t, models.SeverityCritical, issue.Severity)
	assert.Equal(t, models.CategoryRoomAllocation, issue.Category)
	assert.ElementsMatch(t, []string{"a", "b"}, issue.Data["bookingIds"])
}

func TestOverlapIsOrderIndependent(t *testing.T) {
	base := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	a := roomBooking("a", "101", base, 4)
	b := roomBooking("b", "101", base.AddDate(0, 0, 2), 4)
	svc := newTestService(newFakeStore())

	forward, err := svc.checkRoomAllocationOverlap(context.Background(), &snapshot{bookings: []models.Booking{a, b}})
	require.NoError(t, err)
	reverse, err := svc.checkRoomAllocationOverlap(context.Background(), &snapshot{bookings: []models.Booking{b, a}})
	require.NoError(t, err)

	require.Len(t, forward, 1)
	require.Len(t, reverse, 1)
	assert.Equal(t, forward[0].Data["bookingIds"], reverse[0].Data["bookingIds"])
}

func TestOverlapBackToBackStaysDoNotConflict(t *testing.T) {
	base := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	// b checks in the day a checks out: half-open intervals, no conflict.
	a := roomBooking("a", "101", base, 3)
	b := roomBooking("b", "101", base.AddDate(0, 0, 3), 3)
	svc := newTestService(newFakeStore())

	issues, err := svc.checkRoomAllocationOverlap(context.Background(), &snapshot{bookings: []models.Booking{a, b}})
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestOverlapIgnoresOtherRoomsAndCancellations(t *testing.T) {
	base := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	a := roomBooking("a", "101", base, 4)
	otherRoom := roomBooking("b", "102", base, 4)
	cancelled := roomBooking("c", "101", base, 4)
	cancelled.Status = models.BookingStatusCancelled
	unassigned := validBooking("d")
	unassigned.CheckIn = base
	unassigned.CheckOut = base.AddDate(0, 0, 4)
	svc := newTestService(newFakeStore())

	issues, err := svc.checkRoomAllocationOverlap(context.Background(),
		&snapshot{bookings: []models.Booking{a, otherRoom, cancelled, unassigned}})
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestOverlapReportsEveryConflictingPair(t *testing.T) {
	base := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	// Three stays all covering the same week: 3 pairs.
	a := roomBooking("a", "101", base, 7)
	b := roomBooking("b", "101", base.AddDate(0, 0, 1), 7)
	c := roomBooking("c", "101", base.AddDate(0, 0, 2), 7)
	svc := newTestService(newFakeStore())

	issues, err := svc.checkRoomAllocationOverlap(context.Background(), &snapshot{bookings: []models.Booking{c, a, b}})
	require.NoError(t, err)
	assert.Len(t, issues, 3)
}
