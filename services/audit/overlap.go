package audit

import (
	"context"
	"fmt"
	"sort"

	"innsight/models"
)

// checkRoomAllocationOverlap finds non-cancelled bookings assigned to the same
// physical room with intersecting stay intervals. Intervals are half-open, so
// a check-out equal to the next check-in is not a conflict.
//
// Within each room group the bookings are sorted by check-in and swept with an
// active set; every booking still active when the next one starts overlaps it.
func (s *DefaultAuditService) checkRoomAllocationOverlap(_ context.Context, snap *snapshot) ([]models.Issue, error) {
	type roomKey struct {
		propertyID string
		roomNumber string
	}
	groups := make(map[roomKey][]models.Booking)
	for _, b := range snap.bookings {
		if b.Status == models.BookingStatusCancelled || b.Room == nil || b.Room.RoomNumber == "" {
			continue
		}
		key := roomKey{propertyID: b.PropertyID, roomNumber: b.Room.RoomNumber}
		groups[key] = append(groups[key], b)
	}

	var issues []models.Issue
	for key, group := range groups {
		if len(group) < 2 {
			continue
		}
		sort.Slice(group, func(i, j int) bool {
			if !group[i].CheckIn.Equal(group[j].CheckIn) {
				return group[i].CheckIn.Before(group[j].CheckIn)
			}
			return group[i].ID < group[j].ID
		})

		var active []models.Booking
		for _, b := range group {
			kept := active[:0]
			for _, a := range active {
				if a.CheckOut.After(b.CheckIn) {
					kept = append(kept, a)
				}
			}
			active = kept
			for _, a := range active {
				issues = append(issues, models.Issue{
					Type:     models.IssueTypeError,
					Severity: models.SeverityCritical,
					Category: models.CategoryRoomAllocation,
					Description: fmt.Sprintf("bookings %s and %s both occupy room %s over intersecting dates",
						a.ID, b.ID, key.roomNumber),
					BookingID:  a.ID,
					PropertyID: key.propertyID,
					Data: map[string]interface{}{
						"roomNumber":     key.roomNumber,
						"bookingIds":     []string{a.ID, b.ID},
						"firstInterval":  []string{a.CheckIn.Format("2006-01-02"), a.CheckOut.Format("2006-01-02")},
						"secondInterval": []string{b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02")},
					},
					SuggestedFix: "Reassign one of the bookings to a free room before the stays begin",
				})
			}
			active = append(active, b)
		}
	}
	return issues, nil
}
