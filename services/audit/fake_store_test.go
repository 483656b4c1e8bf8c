package audit

import (
	"context"
	"sort"
	"time"

	"innsight/models"
)

// fakeStore is an in-memory ConsistencyStore for engine tests. Unless a field
// is set explicitly, the valid property/user id sets are derived from the
// bookings themselves, and raw documents are synthesized from the typed model.
type fakeStore struct {
	bookings    []models.Booking
	raw         []models.RawBooking
	propertyIDs []string
	userIDs     []string

	pingErr       error
	findErr       error
	countErr      error
	duplicatesErr error
	distinctErr   error
}

func newFakeStore(bookings ...models.Booking) *fakeStore {
	s := &fakeStore{bookings: bookings}
	propSeen := map[string]bool{}
	userSeen := map[string]bool{}
	for _, b := range bookings {
		if b.PropertyID != "" && !propSeen[b.PropertyID] {
			propSeen[b.PropertyID] = true
			s.propertyIDs = append(s.propertyIDs, b.PropertyID)
		}
		if b.UserID != "" && !userSeen[b.UserID] {
			userSeen[b.UserID] = true
			s.userIDs = append(s.userIDs, b.UserID)
		}
	}
	return s
}

func (s *fakeStore) scoped(propertyID string) []models.Booking {
	if propertyID == "" {
		return s.bookings
	}
	var out []models.Booking
	for _, b := range s.bookings {
		if b.PropertyID == propertyID {
			out = append(out, b)
		}
	}
	return out
}

func (s *fakeStore) Ping(context.Context) error { return s.pingErr }

func (s *fakeStore) FindBookings(_ context.Context, propertyID string) ([]models.Booking, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.scoped(propertyID), nil
}

func (s *fakeStore) FindRawBookings(_ context.Context, propertyID string) ([]models.RawBooking, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.raw != nil {
		return s.raw, nil
	}
	var docs []models.RawBooking
	for _, b := range s.scoped(propertyID) {
		docs = append(docs, models.RawBooking{
			"id":         b.ID,
			"propertyId": b.PropertyID,
			"dateFrom":   b.CheckIn,
			"dateTo":     b.CheckOut,
			"status":     b.Status,
		})
	}
	return docs, nil
}

func (s *fakeStore) CountBookings(_ context.Context, propertyID string) (int64, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return int64(len(s.scoped(propertyID))), nil
}

func (s *fakeStore) DuplicateGroups(_ context.Context, propertyID string) ([]models.DuplicateGroup, error) {
	if s.duplicatesErr != nil {
		return nil, s.duplicatesErr
	}
	type key struct {
		propertyID string
		email      string
		in, out    int64
	}
	grouped := map[key][]string{}
	meta := map[key]models.Booking{}
	for _, b := range s.scoped(propertyID) {
		k := key{b.PropertyID, b.GuestEmail, b.CheckIn.Unix(), b.CheckOut.Unix()}
		grouped[k] = append(grouped[k], b.ID)
		meta[k] = b
	}
	var groups []models.DuplicateGroup
	for k, ids := range grouped {
		if len(ids) < 2 {
			continue
		}
		b := meta[k]
		groups = append(groups, models.DuplicateGroup{
			PropertyID: b.PropertyID,
			GuestEmail: b.GuestEmail,
			CheckIn:    b.CheckIn,
			CheckOut:   b.CheckOut,
			IDs:        ids,
		})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].IDs[0] < groups[j].IDs[0] })
	return groups, nil
}

func (s *fakeStore) DistinctPropertyIDs(context.Context) ([]string, error) {
	if s.distinctErr != nil {
		return nil, s.distinctErr
	}
	return s.propertyIDs, nil
}

func (s *fakeStore) DistinctUserIDs(context.Context) ([]string, error) {
	if s.distinctErr != nil {
		return nil, s.distinctErr
	}
	return s.userIDs, nil
}

// newTestService builds an engine over the store with default limits.
func newTestService(store *fakeStore) *DefaultAuditService {
	return &DefaultAuditService{Store: store, Limits: DefaultThresholds()}
}

// validBooking returns a booking that passes every check: a two-night stay a
// month from now, sensibly priced, confirmed and paid.
func validBooking(id string) models.Booking {
	checkIn := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	return models.Booking{
		ID:         id,
		PropertyID: "prop-1",
		UserID:     "user-1",
		GuestName:  "Asha Patel",
		GuestEmail: "asha@example.com",
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, 2),
		Guests:     2,
		TotalPrice: 300,
		Status:     models.BookingStatusConfirmed,
		PayStatus:  models.PaymentStatusPaid,
		CreatedAt:  time.Now().AddDate(0, 0, -1),
		UpdatedAt:  time.Now(),
	}
}

// issuesByCategory buckets a report's issues for assertions.
func issuesByCategory(issues []models.Issue) map[string][]models.Issue {
	out := map[string][]models.Issue{}
	for _, issue := range issues {
		out[issue.Category] = append(out[issue.Category], issue)
	}
	return out
}
