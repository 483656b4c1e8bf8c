package bookingsRepo

import (
	"context"
	"fmt"
	"time"

	"innsight/config"
	"innsight/database"
	"innsight/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoConsistencyStore implements ConsistencyStore using MongoDB.
type MongoConsistencyStore struct {
	client       *mongo.Client
	bookingColl  *mongo.Collection
	propertyColl *mongo.Collection
	userColl     *mongo.Collection
}

// NewMongoConsistencyStore creates a ConsistencyStore backed by MongoDB.
func NewMongoConsistencyStore() ConsistencyStore {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoConsistencyStore{
		client:       database.MongoClient,
		bookingColl:  db.Collection("bookings"),
		propertyColl: db.Collection("properties"),
		userColl:     db.Collection("users"),
	}
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// scopeFilter builds the base filter for an optionally property-scoped query.
func scopeFilter(propertyID string) bson.M {
	if propertyID == "" {
		return bson.M{}
	}
	return bson.M{"propertyId": propertyID}
}

func (s *MongoConsistencyStore) Ping(ctx context.Context) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if err := s.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("store unreachable: %w", err)
	}
	return nil
}

func (s *MongoConsistencyStore) FindBookings(ctx context.Context, propertyID string) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 30*time.Second)
	defer cancel()

	cursor, err := s.bookingColl.Find(ctx, scopeFilter(propertyID))
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (s *MongoConsistencyStore) FindRawBookings(ctx context.Context, propertyID string) ([]models.RawBooking, error) {
	ctx, cancel := newContext(ctx, 30*time.Second)
	defer cancel()

	cursor, err := s.bookingColl.Find(ctx, scopeFilter(propertyID))
	if err != nil {
		return nil, fmt.Errorf("failed to query raw bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.RawBooking
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode raw bookings: %w", err)
	}
	return docs, nil
}

func (s *MongoConsistencyStore) CountBookings(ctx context.Context, propertyID string) (int64, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	count, err := s.bookingColl.CountDocuments(ctx, scopeFilter(propertyID))
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

// DuplicateGroups groups bookings on the duplicate key and keeps only groups
// with more than one member.
func (s *MongoConsistencyStore) DuplicateGroups(ctx context.Context, propertyID string) ([]models.DuplicateGroup, error) {
	ctx, cancel := newContext(ctx, 30*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: scopeFilter(propertyID)}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"propertyId": "$propertyId",
				"guestEmail": "$guestEmail",
				"dateFrom":   "$dateFrom",
				"dateTo":     "$dateTo",
			},
			"ids":   bson.M{"$push": "$id"},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$match", Value: bson.M{"count": bson.M{"$gt": 1}}}},
	}
	cursor, err := s.bookingColl.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("duplicate aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Key struct {
			PropertyID string    `bson:"propertyId"`
			GuestEmail string    `bson:"guestEmail"`
			CheckIn    time.Time `bson:"dateFrom"`
			CheckOut   time.Time `bson:"dateTo"`
		} `bson:"_id"`
		IDs []string `bson:"ids"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding duplicate groups: %w", err)
	}

	groups := make([]models.DuplicateGroup, 0, len(results))
	for _, r := range results {
		groups = append(groups, models.DuplicateGroup{
			PropertyID: r.Key.PropertyID,
			GuestEmail: r.Key.GuestEmail,
			CheckIn:    r.Key.CheckIn,
			CheckOut:   r.Key.CheckOut,
			IDs:        r.IDs,
		})
	}
	return groups, nil
}

func (s *MongoConsistencyStore) DistinctPropertyIDs(ctx context.Context) ([]string, error) {
	return s.distinctIDs(ctx, s.propertyColl)
}

func (s *MongoConsistencyStore) DistinctUserIDs(ctx context.Context) ([]string, error) {
	return s.distinctIDs(ctx, s.userColl)
}

func (s *MongoConsistencyStore) distinctIDs(ctx context.Context, coll *mongo.Collection) ([]string, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	values, err := coll.Distinct(ctx, "id", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch distinct ids from %s: %w", coll.Name(), err)
	}
	ids := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
