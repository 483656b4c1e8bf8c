package models

import "time"

// Booking statuses recognized by the platform.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Payment statuses recognized by the platform.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// AllocatedRoom is the optional room assignment embedded in a booking.
type AllocatedRoom struct {
	RoomNumber string `bson:"roomNumber" json:"roomNumber"`
}

// Booking is the reservation record as stored by the booking platform.
// The audit engine reads these; it never writes them.
type Booking struct {
	ID         string         `bson:"id" json:"id"`
	PropertyID string         `bson:"propertyId" json:"propertyId"`
	UserID     string         `bson:"userId,omitempty" json:"userId,omitempty"`
	GuestName  string         `bson:"guestName,omitempty" json:"guestName,omitempty"`
	GuestEmail string         `bson:"guestEmail,omitempty" json:"guestEmail,omitempty"`
	CheckIn    time.Time      `bson:"dateFrom" json:"checkIn"` // stay interval is [CheckIn, CheckOut)
	CheckOut   time.Time      `bson:"dateTo" json:"checkOut"`
	Guests     int            `bson:"guests" json:"guests"`
	TotalPrice float64        `bson:"totalPrice" json:"totalPrice"`
	Status     string         `bson:"status" json:"status"`
	PayStatus  string         `bson:"paymentStatus" json:"paymentStatus"`
	Room       *AllocatedRoom `bson:"allocatedRoom,omitempty" json:"allocatedRoom,omitempty"`
	CreatedAt  time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// Nights returns the stay duration in (fractional) days.
func (b Booking) Nights() float64 {
	return b.CheckOut.Sub(b.CheckIn).Hours() / 24
}

// RawBooking is a booking document before decoding into the typed model.
// The integrity check walks these so that a field that is absent from the
// document and a field that is present but null stay distinguishable.
type RawBooking map[string]interface{}

// DuplicateGroup is one cluster of bookings sharing a duplicate key
// (property, guest email, check-in, check-out), as returned by the store's
// grouping aggregation. IDs carries every booking id in the cluster.
type DuplicateGroup struct {
	PropertyID string    `bson:"propertyId" json:"propertyId"`
	GuestEmail string    `bson:"guestEmail" json:"guestEmail"`
	CheckIn    time.Time `bson:"dateFrom" json:"checkIn"`
	CheckOut   time.Time `bson:"dateTo" json:"checkOut"`
	IDs        []string  `bson:"ids" json:"ids"`
}
