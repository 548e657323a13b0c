package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"yelloride/internal/bookings"
)

// BookingConfirmedEvent is the message published when a booking is accepted.
// Consumers (dispatch board, customer messaging) key on the booking number.
type BookingConfirmedEvent struct {
	BookingID     uuid.UUID     `json:"booking_id"`
	BookingNumber string        `json:"booking_number"`
	Region        string        `json:"region"`
	IsRoundTrip   bool          `json:"is_round_trip"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	PaymentMethod string        `json:"payment_method"`
	PaymentAmount int           `json:"payment_amount"`
	Subtotal      int           `json:"subtotal"`
	Trips         []TripSummary `json:"trips"`
	ConfirmedAt   time.Time     `json:"confirmed_at"`
}

// TripSummary is the leg detail a dispatcher needs.
type TripSummary struct {
	LegOrder   int    `json:"leg_order"`
	Departure  string `json:"departure"`
	Arrival    string `json:"arrival"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Passengers int    `json:"passengers"`
	Luggage    int    `json:"luggage"`
}

// NewBookingConfirmedEvent builds the event payload from a saved booking.
func NewBookingConfirmedEvent(booking *bookings.Booking) *BookingConfirmedEvent {
	trips := make([]TripSummary, 0, len(booking.Trips))
	for _, t := range booking.Trips {
		trips = append(trips, TripSummary{
			LegOrder:   t.LegOrder,
			Departure:  t.Departure,
			Arrival:    t.Arrival,
			Date:       t.Date,
			Time:       t.Time,
			Passengers: t.Passengers,
			Luggage:    t.Luggage,
		})
	}

	return &BookingConfirmedEvent{
		BookingID:     booking.ID,
		BookingNumber: booking.BookingNumber,
		Region:        booking.Region,
		IsRoundTrip:   booking.IsRoundTrip,
		CustomerName:  booking.CustomerName,
		CustomerPhone: booking.CustomerPhone,
		PaymentMethod: booking.PaymentMethod,
		PaymentAmount: booking.PaymentAmount,
		Subtotal:      booking.Subtotal,
		Trips:         trips,
		ConfirmedAt:   time.Now(),
	}
}

// ToJSON serializes the event for the wire.
func (e *BookingConfirmedEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
