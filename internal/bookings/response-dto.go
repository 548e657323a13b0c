package bookings

import (
	"time"

	"github.com/google/uuid"

	"yelloride/internal/pricing"
)

// TripResponse is one leg of a booking as returned to clients.
type TripResponse struct {
	LegOrder   int    `json:"leg_order"`
	Departure  string `json:"departure"`
	Arrival    string `json:"arrival"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Passengers int    `json:"passengers"`
	Luggage    int    `json:"luggage"`
}

// BookingResponse is the public view of a booking.
type BookingResponse struct {
	ID              uuid.UUID      `json:"id"`
	BookingNumber   string         `json:"booking_number"`
	ServiceTypeCode string         `json:"service_type_code"`
	Region          string         `json:"region"`
	IsRoundTrip     bool           `json:"is_round_trip"`
	CustomerName    string         `json:"customer_name"`
	CustomerPhone   string         `json:"customer_phone"`
	CustomerEmail   string         `json:"customer_email,omitempty"`
	CustomerKakaoID string         `json:"customer_kakao_id"`
	FlightNumber    string         `json:"flight_number,omitempty"`
	SimCard         bool           `json:"sim_card"`
	CarSeatNeeded   bool           `json:"car_seat_needed"`
	CarSeatType     string         `json:"car_seat_type,omitempty"`
	PaymentMethod   string         `json:"payment_method"`
	PaymentAmount   int            `json:"payment_amount"`
	PaymentFee      int            `json:"payment_fee"`
	SpecialRequests string         `json:"special_requests,omitempty"`
	Subtotal        int            `json:"subtotal"`
	Status          Status         `json:"status"`
	Trips           []TripResponse `json:"trips"`
	CreatedAt       time.Time      `json:"created_at"`
	CancelledAt     *time.Time     `json:"cancelled_at,omitempty"`
}

// QuoteResponse mirrors the price breakdown for the booking flow.
type QuoteResponse struct {
	LineItems         []pricing.LineItem `json:"line_items"`
	Total             int                `json:"total"`
	ReservationFee    int                `json:"reservation_fee"`
	FullPaymentAmount int                `json:"full_payment_amount"`
	FinalAmount       int                `json:"final_amount"`
}

// ToResponse converts a Booking to its public view.
func (b *Booking) ToResponse() BookingResponse {
	trips := make([]TripResponse, 0, len(b.Trips))
	for _, t := range b.Trips {
		trips = append(trips, TripResponse{
			LegOrder:   t.LegOrder,
			Departure:  t.Departure,
			Arrival:    t.Arrival,
			Date:       t.Date,
			Time:       t.Time,
			Passengers: t.Passengers,
			Luggage:    t.Luggage,
		})
	}

	return BookingResponse{
		ID:              b.ID,
		BookingNumber:   b.BookingNumber,
		ServiceTypeCode: b.ServiceTypeCode,
		Region:          b.Region,
		IsRoundTrip:     b.IsRoundTrip,
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		CustomerEmail:   b.CustomerEmail,
		CustomerKakaoID: b.CustomerKakaoID,
		FlightNumber:    b.FlightNumber,
		SimCard:         b.SimCard,
		CarSeatNeeded:   b.CarSeatNeeded,
		CarSeatType:     b.CarSeatType,
		PaymentMethod:   b.PaymentMethod,
		PaymentAmount:   b.PaymentAmount,
		PaymentFee:      b.PaymentFee,
		SpecialRequests: b.SpecialRequests,
		Subtotal:        b.Subtotal,
		Status:          b.Status,
		Trips:           trips,
		CreatedAt:       b.CreatedAt,
		CancelledAt:     b.CancelledAt,
	}
}

// ToQuoteResponse converts a price breakdown to the quote payload.
func ToQuoteResponse(b pricing.Breakdown) QuoteResponse {
	items := b.LineItems
	if items == nil {
		items = []pricing.LineItem{}
	}
	return QuoteResponse{
		LineItems:         items,
		Total:             b.Total,
		ReservationFee:    b.ReservationFeeFlat,
		FullPaymentAmount: b.FullPaymentAmount,
		FinalAmount:       b.FinalAmount,
	}
}
