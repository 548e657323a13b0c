package fares

import (
	"time"

	"github.com/google/uuid"

	"yelloride/internal/pricing"
)

// RouteFare is one directional fare record: (region, departure, arrival)
// identifies at most one row. Both directions of a serviced pair are distinct
// records in the table.
type RouteFare struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Region             string    `gorm:"type:varchar(8);not null;uniqueIndex:idx_route_direction,priority:1;index" json:"region"`
	Departure          string    `gorm:"not null;uniqueIndex:idx_route_direction,priority:2" json:"departure"`
	Arrival            string    `gorm:"not null;uniqueIndex:idx_route_direction,priority:3" json:"arrival"`
	ReservationFee     int       `gorm:"not null" json:"reservation_fee"`
	LocalPaymentFee    int       `gorm:"not null" json:"local_payment_fee"`
	DepartureIsAirport bool      `gorm:"not null;default:false" json:"departure_is_airport"`
	ArrivalIsAirport   bool      `gorm:"not null;default:false" json:"arrival_is_airport"`
	Priority           int       `gorm:"not null;default:1" json:"priority"` // display ordering only
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TableName sets the table name for RouteFare
func (RouteFare) TableName() string {
	return "route_fares"
}

// TotalFare is the full base fare: deposit portion plus on-site portion.
func (r *RouteFare) TotalFare() int {
	return r.ReservationFee + r.LocalPaymentFee
}

// RequiresFlightInfo reports whether either endpoint is an airport, in which
// case the booking flow collects flight details downstream.
func (r *RouteFare) RequiresFlightInfo() bool {
	return r.DepartureIsAirport || r.ArrivalIsAirport
}

// LegFare converts the record into the pricing calculator's input shape.
func (r *RouteFare) LegFare() pricing.LegFare {
	return pricing.LegFare{
		ReservationFee:  r.ReservationFee,
		LocalPaymentFee: r.LocalPaymentFee,
	}
}
