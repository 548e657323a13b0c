package bookings

import (
	"time"

	"github.com/google/uuid"
)

// Booking is the persisted snapshot of a submitted booking. Everything except
// Status is immutable once saved.
type Booking struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingNumber   string    `gorm:"uniqueIndex;not null" json:"booking_number"`
	ServiceTypeCode string    `gorm:"type:varchar(32);not null;default:'PREMIUM_TAXI'" json:"service_type_code"`
	Region          string    `gorm:"type:varchar(8);not null" json:"region"`
	IsRoundTrip     bool      `gorm:"not null;default:false" json:"is_round_trip"`

	// Customer contact block (pass-through, not used by pricing)
	CustomerName    string `gorm:"not null" json:"customer_name"`
	CustomerPhone   string `gorm:"not null;index" json:"customer_phone"`
	CustomerEmail   string `json:"customer_email"`
	CustomerKakaoID string `gorm:"column:customer_kakao_id" json:"customer_kakao_id"`

	// Flight details, collected when either endpoint is an airport
	FlightNumber      string `json:"flight_number,omitempty"`
	FlightArrivalTime string `json:"flight_arrival_time,omitempty"`

	// Options
	SimCard       bool   `gorm:"not null;default:false" json:"sim_card"`
	CarSeatNeeded bool   `gorm:"not null;default:false" json:"car_seat_needed"`
	CarSeatType   string `gorm:"type:varchar(10)" json:"car_seat_type,omitempty"`

	// Payment block
	PaymentMethod string `gorm:"type:varchar(10);not null" json:"payment_method"`
	PaymentAmount int    `gorm:"not null" json:"payment_amount"`
	PaymentFee    int    `gorm:"not null;default:0" json:"payment_fee"`

	SpecialRequests string `json:"special_requests,omitempty"`

	// Pricing snapshot at submission time
	BasePrice         int `gorm:"not null" json:"base_price"`
	AdditionalCharges int `gorm:"not null;default:0" json:"additional_charges"`
	Subtotal          int `gorm:"not null" json:"subtotal"`

	Status      Status     `gorm:"type:varchar(12);check:status IN ('confirmed', 'cancelled', 'completed');default:'confirmed'" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	// Relationships
	Trips []BookingTrip `json:"trips,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;"`
}

// BookingTrip is one leg of a booking: leg 0 is outbound, leg 1 the return.
type BookingTrip struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingID  uuid.UUID `gorm:"type:uuid;index;not null" json:"booking_id"`
	LegOrder   int       `gorm:"not null;default:0" json:"leg_order"`
	Departure  string    `gorm:"not null" json:"departure"`
	Arrival    string    `gorm:"not null" json:"arrival"`
	Date       string    `gorm:"type:varchar(10);not null" json:"date"`
	Time       string    `gorm:"type:varchar(5);not null" json:"time"`
	Passengers int       `gorm:"not null" json:"passengers"`
	Luggage    int       `gorm:"not null;default:0" json:"luggage"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// TableName sets the table name for BookingTrip
func (BookingTrip) TableName() string {
	return "booking_trips"
}

// Helper methods for booking management
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

func (b *Booking) Cancel() {
	b.Status = StatusCancelled
	now := time.Now()
	b.CancelledAt = &now
	b.UpdatedAt = now
}
