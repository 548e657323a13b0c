package bookings

// TripRequest is one leg as submitted by the client.
type TripRequest struct {
	Departure  string `json:"departure" binding:"required"`
	Arrival    string `json:"arrival" binding:"required"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	Time       string `json:"time" binding:"required,datetime=15:04"`
	Passengers int    `json:"passengers" binding:"required,min=1,max=6"`
	Luggage    int    `json:"luggage" binding:"min=0,max=10"`
}

// FlightInfoRequest carries the airport-step details.
type FlightInfoRequest struct {
	FlightNumber string `json:"flight_number"`
	ArrivalTime  string `json:"arrival_time"`
}

// CustomerInfoRequest is the customer contact block. Required fields are
// enforced by the assembler so missing data surfaces as a structured
// per-field validation error, not a binding failure.
type CustomerInfoRequest struct {
	Name       string            `json:"name"`
	Phone      string            `json:"phone"`
	Email      string            `json:"email"`
	KakaoID    string            `json:"kakao_id"`
	FlightInfo FlightInfoRequest `json:"flight_info"`
}

// CarSeatRequest selects the on-site car seat add-on.
type CarSeatRequest struct {
	Needed bool   `json:"needed"`
	Type   string `json:"type" binding:"omitempty,oneof=infant regular booster"`
}

// OptionsRequest selects the bookable add-ons.
type OptionsRequest struct {
	SimCard bool           `json:"sim_card"`
	CarSeat CarSeatRequest `json:"car_seat"`
}

// BookingRequest is the full submission payload. Routes are re-resolved and
// the price recomputed server-side; any client-side price is ignored.
type BookingRequest struct {
	Region          string              `json:"region" binding:"required"`
	IsRoundTrip     bool                `json:"is_round_trip"`
	Trips           []TripRequest       `json:"trips" binding:"required,min=1,max=2,dive"`
	CustomerInfo    CustomerInfoRequest `json:"customer_info"`
	Options         OptionsRequest      `json:"options"`
	PaymentMethod   string              `json:"payment_method" binding:"required,oneof=deposit full"`
	SpecialRequests string              `json:"special_requests"`
}

// QuoteTripRequest is a leg as known so far during the flow. Location names
// may still be empty while the user is picking.
type QuoteTripRequest struct {
	Departure  string `json:"departure"`
	Arrival    string `json:"arrival"`
	Passengers int    `json:"passengers" binding:"omitempty,min=1,max=6"`
	Luggage    int    `json:"luggage" binding:"min=0,max=10"`
}

// QuoteRequest prices a draft booking. Unlike submission, nothing is
// required: the flow polls this on every change, and unresolved legs simply
// price to zero.
type QuoteRequest struct {
	Region        string             `json:"region"`
	IsRoundTrip   bool               `json:"is_round_trip"`
	Trips         []QuoteTripRequest `json:"trips" binding:"omitempty,max=2,dive"`
	Options       OptionsRequest     `json:"options"`
	PaymentMethod string             `json:"payment_method" binding:"omitempty,oneof=deposit full"`
}

// BookingListQuery filters the admin booking list.
type BookingListQuery struct {
	Status   string `form:"status" binding:"omitempty,oneof=confirmed cancelled completed"`
	Region   string `form:"region"`
	Phone    string `form:"phone"`
	DateFrom string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}
