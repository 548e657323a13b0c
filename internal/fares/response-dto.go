package fares

// RouteFareResponse is the public shape of a resolved route, including the
// combined fare the UI shows before the itemized breakdown.
type RouteFareResponse struct {
	Departure          string `json:"departure"`
	Arrival            string `json:"arrival"`
	ReservationFee     int    `json:"reservation_fee"`
	LocalPaymentFee    int    `json:"local_payment_fee"`
	TotalPrice         int    `json:"total_price"`
	DepartureIsAirport bool   `json:"departure_is_airport"`
	ArrivalIsAirport   bool   `json:"arrival_is_airport"`
	Priority           int    `json:"priority"`
}

// ToResponse converts a RouteFare to its public response shape.
func (r *RouteFare) ToResponse() RouteFareResponse {
	return RouteFareResponse{
		Departure:          r.Departure,
		Arrival:            r.Arrival,
		ReservationFee:     r.ReservationFee,
		LocalPaymentFee:    r.LocalPaymentFee,
		TotalPrice:         r.TotalFare(),
		DepartureIsAirport: r.DepartureIsAirport,
		ArrivalIsAirport:   r.ArrivalIsAirport,
		Priority:           r.Priority,
	}
}
