package fares

// FareRequest is the admin payload for creating or updating a fare record.
type FareRequest struct {
	Region             string `json:"region" binding:"required,alpha,max=8"`
	Departure          string `json:"departure" binding:"required"`
	Arrival            string `json:"arrival" binding:"required"`
	ReservationFee     int    `json:"reservation_fee" binding:"min=0"`
	LocalPaymentFee    int    `json:"local_payment_fee" binding:"min=0"`
	DepartureIsAirport bool   `json:"departure_is_airport"`
	ArrivalIsAirport   bool   `json:"arrival_is_airport"`
	Priority           int    `json:"priority" binding:"min=0"`
}

func (req *FareRequest) apply(fare *RouteFare) {
	fare.Region = req.Region
	fare.Departure = req.Departure
	fare.Arrival = req.Arrival
	fare.ReservationFee = req.ReservationFee
	fare.LocalPaymentFee = req.LocalPaymentFee
	fare.DepartureIsAirport = req.DepartureIsAirport
	fare.ArrivalIsAirport = req.ArrivalIsAirport
	fare.Priority = req.Priority
}
