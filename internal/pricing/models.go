package pricing

// PaymentMethod selects how much the customer pays at booking time.
type PaymentMethod string

const (
	// PaymentDeposit pays the flat reservation fee now, balance on-site.
	PaymentDeposit PaymentMethod = "deposit"
	// PaymentFull pays the whole total plus a surcharge now.
	PaymentFull PaymentMethod = "full"
)

// CarSeatType enumerates the car seat variants offered on-site.
type CarSeatType string

const (
	CarSeatInfant  CarSeatType = "infant"
	CarSeatRegular CarSeatType = "regular"
	CarSeatBooster CarSeatType = "booster"
)

// LegFare is the two-part base fare of a resolved route.
type LegFare struct {
	ReservationFee  int `json:"reservation_fee"`
	LocalPaymentFee int `json:"local_payment_fee"`
}

// Base returns the full base fare for one leg.
func (f LegFare) Base() int {
	return f.ReservationFee + f.LocalPaymentFee
}

// Leg is one directional trip in a draft booking. Fare is nil until the
// route has been resolved.
type Leg struct {
	Fare       *LegFare `json:"fare,omitempty"`
	Passengers int      `json:"passengers"`
	Luggage    int      `json:"luggage"`
}

// CarSeatOption describes the car seat add-on. The fee is always collected
// on-site and never enters the payable total.
type CarSeatOption struct {
	Needed bool        `json:"needed"`
	Type   CarSeatType `json:"type"`
}

// Options are the bookable add-ons.
type Options struct {
	SimCard bool          `json:"sim_card"`
	CarSeat CarSeatOption `json:"car_seat"`
}

// Draft is a booking in progress, as far as pricing is concerned. It is a
// plain value; the calculator never mutates it.
type Draft struct {
	Region        string        `json:"region"`
	IsRoundTrip   bool          `json:"is_round_trip"`
	Outbound      Leg           `json:"outbound"`
	Return        Leg           `json:"return"`
	Options       Options       `json:"options"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// LineItem is one row of the price breakdown. Amount may be zero or negative
// (discounts); a non-empty Note marks amounts collected out-of-band.
type LineItem struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
	Note   string `json:"note,omitempty"`
}

// Breakdown is the itemized result of a price calculation. Line items are
// ordered exactly as they were computed.
type Breakdown struct {
	LineItems          []LineItem `json:"line_items"`
	Total              int        `json:"total"`
	ReservationFeeFlat int        `json:"reservation_fee_flat"`
	FullPaymentAmount  int        `json:"full_payment_amount"`
	FinalAmount        int        `json:"final_amount"`
}
