package pricing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oneWayDraft(reservation, local, passengers, luggage int) Draft {
	return Draft{
		Region: "LA",
		Outbound: Leg{
			Fare:       &LegFare{ReservationFee: reservation, LocalPaymentFee: local},
			Passengers: passengers,
			Luggage:    luggage,
		},
		PaymentMethod: PaymentDeposit,
	}
}

func TestCalculateEmptyDraft(t *testing.T) {
	b := Calculate(Draft{PaymentMethod: PaymentDeposit})

	assert.Empty(t, b.LineItems)
	assert.Equal(t, 0, b.Total)
	assert.Equal(t, DepositOneWay, b.ReservationFeeFlat)
	assert.Equal(t, DepositOneWay, b.FinalAmount)
}

func TestCalculateReferenceScenario(t *testing.T) {
	// Region LA, fare 45+70, 5 passengers, 3 luggage, one-way deposit.
	b := Calculate(oneWayDraft(45, 70, 5, 3))

	require.Len(t, b.LineItems, 3)
	assert.Equal(t, LineItem{Label: "Outbound base fare", Amount: 115}, b.LineItems[0])
	assert.Equal(t, LineItem{Label: "Extra passengers (5)", Amount: 5}, b.LineItems[1])
	assert.Equal(t, LineItem{Label: "Extra luggage (3)", Amount: 5}, b.LineItems[2])
	assert.Equal(t, 125, b.Total)
	assert.Equal(t, 20, b.ReservationFeeFlat)
	assert.Equal(t, 20, b.FinalAmount)
}

func TestPassengerSurchargeTiers(t *testing.T) {
	cases := []struct {
		passengers int
		extra      int
	}{
		{1, 0},
		{4, 0},
		{5, 5},
		{6, 10},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("passengers=%d", tc.passengers), func(t *testing.T) {
			b := Calculate(oneWayDraft(50, 50, tc.passengers, 0))
			assert.Equal(t, 100+tc.extra, b.Total)
		})
	}
}

func TestLuggageSurchargeLinearPastThreshold(t *testing.T) {
	totalAt := func(luggage int) int {
		return Calculate(oneWayDraft(50, 50, 1, luggage)).Total
	}

	assert.Equal(t, 100, totalAt(0))
	assert.Equal(t, 100, totalAt(2))
	// Flat $5 floor at exactly 3, then exactly $5 per additional item.
	assert.Equal(t, 5, totalAt(3)-totalAt(2))
	assert.Equal(t, 5, totalAt(4)-totalAt(3))
	assert.Equal(t, 5, totalAt(10)-totalAt(9))
}

func TestRoundTripDiscountOnRunningTotal(t *testing.T) {
	d := Draft{
		Region:      "NYC",
		IsRoundTrip: true,
		Outbound: Leg{
			Fare:       &LegFare{ReservationFee: 25, LocalPaymentFee: 25},
			Passengers: 1,
		},
		Return: Leg{
			Fare:       &LegFare{ReservationFee: 25, LocalPaymentFee: 25},
			Passengers: 1,
		},
		PaymentMethod: PaymentDeposit,
	}

	b := Calculate(d)

	require.Len(t, b.LineItems, 3)
	assert.Equal(t, LineItem{Label: "Outbound base fare", Amount: 50}, b.LineItems[0])
	assert.Equal(t, LineItem{Label: "Return base fare", Amount: 50}, b.LineItems[1])
	assert.Equal(t, LineItem{Label: "Round trip discount (10%)", Amount: -10}, b.LineItems[2])
	assert.Equal(t, 90, b.Total)
	assert.Equal(t, DepositRoundTrip, b.ReservationFeeFlat)
	assert.Equal(t, DepositRoundTrip, b.FinalAmount)
}

func TestRoundTripDiscountIncludesSurcharges(t *testing.T) {
	d := Draft{
		IsRoundTrip: true,
		Outbound: Leg{
			Fare:       &LegFare{ReservationFee: 50, LocalPaymentFee: 50},
			Passengers: 6, // +10
			Luggage:    4, // +10
		},
		Return: Leg{
			Fare:       &LegFare{ReservationFee: 50, LocalPaymentFee: 50},
			Passengers: 5, // +5
		},
		PaymentMethod: PaymentFull,
	}

	b := Calculate(d)

	// Running total before discount: 100+10+10+100+5 = 225, discount rounds
	// 22.5 away from zero to 23.
	assert.Equal(t, 202, b.Total)
	assert.Equal(t, 202+roundMoney(202*0.2), b.FullPaymentAmount)
	assert.Equal(t, b.FullPaymentAmount, b.FinalAmount)
}

func TestRoundTripDiscountSkippedWithoutReturnRoute(t *testing.T) {
	d := oneWayDraft(50, 50, 1, 0)
	d.IsRoundTrip = true // return leg not resolved yet

	b := Calculate(d)

	assert.Equal(t, 100, b.Total)
	require.Len(t, b.LineItems, 1)
	// Reservation fee schedule follows the round-trip flag, not the legs.
	assert.Equal(t, DepositRoundTrip, b.ReservationFeeFlat)
}

func TestSimCardAddsFlatFee(t *testing.T) {
	d := oneWayDraft(45, 70, 1, 0)
	d.Options.SimCard = true

	b := Calculate(d)

	assert.Equal(t, 115+SimCardFee, b.Total)
	assert.Equal(t, LineItem{Label: "SIM card", Amount: SimCardFee}, b.LineItems[len(b.LineItems)-1])
}

func TestCarSeatIsNoteOnly(t *testing.T) {
	d := oneWayDraft(45, 70, 1, 0)
	d.Options.CarSeat = CarSeatOption{Needed: true, Type: CarSeatInfant}

	b := Calculate(d)

	assert.Equal(t, 115, b.Total, "car seat fee must never enter the total")
	last := b.LineItems[len(b.LineItems)-1]
	assert.Equal(t, 0, last.Amount)
	assert.Equal(t, "pay on site $10", last.Note)

	d.IsRoundTrip = true
	b = Calculate(d)
	last = b.LineItems[len(b.LineItems)-1]
	assert.Equal(t, "pay on site $20", last.Note)
}

func TestSimAndCarSeatTogether(t *testing.T) {
	base := Calculate(oneWayDraft(45, 70, 1, 0))

	d := oneWayDraft(45, 70, 1, 0)
	d.Options.SimCard = true
	d.Options.CarSeat = CarSeatOption{Needed: true, Type: CarSeatRegular}
	b := Calculate(d)

	assert.Equal(t, base.Total+SimCardFee, b.Total)
}

func TestFullPaymentSurcharge(t *testing.T) {
	d := oneWayDraft(45, 70, 1, 0)
	d.PaymentMethod = PaymentFull

	b := Calculate(d)

	assert.Equal(t, 115, b.Total)
	assert.Equal(t, 138, b.FullPaymentAmount) // 115 + round(23.0)
	assert.Equal(t, 138, b.FinalAmount)
	assert.GreaterOrEqual(t, b.FullPaymentAmount, b.Total)
}

func TestFinalAmountIgnoresTotalOnDeposit(t *testing.T) {
	d := oneWayDraft(500, 500, 6, 10)

	b := Calculate(d)

	assert.Equal(t, DepositOneWay, b.FinalAmount)
}

func TestTotalMatchesLineItemSum(t *testing.T) {
	d := Draft{
		IsRoundTrip: true,
		Outbound:    Leg{Fare: &LegFare{ReservationFee: 40, LocalPaymentFee: 60}, Passengers: 5, Luggage: 3},
		Return:      Leg{Fare: &LegFare{ReservationFee: 40, LocalPaymentFee: 60}, Passengers: 2, Luggage: 1},
		Options: Options{
			SimCard: true,
			CarSeat: CarSeatOption{Needed: true, Type: CarSeatBooster},
		},
		PaymentMethod: PaymentFull,
	}

	b := Calculate(d)

	sum := 0
	for _, item := range b.LineItems {
		sum += item.Amount
	}
	assert.Equal(t, b.Total, sum)
}

func TestCalculateIsDeterministic(t *testing.T) {
	d := oneWayDraft(45, 70, 5, 3)
	d.Options.SimCard = true

	first := Calculate(d)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Calculate(d))
	}
}
