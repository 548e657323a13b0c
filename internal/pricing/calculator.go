// Package pricing computes the payable amount for a draft booking. The
// calculator is a pure function: it can be called on every selection change
// without side effects, and it never fails — an incomplete draft simply
// prices to zero.
package pricing

import (
	"fmt"
	"math"
)

// Fee schedule. Amounts are whole currency units (USD).
const (
	// Passenger surcharge is a two-tier step, not proportional: exactly 5
	// passengers costs 5, anything above costs 10.
	passengerSurchargeThreshold = 5
	passengerSurchargeAtFive    = 5
	passengerSurchargeAboveFive = 10

	// Luggage is linear past the third item with a flat floor at exactly 3.
	luggageSurchargeThreshold = 3
	luggageSurchargePerItem   = 5

	SimCardFee = 32

	CarSeatFeeOneWay    = 10
	CarSeatFeeRoundTrip = 20

	DepositOneWay    = 20
	DepositRoundTrip = 30

	// FullPaymentSurchargePercent is added on top of the total when the
	// customer pays everything up front.
	FullPaymentSurchargePercent = 20

	// RoundTripDiscountPercent applies to the running total of both legs.
	RoundTripDiscountPercent = 10
)

// discountPolicy names the round-trip discount variant in effect. An older
// revision of the fare schedule used a flat $10; the current schedule is
// percentage-based. Exactly one policy is active at build time.
type discountPolicy int

const (
	discountPercentage discountPolicy = iota
	discountFlat
)

const (
	activeDiscountPolicy  = discountPercentage
	flatRoundTripDiscount = 10
)

// roundMoney rounds half away from zero, applied to every fractional fee.
func roundMoney(x float64) int {
	return int(math.Round(x))
}

// Calculate produces the itemized breakdown for a draft booking. Computation
// order is fixed: outbound leg, return leg, round-trip discount on the
// running total, then options. The car seat fee is collected on-site and is
// never part of the total.
func Calculate(d Draft) Breakdown {
	total := 0
	items := []LineItem{}

	if d.Outbound.Fare != nil {
		base := d.Outbound.Fare.Base()
		total += base
		items = append(items, LineItem{Label: "Outbound base fare", Amount: base})

		if extra := passengerSurcharge(d.Outbound.Passengers); extra > 0 {
			total += extra
			items = append(items, LineItem{
				Label:  fmt.Sprintf("Extra passengers (%d)", d.Outbound.Passengers),
				Amount: extra,
			})
		}

		if extra := luggageSurcharge(d.Outbound.Luggage); extra > 0 {
			total += extra
			items = append(items, LineItem{
				Label:  fmt.Sprintf("Extra luggage (%d)", d.Outbound.Luggage),
				Amount: extra,
			})
		}
	}

	if d.IsRoundTrip && d.Return.Fare != nil {
		base := d.Return.Fare.Base()
		total += base
		items = append(items, LineItem{Label: "Return base fare", Amount: base})

		if extra := passengerSurcharge(d.Return.Passengers); extra > 0 {
			total += extra
			items = append(items, LineItem{
				Label:  fmt.Sprintf("Return extra passengers (%d)", d.Return.Passengers),
				Amount: extra,
			})
		}

		if extra := luggageSurcharge(d.Return.Luggage); extra > 0 {
			total += extra
			items = append(items, LineItem{
				Label:  fmt.Sprintf("Return extra luggage (%d)", d.Return.Luggage),
				Amount: extra,
			})
		}

		discount := roundTripDiscount(total)
		total -= discount
		items = append(items, LineItem{
			Label:  fmt.Sprintf("Round trip discount (%d%%)", RoundTripDiscountPercent),
			Amount: -discount,
		})
	}

	if d.Options.SimCard {
		total += SimCardFee
		items = append(items, LineItem{Label: "SIM card", Amount: SimCardFee})
	}

	if d.Options.CarSeat.Needed {
		fee := CarSeatFeeOneWay
		if d.IsRoundTrip {
			fee = CarSeatFeeRoundTrip
		}
		items = append(items, LineItem{
			Label:  fmt.Sprintf("Car seat (pay on site $%d)", fee),
			Amount: 0,
			Note:   fmt.Sprintf("pay on site $%d", fee),
		})
	}

	reservationFee := DepositOneWay
	if d.IsRoundTrip {
		reservationFee = DepositRoundTrip
	}

	fullPayment := total + roundMoney(float64(total)*float64(FullPaymentSurchargePercent)/100)

	final := fullPayment
	if d.PaymentMethod == PaymentDeposit {
		final = reservationFee
	}

	return Breakdown{
		LineItems:          items,
		Total:              total,
		ReservationFeeFlat: reservationFee,
		FullPaymentAmount:  fullPayment,
		FinalAmount:        final,
	}
}

func passengerSurcharge(passengers int) int {
	if passengers < passengerSurchargeThreshold {
		return 0
	}
	if passengers == passengerSurchargeThreshold {
		return passengerSurchargeAtFive
	}
	return passengerSurchargeAboveFive
}

func luggageSurcharge(luggage int) int {
	if luggage < luggageSurchargeThreshold {
		return 0
	}
	return luggageSurchargePerItem + (luggage-luggageSurchargeThreshold)*luggageSurchargePerItem
}

func roundTripDiscount(runningTotal int) int {
	if activeDiscountPolicy == discountFlat {
		return flatRoundTripDiscount
	}
	return roundMoney(float64(runningTotal) * float64(RoundTripDiscountPercent) / 100)
}
