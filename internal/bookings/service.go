package bookings

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"yelloride/internal/fares"
	"yelloride/internal/pricing"
	"yelloride/pkg/logger"
)

// RouteResolver is the slice of the fare service the assembler needs.
type RouteResolver interface {
	FindRoute(ctx context.Context, region, departure, arrival string) (*fares.RouteFare, error)
	ResolveRoundTrip(ctx context.Context, region, outboundDep, outboundArr, returnDep, returnArr string) (*fares.RouteFare, *fares.RouteFare, error)
}

// ConfirmationPublisher pushes booking-confirmed events to interested
// consumers (dispatch, messaging). Optional: a nil publisher disables it,
// and publish failures never fail the booking.
type ConfirmationPublisher interface {
	PublishBookingConfirmed(ctx context.Context, booking *Booking) error
}

// ValidationError names the request field that blocks submission. Required
// fields are never silently defaulted.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// numberRetryLimit bounds regeneration when a booking number collides.
const numberRetryLimit = 3

// Service interface defines the contract for booking business logic
type Service interface {
	QuotePrice(ctx context.Context, req QuoteRequest) (pricing.Breakdown, error)
	SubmitBooking(ctx context.Context, req BookingRequest) (*Booking, error)
	GetBooking(ctx context.Context, number string) (*Booking, error)

	// Admin operations
	ListBookings(ctx context.Context, query BookingListQuery) ([]Booking, int64, error)
	CancelBooking(ctx context.Context, id uuid.UUID) error
	CompleteBooking(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo      Repository
	resolver  RouteResolver
	publisher ConfirmationPublisher
	log       *logger.Logger
}

// NewService creates a new booking service instance
func NewService(repo Repository, resolver RouteResolver, publisher ConfirmationPublisher) Service {
	return &service{
		repo:      repo,
		resolver:  resolver,
		publisher: publisher,
		log:       logger.GetDefault(),
	}
}

// QuotePrice prices a draft booking. Legs whose route cannot be resolved yet
// are left unpriced rather than failing - the flow polls this endpoint on
// every selection change.
func (s *service) QuotePrice(ctx context.Context, req QuoteRequest) (pricing.Breakdown, error) {
	draft := pricing.Draft{
		Region:        req.Region,
		IsRoundTrip:   req.IsRoundTrip,
		Options:       toPricingOptions(req.Options),
		PaymentMethod: paymentMethodOrDefault(req.PaymentMethod),
	}

	legs := []*pricing.Leg{&draft.Outbound, &draft.Return}
	for i, trip := range req.Trips {
		if i >= len(legs) {
			break
		}
		legs[i].Passengers = trip.Passengers
		legs[i].Luggage = trip.Luggage

		if trip.Departure == "" || trip.Arrival == "" {
			continue
		}
		fare, err := s.resolver.FindRoute(ctx, req.Region, trip.Departure, trip.Arrival)
		if err != nil {
			var notFound *fares.RouteNotFoundError
			if errors.As(err, &notFound) {
				continue
			}
			return pricing.Breakdown{}, err
		}
		legFare := fare.LegFare()
		legs[i].Fare = &legFare
	}

	return pricing.Calculate(draft), nil
}

// SubmitBooking validates the request, resolves and re-prices the routes
// server-side, and persists the snapshot under a fresh booking number.
func (s *service) SubmitBooking(ctx context.Context, req BookingRequest) (*Booking, error) {
	if err := validateSubmission(req); err != nil {
		return nil, err
	}

	outboundFare, returnFare, err := s.resolveRoutes(ctx, req)
	if err != nil {
		return nil, err
	}

	breakdown := pricing.Calculate(buildDraft(req, outboundFare, returnFare))

	fee := 0
	if pricing.PaymentMethod(req.PaymentMethod) == pricing.PaymentFull {
		fee = breakdown.FullPaymentAmount - breakdown.Total
	}

	booking := &Booking{
		ServiceTypeCode: "PREMIUM_TAXI",
		Region:          outboundFare.Region,
		IsRoundTrip:     req.IsRoundTrip,
		CustomerName:    req.CustomerInfo.Name,
		CustomerPhone:   req.CustomerInfo.Phone,
		CustomerEmail:   req.CustomerInfo.Email,
		CustomerKakaoID: req.CustomerInfo.KakaoID,

		FlightNumber:      req.CustomerInfo.FlightInfo.FlightNumber,
		FlightArrivalTime: req.CustomerInfo.FlightInfo.ArrivalTime,

		SimCard:       req.Options.SimCard,
		CarSeatNeeded: req.Options.CarSeat.Needed,
		CarSeatType:   carSeatTypeOrDefault(req.Options.CarSeat),

		PaymentMethod: req.PaymentMethod,
		PaymentAmount: breakdown.FinalAmount,
		PaymentFee:    fee,

		SpecialRequests: req.SpecialRequests,

		BasePrice:         breakdown.Total,
		AdditionalCharges: 0,
		Subtotal:          breakdown.Total,

		Status: StatusConfirmed,
	}

	for i, trip := range req.Trips {
		booking.Trips = append(booking.Trips, BookingTrip{
			LegOrder:   i,
			Departure:  trip.Departure,
			Arrival:    trip.Arrival,
			Date:       trip.Date,
			Time:       trip.Time,
			Passengers: trip.Passengers,
			Luggage:    trip.Luggage,
		})
	}

	if err := s.createWithFreshNumber(ctx, booking); err != nil {
		return nil, err
	}

	s.log.LogBookingCreated(ctx, booking.ID.String(), booking.BookingNumber, booking.Region)

	if s.publisher != nil {
		if err := s.publisher.PublishBookingConfirmed(ctx, booking); err != nil {
			s.log.WarnContext(ctx, "booking confirmation publish failed",
				"booking_number", booking.BookingNumber, "error", err)
		}
	}

	return booking, nil
}

// createWithFreshNumber saves the booking, regenerating the number a bounded
// number of times on collision. Uniqueness itself is enforced by the DB
// constraint.
func (s *service) createWithFreshNumber(ctx context.Context, booking *Booking) error {
	for attempt := 0; attempt < numberRetryLimit; attempt++ {
		number, err := generateBookingNumber()
		if err != nil {
			return fmt.Errorf("failed to generate booking number: %w", err)
		}
		booking.BookingNumber = number

		err = s.repo.Create(ctx, booking)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrDuplicateBookingNumber) {
			return fmt.Errorf("failed to create booking: %w", err)
		}
	}
	return fmt.Errorf("failed to create booking: %w after %d attempts", ErrDuplicateBookingNumber, numberRetryLimit)
}

func (s *service) GetBooking(ctx context.Context, number string) (*Booking, error) {
	return s.repo.GetByNumber(ctx, number)
}

func (s *service) ListBookings(ctx context.Context, query BookingListQuery) ([]Booking, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *service) CancelBooking(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, StatusCancelled)
}

func (s *service) CompleteBooking(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, StatusCompleted)
}

func (s *service) transition(ctx context.Context, id uuid.UUID, next Status) error {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get booking: %w", err)
	}

	if !booking.Status.CanTransitionTo(next) {
		return fmt.Errorf("booking %s is %s and cannot become %s", booking.BookingNumber, booking.Status, next)
	}

	var cancelledAt *time.Time
	if next == StatusCancelled {
		now := time.Now()
		cancelledAt = &now
	}

	if err := s.repo.UpdateStatus(ctx, id, next, cancelledAt); err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	if next == StatusCancelled {
		s.log.LogBookingCancelled(ctx, booking.ID.String(), booking.BookingNumber)
	}
	return nil
}

// resolveRoutes resolves every leg the submission needs. A round trip
// resolves both legs or fails whole.
func (s *service) resolveRoutes(ctx context.Context, req BookingRequest) (*fares.RouteFare, *fares.RouteFare, error) {
	outbound := req.Trips[0]
	if req.IsRoundTrip {
		ret := req.Trips[1]
		return s.resolver.ResolveRoundTrip(ctx, req.Region,
			outbound.Departure, outbound.Arrival, ret.Departure, ret.Arrival)
	}

	fare, err := s.resolver.FindRoute(ctx, req.Region, outbound.Departure, outbound.Arrival)
	if err != nil {
		return nil, nil, err
	}
	return fare, nil, nil
}

// validateSubmission enforces completeness before anything touches the
// store. Missing required fields are rejected, never defaulted.
func validateSubmission(req BookingRequest) error {
	if len(req.Trips) == 0 {
		return &ValidationError{Field: "trips", Message: "outbound trip is required"}
	}
	if req.IsRoundTrip && len(req.Trips) < 2 {
		return &ValidationError{Field: "trips", Message: "round trip requires a return leg"}
	}
	if !req.IsRoundTrip && len(req.Trips) > 1 {
		return &ValidationError{Field: "trips", Message: "one-way booking cannot have a return leg"}
	}
	if req.CustomerInfo.Name == "" {
		return &ValidationError{Field: "customer_info.name", Message: "customer name is required"}
	}
	if req.CustomerInfo.Phone == "" {
		return &ValidationError{Field: "customer_info.phone", Message: "customer phone is required"}
	}
	if req.CustomerInfo.KakaoID == "" {
		return &ValidationError{Field: "customer_info.kakao_id", Message: "contact handle is required"}
	}
	return nil
}

func buildDraft(req BookingRequest, outboundFare, returnFare *fares.RouteFare) pricing.Draft {
	draft := pricing.Draft{
		Region:        req.Region,
		IsRoundTrip:   req.IsRoundTrip,
		Options:       toPricingOptions(req.Options),
		PaymentMethod: pricing.PaymentMethod(req.PaymentMethod),
	}

	outbound := outboundFare.LegFare()
	draft.Outbound = pricing.Leg{
		Fare:       &outbound,
		Passengers: req.Trips[0].Passengers,
		Luggage:    req.Trips[0].Luggage,
	}

	if req.IsRoundTrip && returnFare != nil {
		ret := returnFare.LegFare()
		draft.Return = pricing.Leg{
			Fare:       &ret,
			Passengers: req.Trips[1].Passengers,
			Luggage:    req.Trips[1].Luggage,
		}
	}

	return draft
}

func toPricingOptions(req OptionsRequest) pricing.Options {
	return pricing.Options{
		SimCard: req.SimCard,
		CarSeat: pricing.CarSeatOption{
			Needed: req.CarSeat.Needed,
			Type:   pricing.CarSeatType(carSeatTypeOrDefault(req.CarSeat)),
		},
	}
}

func carSeatTypeOrDefault(req CarSeatRequest) string {
	if !req.Needed {
		return ""
	}
	if req.Type == "" {
		return string(pricing.CarSeatRegular)
	}
	return req.Type
}

func paymentMethodOrDefault(method string) pricing.PaymentMethod {
	if method == "" {
		return pricing.PaymentDeposit
	}
	return pricing.PaymentMethod(method)
}

// generateBookingNumber builds a YR-prefixed reference: date plus four
// random uppercase letters, e.g. YR-20250831-KQZM.
func generateBookingNumber() (string, error) {
	timestamp := time.Now().Format("20060102")

	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	randomPart := make([]byte, 4)

	for i := range randomPart {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		if err != nil {
			return "", err
		}
		randomPart[i] = letters[num.Int64()]
	}

	return fmt.Sprintf("YR-%s-%s", timestamp, string(randomPart)), nil
}
