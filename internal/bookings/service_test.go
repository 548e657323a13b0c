package bookings

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"yelloride/internal/fares"
)

type fakeRepository struct {
	byID           map[uuid.UUID]*Booking
	byNumber       map[string]*Booking
	createAttempts int
	failCreates    int // first N creates fail with ErrDuplicateBookingNumber
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byID:     make(map[uuid.UUID]*Booking),
		byNumber: make(map[string]*Booking),
	}
}

func (f *fakeRepository) Create(ctx context.Context, booking *Booking) error {
	f.createAttempts++
	if f.createAttempts <= f.failCreates {
		return ErrDuplicateBookingNumber
	}
	if _, exists := f.byNumber[booking.BookingNumber]; exists {
		return ErrDuplicateBookingNumber
	}
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	booking.CreatedAt = time.Now()
	f.byID[booking.ID] = booking
	f.byNumber[booking.BookingNumber] = booking
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	booking, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeRepository) GetByNumber(ctx context.Context, number string) (*Booking, error) {
	booking, ok := f.byNumber[number]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeRepository) List(ctx context.Context, query BookingListQuery) ([]Booking, int64, error) {
	var result []Booking
	for _, b := range f.byNumber {
		if query.Status != "" && string(b.Status) != query.Status {
			continue
		}
		result = append(result, *b)
	}
	return result, int64(len(result)), nil
}

func (f *fakeRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status, cancelledAt *time.Time) error {
	booking, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	booking.Status = status
	booking.CancelledAt = cancelledAt
	return nil
}

type fakeResolver struct {
	fares map[string]*fares.RouteFare // key: region|departure|arrival
}

func newFakeResolver(records ...*fares.RouteFare) *fakeResolver {
	r := &fakeResolver{fares: make(map[string]*fares.RouteFare)}
	for _, rec := range records {
		r.fares[rec.Region+"|"+rec.Departure+"|"+rec.Arrival] = rec
	}
	return r
}

func (r *fakeResolver) FindRoute(ctx context.Context, region, departure, arrival string) (*fares.RouteFare, error) {
	fare, ok := r.fares[strings.ToUpper(region)+"|"+departure+"|"+arrival]
	if !ok {
		return nil, &fares.RouteNotFoundError{Region: region, Departure: departure, Arrival: arrival, Leg: fares.LegOutbound}
	}
	return fare, nil
}

func (r *fakeResolver) ResolveRoundTrip(ctx context.Context, region, outboundDep, outboundArr, returnDep, returnArr string) (*fares.RouteFare, *fares.RouteFare, error) {
	outbound, err := r.FindRoute(ctx, region, outboundDep, outboundArr)
	if err != nil {
		return nil, nil, err
	}
	ret, err := r.FindRoute(ctx, region, returnDep, returnArr)
	if err != nil {
		return nil, nil, &fares.RouteNotFoundError{Region: region, Departure: returnDep, Arrival: returnArr, Leg: fares.LegReturn}
	}
	return outbound, ret, nil
}

type fakePublisher struct {
	published []string
	err       error
}

func (p *fakePublisher) PublishBookingConfirmed(ctx context.Context, booking *Booking) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, booking.BookingNumber)
	return nil
}

func laFares() []*fares.RouteFare {
	return []*fares.RouteFare{
		{ID: uuid.New(), Region: "LA", Departure: "Downtown LA", Arrival: "LAX Airport", ReservationFee: 45, LocalPaymentFee: 70, ArrivalIsAirport: true},
		{ID: uuid.New(), Region: "LA", Departure: "LAX Airport", Arrival: "Downtown LA", ReservationFee: 45, LocalPaymentFee: 70, DepartureIsAirport: true},
	}
}

func validOneWayRequest() BookingRequest {
	return BookingRequest{
		Region:      "LA",
		IsRoundTrip: false,
		Trips: []TripRequest{
			{Departure: "Downtown LA", Arrival: "LAX Airport", Date: "2026-09-15", Time: "10:30", Passengers: 2, Luggage: 2},
		},
		CustomerInfo: CustomerInfoRequest{
			Name:    "Jane Doe",
			Phone:   "+1-213-555-0101",
			KakaoID: "janedoe",
		},
		PaymentMethod: "deposit",
	}
}

func validRoundTripRequest() BookingRequest {
	req := validOneWayRequest()
	req.IsRoundTrip = true
	req.Trips = append(req.Trips, TripRequest{
		Departure: "LAX Airport", Arrival: "Downtown LA",
		Date: "2026-09-20", Time: "14:00", Passengers: 2, Luggage: 2,
	})
	return req
}

func TestSubmitBookingOneWay(t *testing.T) {
	repo := newFakeRepository()
	publisher := &fakePublisher{}
	svc := NewService(repo, newFakeResolver(laFares()...), publisher)

	booking, err := svc.SubmitBooking(context.Background(), validOneWayRequest())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(booking.BookingNumber, "YR-"))
	assert.Equal(t, "PREMIUM_TAXI", booking.ServiceTypeCode)
	assert.Equal(t, "LA", booking.Region)
	assert.Equal(t, StatusConfirmed, booking.Status)
	require.Len(t, booking.Trips, 1)
	assert.Equal(t, 0, booking.Trips[0].LegOrder)

	// 45+70 base, no surcharges at 2 pax / 2 bags
	assert.Equal(t, 115, booking.Subtotal)
	assert.Equal(t, 20, booking.PaymentAmount) // one-way deposit
	assert.Equal(t, 0, booking.PaymentFee)

	assert.Equal(t, []string{booking.BookingNumber}, publisher.published)
}

func TestSubmitBookingRoundTripFullPayment(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, newFakeResolver(laFares()...), nil)

	req := validRoundTripRequest()
	req.PaymentMethod = "full"

	booking, err := svc.SubmitBooking(context.Background(), req)
	require.NoError(t, err)

	// 115 + 115 = 230, minus 10% round trip discount = 207
	assert.Equal(t, 207, booking.Subtotal)
	// full payment adds a 20% processing surcharge: 207 + 41 = 248
	assert.Equal(t, 248, booking.PaymentAmount)
	assert.Equal(t, 41, booking.PaymentFee)
	require.Len(t, booking.Trips, 2)
	assert.Equal(t, 1, booking.Trips[1].LegOrder)
}

func TestSubmitBookingValidation(t *testing.T) {
	svc := NewService(newFakeRepository(), newFakeResolver(laFares()...), nil)

	tests := []struct {
		name   string
		mutate func(*BookingRequest)
		field  string
	}{
		{"no trips", func(r *BookingRequest) { r.Trips = nil }, "trips"},
		{"round trip without return leg", func(r *BookingRequest) { r.IsRoundTrip = true }, "trips"},
		{"one-way with return leg", func(r *BookingRequest) {
			r.Trips = append(r.Trips, r.Trips[0])
		}, "trips"},
		{"missing name", func(r *BookingRequest) { r.CustomerInfo.Name = "" }, "customer_info.name"},
		{"missing phone", func(r *BookingRequest) { r.CustomerInfo.Phone = "" }, "customer_info.phone"},
		{"missing kakao id", func(r *BookingRequest) { r.CustomerInfo.KakaoID = "" }, "customer_info.kakao_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOneWayRequest()
			tt.mutate(&req)

			_, err := svc.SubmitBooking(context.Background(), req)
			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.field, validation.Field)
		})
	}
}

func TestSubmitBookingUnknownRoute(t *testing.T) {
	svc := NewService(newFakeRepository(), newFakeResolver(laFares()...), nil)

	req := validOneWayRequest()
	req.Trips[0].Arrival = "Santa Monica"

	_, err := svc.SubmitBooking(context.Background(), req)
	var notFound *fares.RouteNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestSubmitBookingRetriesOnDuplicateNumber(t *testing.T) {
	repo := newFakeRepository()
	repo.failCreates = 2
	svc := NewService(repo, newFakeResolver(laFares()...), nil)

	booking, err := svc.SubmitBooking(context.Background(), validOneWayRequest())
	require.NoError(t, err)
	assert.Equal(t, 3, repo.createAttempts)
	assert.NotEmpty(t, booking.BookingNumber)
}

func TestSubmitBookingGivesUpAfterRetries(t *testing.T) {
	repo := newFakeRepository()
	repo.failCreates = 10
	svc := NewService(repo, newFakeResolver(laFares()...), nil)

	_, err := svc.SubmitBooking(context.Background(), validOneWayRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateBookingNumber)
	assert.Equal(t, numberRetryLimit, repo.createAttempts)
}

func TestSubmitBookingPublishFailureDoesNotFailBooking(t *testing.T) {
	repo := newFakeRepository()
	publisher := &fakePublisher{err: errors.New("broker down")}
	svc := NewService(repo, newFakeResolver(laFares()...), publisher)

	booking, err := svc.SubmitBooking(context.Background(), validOneWayRequest())
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, booking.Status)
}

func TestQuotePriceToleratesUnresolvedLegs(t *testing.T) {
	svc := NewService(newFakeRepository(), newFakeResolver(laFares()...), nil)

	// Arrival not picked yet - nothing to price, but no error either.
	breakdown, err := svc.QuotePrice(context.Background(), QuoteRequest{
		Region: "LA",
		Trips:  []QuoteTripRequest{{Departure: "Downtown LA", Passengers: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, breakdown.Total)
	assert.Empty(t, breakdown.LineItems)
}

func TestQuotePriceResolvedLeg(t *testing.T) {
	svc := NewService(newFakeRepository(), newFakeResolver(laFares()...), nil)

	breakdown, err := svc.QuotePrice(context.Background(), QuoteRequest{
		Region: "LA",
		Trips: []QuoteTripRequest{
			{Departure: "Downtown LA", Arrival: "LAX Airport", Passengers: 5, Luggage: 3},
		},
	})
	require.NoError(t, err)

	// 115 base + 5 passenger surcharge + 5 luggage surcharge
	assert.Equal(t, 125, breakdown.Total)
	assert.Equal(t, 20, breakdown.FinalAmount)
}

func TestQuotePriceUnknownRouteSkipped(t *testing.T) {
	svc := NewService(newFakeRepository(), newFakeResolver(laFares()...), nil)

	breakdown, err := svc.QuotePrice(context.Background(), QuoteRequest{
		Region: "LA",
		Trips: []QuoteTripRequest{
			{Departure: "Downtown LA", Arrival: "Santa Monica", Passengers: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, breakdown.Total)
}

func TestCancelBooking(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, newFakeResolver(laFares()...), nil)

	booking, err := svc.SubmitBooking(context.Background(), validOneWayRequest())
	require.NoError(t, err)

	require.NoError(t, svc.CancelBooking(context.Background(), booking.ID))

	stored, err := repo.GetByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, stored.Status)
	assert.NotNil(t, stored.CancelledAt)
}

func TestStatusTransitionsAreOneWay(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, newFakeResolver(laFares()...), nil)

	booking, err := svc.SubmitBooking(context.Background(), validOneWayRequest())
	require.NoError(t, err)

	require.NoError(t, svc.CompleteBooking(context.Background(), booking.ID))

	// completed is terminal
	err = svc.CancelBooking(context.Background(), booking.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot become")
}

func TestGetBookingByNumber(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, newFakeResolver(laFares()...), nil)

	created, err := svc.SubmitBooking(context.Background(), validOneWayRequest())
	require.NoError(t, err)

	found, err := svc.GetBooking(context.Background(), created.BookingNumber)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetBooking(context.Background(), "YR-00000000-XXXX")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
