package fares

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeRepository serves a fixed fare table keyed by region/departure/arrival.
type fakeRepository struct {
	fares []RouteFare
}

func (f *fakeRepository) ListRegions(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var regions []string
	for _, fare := range f.fares {
		if !seen[fare.Region] {
			seen[fare.Region] = true
			regions = append(regions, fare.Region)
		}
	}
	return regions, nil
}

func (f *fakeRepository) ListDepartures(ctx context.Context, region string) ([]string, error) {
	seen := map[string]bool{}
	var departures []string
	for _, fare := range f.fares {
		if fare.Region == region && !seen[fare.Departure] {
			seen[fare.Departure] = true
			departures = append(departures, fare.Departure)
		}
	}
	return departures, nil
}

func (f *fakeRepository) ListArrivals(ctx context.Context, region, departure string) ([]string, error) {
	seen := map[string]bool{}
	var arrivals []string
	for _, fare := range f.fares {
		if fare.Region == region && fare.Departure == departure && !seen[fare.Arrival] {
			seen[fare.Arrival] = true
			arrivals = append(arrivals, fare.Arrival)
		}
	}
	return arrivals, nil
}

func (f *fakeRepository) FindRoute(ctx context.Context, region, departure, arrival string) (*RouteFare, error) {
	for i := range f.fares {
		fare := f.fares[i]
		if fare.Region == region && fare.Departure == departure && fare.Arrival == arrival {
			return &fare, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) ListByRegion(ctx context.Context, region string) ([]RouteFare, error) {
	return f.fares, nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*RouteFare, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) Create(ctx context.Context, fare *RouteFare) error { return nil }
func (f *fakeRepository) Update(ctx context.Context, fare *RouteFare) error { return nil }
func (f *fakeRepository) Delete(ctx context.Context, id uuid.UUID) error    { return nil }

func testService() Service {
	repo := &fakeRepository{
		fares: []RouteFare{
			{Region: "NYC", Departure: "Manhattan", Arrival: "JFK Airport", ReservationFee: 50, LocalPaymentFee: 80, ArrivalIsAirport: true},
			{Region: "NYC", Departure: "JFK Airport", Arrival: "Manhattan", ReservationFee: 50, LocalPaymentFee: 80, DepartureIsAirport: true},
			{Region: "NYC", Departure: "Manhattan", Arrival: "Newark Airport", ReservationFee: 60, LocalPaymentFee: 90, ArrivalIsAirport: true},
			{Region: "LA", Departure: "Downtown", Arrival: "LAX Airport", ReservationFee: 45, LocalPaymentFee: 70, ArrivalIsAirport: true},
		},
	}
	return NewService(repo, nil)
}

func TestFindRouteNormalizesRegion(t *testing.T) {
	svc := testService()

	fare, err := svc.FindRoute(context.Background(), "nyc", "Manhattan", "JFK Airport")

	require.NoError(t, err)
	assert.Equal(t, 130, fare.TotalFare())
	assert.True(t, fare.RequiresFlightInfo())
}

func TestFindRouteIsDirectional(t *testing.T) {
	svc := testService()

	forward, err := svc.FindRoute(context.Background(), "NYC", "Manhattan", "JFK Airport")
	require.NoError(t, err)
	reverse, err := svc.FindRoute(context.Background(), "NYC", "JFK Airport", "Manhattan")
	require.NoError(t, err)

	assert.True(t, forward.ArrivalIsAirport)
	assert.True(t, reverse.DepartureIsAirport)
}

func TestFindRouteNotFound(t *testing.T) {
	svc := testService()

	_, err := svc.FindRoute(context.Background(), "NYC", "Manhattan", "Nowhere")

	var notFound *RouteNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "NYC", notFound.Region)
	assert.Equal(t, "Nowhere", notFound.Arrival)
	assert.Empty(t, notFound.Leg)
}

func TestGetArrivalsOnlyResolvableRoutes(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	arrivals, err := svc.GetArrivals(ctx, "NYC", "Manhattan")
	require.NoError(t, err)
	require.NotEmpty(t, arrivals)

	for _, arrival := range arrivals {
		_, err := svc.FindRoute(ctx, "NYC", "Manhattan", arrival)
		assert.NoError(t, err, "arrival %q must resolve", arrival)
	}
}

func TestResolveRoundTrip(t *testing.T) {
	svc := testService()

	outbound, ret, err := svc.ResolveRoundTrip(context.Background(), "NYC",
		"Manhattan", "JFK Airport", "JFK Airport", "Manhattan")

	require.NoError(t, err)
	assert.Equal(t, "Manhattan", outbound.Departure)
	assert.Equal(t, "Manhattan", ret.Arrival)
}

func TestResolveRoundTripFailsWholeOnMissingLeg(t *testing.T) {
	svc := testService()

	// Newark Airport -> Manhattan is absent, so the return leg cannot price.
	outbound, ret, err := svc.ResolveRoundTrip(context.Background(), "NYC",
		"Manhattan", "Newark Airport", "Newark Airport", "Manhattan")

	var notFound *RouteNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, LegReturn, notFound.Leg)
	assert.Nil(t, outbound)
	assert.Nil(t, ret)
}

func TestResolveRoundTripNamesOutboundLeg(t *testing.T) {
	svc := testService()

	_, _, err := svc.ResolveRoundTrip(context.Background(), "LA",
		"LAX Airport", "Downtown", "Downtown", "LAX Airport")

	var notFound *RouteNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, LegOutbound, notFound.Leg)
}
