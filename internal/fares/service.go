package fares

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yelloride/internal/shared/constants"
	"yelloride/pkg/cache"
	"yelloride/pkg/logger"
)

// Leg names used in round-trip resolution errors.
const (
	LegOutbound = "outbound"
	LegReturn   = "return"
)

// RouteNotFoundError means the (region, departure, arrival) triple has no
// fare record. Leg is set when the lookup was part of a round-trip
// resolution, naming which half failed.
type RouteNotFoundError struct {
	Region    string
	Departure string
	Arrival   string
	Leg       string
}

func (e *RouteNotFoundError) Error() string {
	if e.Leg != "" {
		return fmt.Sprintf("no fare for %s route %s: %s to %s", e.Leg, e.Region, e.Departure, e.Arrival)
	}
	return fmt.Sprintf("no fare for route %s: %s to %s", e.Region, e.Departure, e.Arrival)
}

// Service interface defines the route resolver contract
type Service interface {
	GetRegions(ctx context.Context) ([]string, error)
	GetDepartures(ctx context.Context, region string) ([]string, error)
	GetArrivals(ctx context.Context, region, departure string) ([]string, error)
	FindRoute(ctx context.Context, region, departure, arrival string) (*RouteFare, error)
	ResolveRoundTrip(ctx context.Context, region, outboundDep, outboundArr, returnDep, returnArr string) (*RouteFare, *RouteFare, error)

	// Admin operations
	ListFares(ctx context.Context, region string) ([]RouteFare, error)
	GetFare(ctx context.Context, id uuid.UUID) (*RouteFare, error)
	CreateFare(ctx context.Context, fare *RouteFare) error
	UpdateFare(ctx context.Context, fare *RouteFare) error
	DeleteFare(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  Repository
	cache cache.Service
	log   *logger.Logger
}

// NewService creates a route resolver over the fare store. The cache is
// optional; pass nil to query the store directly.
func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
		log:   logger.GetDefault(),
	}
}

// normalizeRegion upper-cases region codes; departure and arrival names are
// matched exactly since they come from controlled lists.
func normalizeRegion(region string) string {
	return strings.ToUpper(strings.TrimSpace(region))
}

func (s *service) GetRegions(ctx context.Context) ([]string, error) {
	var regions []string
	err := s.cached(ctx, constants.RegionsKey(), &regions, func() (interface{}, error) {
		return s.repo.ListRegions(ctx)
	})
	return regions, err
}

func (s *service) GetDepartures(ctx context.Context, region string) ([]string, error) {
	region = normalizeRegion(region)

	var departures []string
	err := s.cached(ctx, constants.DeparturesKey(region), &departures, func() (interface{}, error) {
		return s.repo.ListDepartures(ctx, region)
	})
	return departures, err
}

func (s *service) GetArrivals(ctx context.Context, region, departure string) ([]string, error) {
	region = normalizeRegion(region)

	var arrivals []string
	err := s.cached(ctx, constants.ArrivalsKey(region, departure), &arrivals, func() (interface{}, error) {
		return s.repo.ListArrivals(ctx, region, departure)
	})
	return arrivals, err
}

func (s *service) FindRoute(ctx context.Context, region, departure, arrival string) (*RouteFare, error) {
	return s.findRoute(ctx, region, departure, arrival, "")
}

// ResolveRoundTrip looks up both legs and fails whole if either is missing —
// a booking must never enter pricing with half a round trip priced.
func (s *service) ResolveRoundTrip(ctx context.Context, region, outboundDep, outboundArr, returnDep, returnArr string) (*RouteFare, *RouteFare, error) {
	outbound, err := s.findRoute(ctx, region, outboundDep, outboundArr, LegOutbound)
	if err != nil {
		return nil, nil, err
	}

	ret, err := s.findRoute(ctx, region, returnDep, returnArr, LegReturn)
	if err != nil {
		return nil, nil, err
	}

	return outbound, ret, nil
}

func (s *service) findRoute(ctx context.Context, region, departure, arrival, leg string) (*RouteFare, error) {
	region = normalizeRegion(region)

	var fare RouteFare
	err := s.cached(ctx, constants.RouteFareKey(region, departure, arrival), &fare, func() (interface{}, error) {
		found, err := s.repo.FindRoute(ctx, region, departure, arrival)
		if err != nil {
			return nil, err
		}
		return found, nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.LogRouteMiss(ctx, region, departure, arrival)
			return nil, &RouteNotFoundError{Region: region, Departure: departure, Arrival: arrival, Leg: leg}
		}
		return nil, fmt.Errorf("route lookup failed: %w", err)
	}

	return &fare, nil
}

// cached runs fetcher through the cache-aside helper when a cache is
// configured, otherwise hits the store directly.
func (s *service) cached(ctx context.Context, key string, dest interface{}, fetcher func() (interface{}, error)) error {
	if s.cache == nil {
		value, err := fetcher()
		if err != nil {
			return err
		}
		return cache.CopyValue(dest, value)
	}
	return s.cache.GetOrSet(ctx, key, constants.TTLFareData, fetcher, dest)
}

func (s *service) ListFares(ctx context.Context, region string) ([]RouteFare, error) {
	return s.repo.ListByRegion(ctx, normalizeRegion(region))
}

func (s *service) GetFare(ctx context.Context, id uuid.UUID) (*RouteFare, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) CreateFare(ctx context.Context, fare *RouteFare) error {
	fare.Region = normalizeRegion(fare.Region)
	if err := s.repo.Create(ctx, fare); err != nil {
		return fmt.Errorf("failed to create fare: %w", err)
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *service) UpdateFare(ctx context.Context, fare *RouteFare) error {
	fare.Region = normalizeRegion(fare.Region)
	if err := s.repo.Update(ctx, fare); err != nil {
		return fmt.Errorf("failed to update fare: %w", err)
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *service) DeleteFare(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete fare: %w", err)
	}
	s.invalidateCache(ctx)
	return nil
}

// invalidateCache drops every cached fare entry after an admin write. A full
// wipe is fine here: the fare table is small and writes are rare.
func (s *service) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, constants.FareCachePattern()); err != nil {
		s.log.WarnContext(ctx, "fare cache invalidation failed", "error", err)
	}
}
