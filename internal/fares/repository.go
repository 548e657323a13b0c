package fares

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository is the read-mostly fare store plus the admin write surface.
type Repository interface {
	// Query surface used by the resolver
	ListRegions(ctx context.Context) ([]string, error)
	ListDepartures(ctx context.Context, region string) ([]string, error)
	ListArrivals(ctx context.Context, region, departure string) ([]string, error)
	FindRoute(ctx context.Context, region, departure, arrival string) (*RouteFare, error)

	// Admin operations
	ListByRegion(ctx context.Context, region string) ([]RouteFare, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RouteFare, error)
	Create(ctx context.Context, fare *RouteFare) error
	Update(ctx context.Context, fare *RouteFare) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListRegions(ctx context.Context) ([]string, error) {
	var regions []string
	err := r.db.WithContext(ctx).
		Model(&RouteFare{}).
		Distinct().
		Order("region ASC").
		Pluck("region", &regions).Error
	return regions, err
}

func (r *repository) ListDepartures(ctx context.Context, region string) ([]string, error) {
	var departures []string
	err := r.db.WithContext(ctx).
		Model(&RouteFare{}).
		Where("region = ?", region).
		Distinct().
		Order("departure ASC").
		Pluck("departure", &departures).Error
	return departures, err
}

func (r *repository) ListArrivals(ctx context.Context, region, departure string) ([]string, error) {
	var arrivals []string
	err := r.db.WithContext(ctx).
		Model(&RouteFare{}).
		Where("region = ? AND departure = ?", region, departure).
		Distinct().
		Order("arrival ASC").
		Pluck("arrival", &arrivals).Error
	return arrivals, err
}

func (r *repository) FindRoute(ctx context.Context, region, departure, arrival string) (*RouteFare, error) {
	var fare RouteFare
	err := r.db.WithContext(ctx).
		Where("region = ? AND departure = ? AND arrival = ?", region, departure, arrival).
		First(&fare).Error
	if err != nil {
		return nil, err
	}
	return &fare, nil
}

func (r *repository) ListByRegion(ctx context.Context, region string) ([]RouteFare, error) {
	var fares []RouteFare
	query := r.db.WithContext(ctx).Model(&RouteFare{})
	if region != "" {
		query = query.Where("region = ?", region)
	}
	err := query.
		Order("region ASC, priority ASC, departure ASC").
		Find(&fares).Error
	return fares, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*RouteFare, error) {
	var fare RouteFare
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&fare).Error
	if err != nil {
		return nil, err
	}
	return &fare, nil
}

func (r *repository) Create(ctx context.Context, fare *RouteFare) error {
	return r.db.WithContext(ctx).Create(fare).Error
}

func (r *repository) Update(ctx context.Context, fare *RouteFare) error {
	return r.db.WithContext(ctx).Save(fare).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&RouteFare{}).Error
}
