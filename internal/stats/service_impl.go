// Package stats aggregates dashboard counters across the fleet tables.
package stats

import (
	"context"

	bookingdomain "github.com/ketukakahala/rentalops/internal/booking/domain"
	customerdomain "github.com/ketukakahala/rentalops/internal/customer/domain"
	paymentdomain "github.com/ketukakahala/rentalops/internal/payment/domain"
	vehicledomain "github.com/ketukakahala/rentalops/internal/vehicle/domain"
	"github.com/ketukakahala/rentalops/pkg/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type Stats struct {
	TotalVehicles  int64           `json:"totalVehicles"`
	ActiveBookings int64           `json:"activeBookings"`
	TotalCustomers int64           `json:"totalCustomers"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
}

type Service interface {
	Collect(ctx context.Context) (Stats, error)
}

type service struct {
	db        *gorm.DB
	vehicles  repository.Repository[vehicledomain.Vehicle]
	bookings  repository.Repository[bookingdomain.Booking]
	customers repository.Repository[customerdomain.Customer]
}

type ServiceParam struct {
	fx.In

	DB        *gorm.DB
	Vehicles  repository.Repository[vehicledomain.Vehicle]
	Bookings  repository.Repository[bookingdomain.Booking]
	Customers repository.Repository[customerdomain.Customer]
}

func NewService(p ServiceParam) Service {
	return &service{
		db:        p.DB,
		vehicles:  p.Vehicles,
		bookings:  p.Bookings,
		customers: p.Customers,
	}
}

func (s *service) Collect(ctx context.Context) (Stats, error) {
	totalVehicles, err := s.vehicles.Count(ctx, &vehicledomain.Vehicle{})
	if err != nil {
		return Stats{}, err
	}

	activeBookings, err := s.bookings.Count(ctx, &bookingdomain.Booking{Status: bookingdomain.DefaultStatus})
	if err != nil {
		return Stats{}, err
	}

	totalCustomers, err := s.customers.Count(ctx, &customerdomain.Customer{})
	if err != nil {
		return Stats{}, err
	}

	var revenue decimal.NullDecimal
	if err := s.db.WithContext(ctx).
		Model(&paymentdomain.Payment{}).
		Select("sum(amount)").
		Scan(&revenue).Error; err != nil {
		return Stats{}, err
	}

	total := decimal.Zero
	if revenue.Valid {
		total = revenue.Decimal
	}

	return Stats{
		TotalVehicles:  totalVehicles,
		ActiveBookings: activeBookings,
		TotalCustomers: totalCustomers,
		TotalRevenue:   total,
	}, nil
}
