package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/ketukakahala/rentalops/internal/booking/domain"
	"github.com/ketukakahala/rentalops/internal/clock"
	"github.com/ketukakahala/rentalops/pkg/db/option"
	"github.com/ketukakahala/rentalops/pkg/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  repository.Repository[domain.Booking]
}

type ServiceParam struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  repository.Repository[domain.Booking]
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		log:   p.Log.Named("booking.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Booking, error) {
	rows, err := s.repo.Find(ctx, &domain.Booking{}, option.WithOrder("id desc"))
	if err != nil {
		return nil, err
	}
	bookings := make([]domain.Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, *row)
	}
	return bookings, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Booking, error) {
	bookingID, err := parseID(id)
	if err != nil {
		return domain.Booking{}, err
	}
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return domain.Booking{}, err
	}
	if booking == nil {
		return domain.Booking{}, domain.ErrBookingNotFound
	}
	return *booking, nil
}

func (s *Service) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	now := s.clock.Now()
	booking.ID = s.genID.Generate()
	if booking.Status == "" {
		booking.Status = domain.DefaultStatus
	}
	if booking.FuelLevel == "" {
		booking.FuelLevel = domain.DefaultFuelLevel
	}
	if booking.SecurityDeposit.IsZero() {
		booking.SecurityDeposit = decimal.NewFromInt(domain.DefaultSecurityDeposit)
	}
	if len(booking.Damages) == 0 {
		booking.Damages = []byte("[]")
	}
	booking.SecurityDeposit = booking.SecurityDeposit.Round(2)
	booking.TotalAmount = booking.TotalAmount.Round(2)
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if err := s.repo.Create(ctx, &booking); err != nil {
		return domain.Booking{}, err
	}
	return booking, nil
}

func (s *Service) Update(ctx context.Context, id string, booking domain.Booking) (domain.Booking, error) {
	bookingID, err := parseID(id)
	if err != nil {
		return domain.Booking{}, err
	}

	existing, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return domain.Booking{}, err
	}
	if existing == nil {
		return domain.Booking{}, domain.ErrBookingNotFound
	}

	damages := booking.Damages
	if len(damages) == 0 {
		damages = []byte("[]")
	}

	if err := s.repo.Update(ctx, bookingID, map[string]any{
		"customer_name":     booking.CustomerName,
		"customer_email":    booking.CustomerEmail,
		"customer_phone":    booking.CustomerPhone,
		"driver_license":    booking.DriverLicense,
		"emergency_contact": booking.EmergencyContact,
		"vehicle_id":        booking.VehicleID,
		"vehicle_name":      booking.VehicleName,
		"license_plate":     booking.LicensePlate,
		"start_date":        booking.StartDate,
		"end_date":          booking.EndDate,
		"odometer_reading":  booking.OdometerReading,
		"fuel_level":        booking.FuelLevel,
		"security_deposit":  booking.SecurityDeposit.Round(2),
		"total_amount":      booking.TotalAmount.Round(2),
		"damages":           damages,
		"damage_notes":      booking.DamageNotes,
		"status":            booking.Status,
		"license_document":  booking.LicenseDocument,
		"updated_at":        s.clock.Now(),
	}); err != nil {
		return domain.Booking{}, err
	}

	updated, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return domain.Booking{}, err
	}
	return *updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	bookingID, err := parseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, bookingID)
}

func parseID(raw string) (int64, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.ErrInvalidID
	}
	return int64(id), nil
}
