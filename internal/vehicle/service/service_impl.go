package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/ketukakahala/rentalops/internal/clock"
	"github.com/ketukakahala/rentalops/internal/vehicle/domain"
	"github.com/ketukakahala/rentalops/pkg/db/option"
	"github.com/ketukakahala/rentalops/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  repository.Repository[domain.Vehicle]
}

type ServiceParam struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  repository.Repository[domain.Vehicle]
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		log:   p.Log.Named("vehicle.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Vehicle, error) {
	rows, err := s.repo.Find(ctx, &domain.Vehicle{}, option.WithOrder("id desc"))
	if err != nil {
		return nil, err
	}
	vehicles := make([]domain.Vehicle, 0, len(rows))
	for _, row := range rows {
		vehicles = append(vehicles, *row)
	}
	return vehicles, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Vehicle, error) {
	vehicleID, err := parseID(id)
	if err != nil {
		return domain.Vehicle{}, err
	}
	vehicle, err := s.repo.FindByID(ctx, vehicleID)
	if err != nil {
		return domain.Vehicle{}, err
	}
	if vehicle == nil {
		return domain.Vehicle{}, domain.ErrVehicleNotFound
	}
	return *vehicle, nil
}

func (s *Service) Create(ctx context.Context, vehicle domain.Vehicle) (domain.Vehicle, error) {
	now := s.clock.Now()
	vehicle.ID = s.genID.Generate()
	if vehicle.Status == "" {
		vehicle.Status = domain.DefaultStatus
	}
	vehicle.DailyRate = vehicle.DailyRate.Round(2)
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now

	if err := s.repo.Create(ctx, &vehicle); err != nil {
		return domain.Vehicle{}, err
	}
	return vehicle, nil
}

func (s *Service) Update(ctx context.Context, id string, vehicle domain.Vehicle) (domain.Vehicle, error) {
	vehicleID, err := parseID(id)
	if err != nil {
		return domain.Vehicle{}, err
	}

	existing, err := s.repo.FindByID(ctx, vehicleID)
	if err != nil {
		return domain.Vehicle{}, err
	}
	if existing == nil {
		return domain.Vehicle{}, domain.ErrVehicleNotFound
	}

	if err := s.repo.Update(ctx, vehicleID, map[string]any{
		"make":          vehicle.Make,
		"model":         vehicle.Model,
		"year":          vehicle.Year,
		"license_plate": vehicle.LicensePlate,
		"daily_rate":    vehicle.DailyRate.Round(2),
		"status":        vehicle.Status,
		"color":         vehicle.Color,
		"mileage":       vehicle.Mileage,
		"updated_at":    s.clock.Now(),
	}); err != nil {
		return domain.Vehicle{}, err
	}

	updated, err := s.repo.FindByID(ctx, vehicleID)
	if err != nil {
		return domain.Vehicle{}, err
	}
	return *updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	vehicleID, err := parseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, vehicleID)
}

func parseID(raw string) (int64, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.ErrInvalidID
	}
	return int64(id), nil
}
