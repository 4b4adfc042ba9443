package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/ketukakahala/rentalops/internal/clock"
	"github.com/ketukakahala/rentalops/internal/maintenance/domain"
	"github.com/ketukakahala/rentalops/pkg/db/option"
	"github.com/ketukakahala/rentalops/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  repository.Repository[domain.Maintenance]
}

type ServiceParam struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  repository.Repository[domain.Maintenance]
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		log:   p.Log.Named("maintenance.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Maintenance, error) {
	rows, err := s.repo.Find(ctx, &domain.Maintenance{}, option.WithOrder("id desc"))
	if err != nil {
		return nil, err
	}
	records := make([]domain.Maintenance, 0, len(rows))
	for _, row := range rows {
		records = append(records, *row)
	}
	return records, nil
}

func (s *Service) Create(ctx context.Context, record domain.Maintenance) (domain.Maintenance, error) {
	now := s.clock.Now()
	record.ID = s.genID.Generate()
	if record.Status == "" {
		record.Status = domain.DefaultStatus
	}
	if record.Date.IsZero() {
		record.Date = clock.Today(s.clock)
	}
	record.CreatedAt = now
	record.UpdatedAt = now

	if err := s.repo.Create(ctx, &record); err != nil {
		return domain.Maintenance{}, err
	}
	return record, nil
}

func (s *Service) Update(ctx context.Context, id string, record domain.Maintenance) (domain.Maintenance, error) {
	recordID, err := parseID(id)
	if err != nil {
		return domain.Maintenance{}, err
	}

	existing, err := s.repo.FindByID(ctx, recordID)
	if err != nil {
		return domain.Maintenance{}, err
	}
	if existing == nil {
		return domain.Maintenance{}, domain.ErrMaintenanceNotFound
	}

	if err := s.repo.Update(ctx, recordID, map[string]any{
		"vehicle_id":   record.VehicleID,
		"vehicle_name": record.VehicleName,
		"type":         record.Type,
		"description":  record.Description,
		"date":         record.Date,
		"status":       record.Status,
		"updated_at":   s.clock.Now(),
	}); err != nil {
		return domain.Maintenance{}, err
	}

	updated, err := s.repo.FindByID(ctx, recordID)
	if err != nil {
		return domain.Maintenance{}, err
	}
	return *updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	recordID, err := parseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, recordID)
}

func parseID(raw string) (int64, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.ErrInvalidID
	}
	return int64(id), nil
}
