package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/ketukakahala/rentalops/internal/clock"
	"github.com/ketukakahala/rentalops/internal/customer/domain"
	"github.com/ketukakahala/rentalops/pkg/db/option"
	"github.com/ketukakahala/rentalops/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  repository.Repository[domain.Customer]
}

type ServiceParam struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  repository.Repository[domain.Customer]
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		log:   p.Log.Named("customer.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := s.repo.Find(ctx, &domain.Customer{}, option.WithOrder("id desc"))
	if err != nil {
		return nil, err
	}
	customers := make([]domain.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, *row)
	}
	return customers, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Customer, error) {
	customerID, err := parseID(id)
	if err != nil {
		return domain.Customer{}, err
	}
	customer, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		return domain.Customer{}, err
	}
	if customer == nil {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return *customer, nil
}

func (s *Service) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	now := s.clock.Now()
	customer.ID = s.genID.Generate()
	if customer.CreatedDate.IsZero() {
		customer.CreatedDate = now
	}
	customer.UpdatedAt = now

	if err := s.repo.Create(ctx, &customer); err != nil {
		return domain.Customer{}, err
	}
	return customer, nil
}

func (s *Service) Update(ctx context.Context, id string, customer domain.Customer) (domain.Customer, error) {
	customerID, err := parseID(id)
	if err != nil {
		return domain.Customer{}, err
	}

	existing, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		return domain.Customer{}, err
	}
	if existing == nil {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}

	if err := s.repo.Update(ctx, customerID, map[string]any{
		"name":              customer.Name,
		"email":             customer.Email,
		"phone":             customer.Phone,
		"address":           customer.Address,
		"license":           customer.License,
		"license_number":    customer.LicenseNumber,
		"emergency_contact": customer.EmergencyContact,
		"license_document":  customer.LicenseDocument,
		"updated_at":        s.clock.Now(),
	}); err != nil {
		return domain.Customer{}, err
	}

	updated, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		return domain.Customer{}, err
	}
	return *updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	customerID, err := parseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, customerID)
}

func parseID(raw string) (int64, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.ErrInvalidID
	}
	return int64(id), nil
}
