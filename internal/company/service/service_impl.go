package service

import (
	"context"

	"github.com/ketukakahala/rentalops/internal/clock"
	"github.com/ketukakahala/rentalops/internal/company/domain"
	"github.com/ketukakahala/rentalops/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	log   *zap.Logger
	clock clock.Clock
	repo  repository.Repository[domain.CompanyInfo]
}

type ServiceParam struct {
	fx.In

	Log   *zap.Logger
	Clock clock.Clock
	Repo  repository.Repository[domain.CompanyInfo]
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		log:   p.Log.Named("company.service"),
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Get(ctx context.Context) (domain.CompanyInfo, error) {
	company, err := s.repo.FindByID(ctx, domain.CompanyRowID)
	if err != nil {
		return domain.CompanyInfo{}, err
	}
	if company == nil {
		return domain.CompanyInfo{}, domain.ErrCompanyNotFound
	}
	return *company, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateCompanyRequest) (domain.CompanyInfo, error) {
	if err := s.repo.Update(ctx, domain.CompanyRowID, map[string]any{
		"name":       req.Name,
		"phone":      req.Phone,
		"email":      req.Email,
		"address":    req.Address,
		"website":    req.Website,
		"logo":       req.Logo,
		"updated_at": s.clock.Now(),
	}); err != nil {
		return domain.CompanyInfo{}, err
	}
	return s.Get(ctx)
}
