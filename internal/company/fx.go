package company

import (
	"github.com/ketukakahala/rentalops/internal/company/domain"
	"github.com/ketukakahala/rentalops/internal/company/service"
	"github.com/ketukakahala/rentalops/pkg/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("company",
	fx.Provide(
		repository.ProvideStore[domain.CompanyInfo],
		service.NewService,
	),
)
