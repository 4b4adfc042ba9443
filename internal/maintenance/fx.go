package maintenance

import (
	"github.com/ketukakahala/rentalops/internal/maintenance/domain"
	"github.com/ketukakahala/rentalops/internal/maintenance/service"
	"github.com/ketukakahala/rentalops/pkg/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("maintenance.service",
	fx.Provide(
		repository.ProvideStore[domain.Maintenance],
		service.NewService,
	),
)
