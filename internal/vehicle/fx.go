package vehicle

import (
	"github.com/ketukakahala/rentalops/internal/vehicle/domain"
	"github.com/ketukakahala/rentalops/internal/vehicle/service"
	"github.com/ketukakahala/rentalops/pkg/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("vehicle.service",
	fx.Provide(
		repository.ProvideStore[domain.Vehicle],
		service.NewService,
	),
)
