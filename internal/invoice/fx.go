package invoice

import (
	"github.com/ketukakahala/rentalops/internal/invoice/repository"
	"github.com/ketukakahala/rentalops/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
