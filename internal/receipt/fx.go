package receipt

import (
	"github.com/ketukakahala/rentalops/internal/receipt/repository"
	"github.com/ketukakahala/rentalops/internal/receipt/service"
	"go.uber.org/fx"
)

var Module = fx.Module("receipt.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
