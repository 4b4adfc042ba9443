package subscription

import (
	"github.com/ketukakahala/rentalops/internal/subscription/repository"
	"github.com/ketukakahala/rentalops/internal/subscription/service"
	"go.uber.org/fx"
)

var Module = fx.Module("subscription.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
