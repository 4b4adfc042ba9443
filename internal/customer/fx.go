package customer

import (
	"github.com/ketukakahala/rentalops/internal/customer/domain"
	"github.com/ketukakahala/rentalops/internal/customer/service"
	"github.com/ketukakahala/rentalops/pkg/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(
		repository.ProvideStore[domain.Customer],
		service.NewService,
	),
)
