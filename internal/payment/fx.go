package payment

import (
	"github.com/ketukakahala/rentalops/internal/payment/domain"
	"github.com/ketukakahala/rentalops/internal/payment/service"
	"github.com/ketukakahala/rentalops/pkg/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("payment.service",
	fx.Provide(
		repository.ProvideStore[domain.Payment],
		service.NewService,
	),
)
