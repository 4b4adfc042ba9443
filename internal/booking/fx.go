package booking

import (
	"github.com/ketukakahala/rentalops/internal/booking/domain"
	"github.com/ketukakahala/rentalops/internal/booking/service"
	"github.com/ketukakahala/rentalops/pkg/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("booking.service",
	fx.Provide(
		repository.ProvideStore[domain.Booking],
		service.NewService,
	),
)
