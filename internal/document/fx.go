package document

import (
	"github.com/ketukakahala/rentalops/internal/document/domain"
	"github.com/ketukakahala/rentalops/internal/document/service"
	"github.com/ketukakahala/rentalops/pkg/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("document.service",
	fx.Provide(
		repository.ProvideStore[domain.Document],
		service.NewService,
	),
)
