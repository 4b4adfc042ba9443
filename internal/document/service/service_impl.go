package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/ketukakahala/rentalops/internal/clock"
	"github.com/ketukakahala/rentalops/internal/document/domain"
	"github.com/ketukakahala/rentalops/pkg/db/option"
	"github.com/ketukakahala/rentalops/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  repository.Repository[domain.Document]
}

type ServiceParam struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  repository.Repository[domain.Document]
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		log:   p.Log.Named("document.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Document, error) {
	rows, err := s.repo.Find(ctx, &domain.Document{}, option.WithOrder("id desc"))
	if err != nil {
		return nil, err
	}
	documents := make([]domain.Document, 0, len(rows))
	for _, row := range rows {
		documents = append(documents, *row)
	}
	return documents, nil
}

func (s *Service) Create(ctx context.Context, document domain.Document) (domain.Document, error) {
	document.ID = s.genID.Generate()
	if document.Date.IsZero() {
		document.Date = clock.Today(s.clock)
	}
	document.CreatedAt = s.clock.Now()

	if err := s.repo.Create(ctx, &document); err != nil {
		return domain.Document{}, err
	}
	return document, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	documentID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}
	return s.repo.Delete(ctx, int64(documentID))
}
