package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/ketukakahala/rentalops/internal/clock"
	"github.com/ketukakahala/rentalops/internal/payment/domain"
	"github.com/ketukakahala/rentalops/pkg/db/option"
	"github.com/ketukakahala/rentalops/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  repository.Repository[domain.Payment]
}

type ServiceParam struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  repository.Repository[domain.Payment]
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		log:   p.Log.Named("payment.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Payment, error) {
	rows, err := s.repo.Find(ctx, &domain.Payment{}, option.WithOrder("id desc"))
	if err != nil {
		return nil, err
	}
	payments := make([]domain.Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, *row)
	}
	return payments, nil
}

func (s *Service) Create(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	payment.ID = s.genID.Generate()
	if payment.Date.IsZero() {
		payment.Date = clock.Today(s.clock)
	}
	payment.Amount = payment.Amount.Round(2)
	payment.CreatedAt = s.clock.Now()

	if err := s.repo.Create(ctx, &payment); err != nil {
		return domain.Payment{}, err
	}
	return payment, nil
}

func (s *Service) Update(ctx context.Context, id string, payment domain.Payment) (domain.Payment, error) {
	paymentID, err := parseID(id)
	if err != nil {
		return domain.Payment{}, err
	}

	existing, err := s.repo.FindByID(ctx, paymentID)
	if err != nil {
		return domain.Payment{}, err
	}
	if existing == nil {
		return domain.Payment{}, domain.ErrPaymentNotFound
	}

	if err := s.repo.Update(ctx, paymentID, map[string]any{
		"booking_id":     payment.BookingID,
		"customer_name":  payment.CustomerName,
		"amount":         payment.Amount.Round(2),
		"payment_method": payment.PaymentMethod,
		"date":           payment.Date,
		"notes":          payment.Notes,
	}); err != nil {
		return domain.Payment{}, err
	}

	updated, err := s.repo.FindByID(ctx, paymentID)
	if err != nil {
		return domain.Payment{}, err
	}
	return *updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	paymentID, err := parseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, paymentID)
}

func parseID(raw string) (int64, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.ErrInvalidID
	}
	return int64(id), nil
}
