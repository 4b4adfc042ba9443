package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/ketukakahala/rentalops/internal/clock"
	subscriptiondomain "github.com/ketukakahala/rentalops/internal/subscription/domain"
	"github.com/ketukakahala/rentalops/internal/usage/domain"
	"github.com/ketukakahala/rentalops/pkg/telemetry"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID   *snowflake.Node
	clock   clock.Clock
	subRepo subscriptiondomain.Repository
	metrics *telemetry.Metrics
}

type ServiceParam struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Clock   clock.Clock
	SubRepo subscriptiondomain.Repository
	Metrics *telemetry.Metrics `optional:"true"`
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("usage.service"),

		genID:   p.GenID,
		clock:   p.Clock,
		subRepo: p.SubRepo,
		metrics: p.Metrics,
	}
}

// Record appends a usage record and bumps the subscription's usage
// counter in the same transaction. Zero quantity or unit price is
// rejected as missing input.
func (s *Service) Record(ctx context.Context, req domain.RecordUsageRequest) (domain.RecordUsageResponse, error) {
	subscriptionID, err := snowflake.ParseString(strings.TrimSpace(req.SubscriptionID))
	if err != nil || subscriptionID == 0 {
		return domain.RecordUsageResponse{}, domain.ErrInvalidSubscription
	}
	customerID, err := snowflake.ParseString(strings.TrimSpace(req.CustomerID))
	if err != nil || customerID == 0 {
		return domain.RecordUsageResponse{}, domain.ErrInvalidCustomer
	}
	if strings.TrimSpace(req.UsageType) == "" {
		return domain.RecordUsageResponse{}, domain.ErrInvalidUsageType
	}
	if req.Quantity.Sign() <= 0 {
		return domain.RecordUsageResponse{}, domain.ErrInvalidQuantity
	}
	if req.UnitPrice.Sign() <= 0 {
		return domain.RecordUsageResponse{}, domain.ErrInvalidUnitPrice
	}

	amount := req.Quantity.Mul(req.UnitPrice).Round(2)
	record := domain.UsageRecord{
		ID:             s.genID.Generate(),
		SubscriptionID: subscriptionID,
		CustomerID:     customerID,
		UsageType:      req.UsageType,
		Quantity:       req.Quantity,
		UnitPrice:      req.UnitPrice,
		Amount:         amount,
		Description:    req.Description,
		RecordDate:     clock.Today(s.clock),
		CreatedAt:      s.clock.Now(),
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sub, err := s.subRepo.FindByID(ctx, tx, subscriptionID)
		if err != nil {
			return err
		}
		if sub == nil {
			return subscriptiondomain.ErrSubscriptionNotFound
		}

		if err := tx.WithContext(ctx).Create(&record).Error; err != nil {
			return err
		}
		return s.subRepo.IncrementUsage(ctx, tx, subscriptionID, req.Quantity, s.clock.Now())
	}); err != nil {
		return domain.RecordUsageResponse{}, err
	}

	s.metrics.ObserveUsageEvent(req.UsageType)
	s.log.Info("usage recorded",
		zap.String("subscription_id", subscriptionID.String()),
		zap.String("amount", amount.String()),
	)

	return domain.RecordUsageResponse{
		Amount:   amount,
		Quantity: req.Quantity,
	}, nil
}
