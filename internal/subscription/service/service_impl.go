package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ketukakahala/rentalops/internal/clock"
	"github.com/ketukakahala/rentalops/internal/subscription/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dateLayout          = "2006-01-02"
	defaultCancelReason = "Customer request"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("subscription.service"),

		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) ListPlans(ctx context.Context) ([]domain.SubscriptionPlan, error) {
	return s.repo.ListPlans(ctx, s.db)
}

func (s *Service) GetPlan(ctx context.Context, id string) (domain.SubscriptionPlan, error) {
	planID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.SubscriptionPlan{}, domain.ErrInvalidPlan
	}

	plan, err := s.repo.FindPlanByID(ctx, s.db, planID)
	if err != nil {
		return domain.SubscriptionPlan{}, err
	}
	if plan == nil {
		return domain.SubscriptionPlan{}, domain.ErrPlanNotFound
	}
	return *plan, nil
}

// Subscribe derives all period dates from the start date. Calendar
// overflow follows time.AddDate normalization: subscribing on Jan 31
// gives a monthly period ending Mar 2 or 3.
func (s *Service) Subscribe(ctx context.Context, req domain.SubscribeRequest) (domain.SubscribeResponse, error) {
	customerID, err := snowflake.ParseString(strings.TrimSpace(req.CustomerID))
	if err != nil || customerID == 0 {
		return domain.SubscribeResponse{}, domain.ErrInvalidCustomer
	}
	planID, err := snowflake.ParseString(strings.TrimSpace(req.PlanID))
	if err != nil || planID == 0 {
		return domain.SubscribeResponse{}, domain.ErrInvalidPlan
	}

	plan, err := s.repo.FindPlanByID(ctx, s.db, planID)
	if err != nil {
		return domain.SubscribeResponse{}, err
	}
	if plan == nil {
		return domain.SubscribeResponse{}, domain.ErrPlanNotFound
	}

	start := clock.Today(s.clock)
	if strings.TrimSpace(req.StartDate) != "" {
		parsed, err := time.ParseInLocation(dateLayout, req.StartDate, time.UTC)
		if err != nil {
			return domain.SubscribeResponse{}, domain.ErrInvalidStartDate
		}
		start = parsed
	}

	var trialEnd *time.Time
	status := domain.SubscriptionStatusActive
	if plan.FreeTrialDays > 0 {
		t := start.AddDate(0, 0, plan.FreeTrialDays)
		trialEnd = &t
		status = domain.SubscriptionStatusTrial
	}

	var endDate, nextBilling *time.Time
	switch plan.BillingCycle {
	case domain.BillingCycleMonthly:
		t := start.AddDate(0, 1, 0)
		endDate, nextBilling = &t, &t
	case domain.BillingCycleYearly:
		t := start.AddDate(1, 0, 0)
		endDate, nextBilling = &t, &t
	case domain.BillingCycleOneTime:
		// Lifetime access, nothing to renew.
	}

	now := s.clock.Now()
	sub := domain.CustomerSubscription{
		ID:                 s.genID.Generate(),
		CustomerID:         customerID,
		PlanID:             planID,
		Status:             status,
		StartDate:          start,
		EndDate:            endDate,
		TrialEndDate:       trialEnd,
		AutoRenew:          true,
		NextBillingDate:    nextBilling,
		CurrentPeriodStart: start,
		CurrentPeriodEnd:   endDate,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Insert(ctx, s.db, &sub); err != nil {
		return domain.SubscribeResponse{}, err
	}

	s.log.Info("subscription created",
		zap.String("subscription_id", sub.ID.String()),
		zap.String("plan_id", planID.String()),
		zap.String("status", string(status)),
	)

	return domain.SubscribeResponse{
		SubscriptionID:  sub.ID.String(),
		Status:          sub.Status,
		StartDate:       sub.StartDate,
		EndDate:         sub.EndDate,
		TrialEndDate:    sub.TrialEndDate,
		NextBillingDate: sub.NextBillingDate,
	}, nil
}

func (s *Service) Cancel(ctx context.Context, id, reason string) error {
	subID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	sub, err := s.repo.FindByID(ctx, s.db, subID)
	if err != nil {
		return err
	}
	if sub == nil {
		return domain.ErrSubscriptionNotFound
	}

	if strings.TrimSpace(reason) == "" {
		reason = defaultCancelReason
	}

	now := s.clock.Now()
	return s.repo.Update(ctx, s.db, subID, map[string]any{
		"status":        domain.SubscriptionStatusCancelled,
		"cancelled_at":  now,
		"cancel_reason": reason,
		"auto_renew":    false,
		"updated_at":    now,
	})
}

// Reactivate restores active status but leaves endDate and
// nextBillingDate as they were at cancellation time; callers see the
// original period even when it has already lapsed.
func (s *Service) Reactivate(ctx context.Context, id string) error {
	subID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	sub, err := s.repo.FindByID(ctx, s.db, subID)
	if err != nil {
		return err
	}
	if sub == nil {
		return domain.ErrSubscriptionNotFound
	}

	return s.repo.Update(ctx, s.db, subID, map[string]any{
		"status":        domain.SubscriptionStatusActive,
		"cancelled_at":  nil,
		"cancel_reason": "",
		"auto_renew":    true,
		"updated_at":    s.clock.Now(),
	})
}

func (s *Service) ListByCustomer(ctx context.Context, customerID string) ([]domain.SubscriptionDetail, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(customerID))
	if err != nil {
		return nil, domain.ErrInvalidCustomer
	}
	return s.repo.ListByCustomer(ctx, s.db, id)
}
