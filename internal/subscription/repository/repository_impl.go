package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ketukakahala/rentalops/internal/subscription/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type repository struct{}

func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) ListPlans(ctx context.Context, db *gorm.DB) ([]domain.SubscriptionPlan, error) {
	var plans []domain.SubscriptionPlan
	err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("price asc").
		Find(&plans).Error
	return plans, err
}

func (r *repository) FindPlanByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.SubscriptionPlan, error) {
	var plan domain.SubscriptionPlan
	err := db.WithContext(ctx).Where("id = ?", id).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *repository) Insert(ctx context.Context, tx *gorm.DB, sub *domain.CustomerSubscription) error {
	return tx.WithContext(ctx).Create(sub).Error
}

func (r *repository) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.CustomerSubscription, error) {
	var sub domain.CustomerSubscription
	err := db.WithContext(ctx).Where("id = ?", id).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *repository) Update(ctx context.Context, tx *gorm.DB, id snowflake.ID, fields map[string]any) error {
	return tx.WithContext(ctx).
		Model(&domain.CustomerSubscription{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repository) IncrementUsage(ctx context.Context, tx *gorm.DB, id snowflake.ID, quantity decimal.Decimal, now time.Time) error {
	return tx.WithContext(ctx).
		Model(&domain.CustomerSubscription{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"usage_count": gorm.Expr("usage_count + ?", quantity),
			"updated_at":  now,
		}).Error
}

func (r *repository) ListByCustomer(ctx context.Context, db *gorm.DB, customerID snowflake.ID) ([]domain.SubscriptionDetail, error) {
	var details []domain.SubscriptionDetail
	err := db.WithContext(ctx).
		Table("customer_subscriptions").
		Select("customer_subscriptions.*, subscription_plans.name as plan_name, subscription_plans.type as plan_type, subscription_plans.price as plan_price, subscription_plans.billing_cycle").
		Joins("inner join subscription_plans on subscription_plans.id = customer_subscriptions.plan_id").
		Where("customer_subscriptions.customer_id = ?", customerID).
		Order("customer_subscriptions.created_at desc").
		Find(&details).Error
	return details, err
}
