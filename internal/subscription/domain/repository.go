package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository interface {
	ListPlans(ctx context.Context, db *gorm.DB) ([]SubscriptionPlan, error)
	FindPlanByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*SubscriptionPlan, error)
	Insert(ctx context.Context, tx *gorm.DB, sub *CustomerSubscription) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*CustomerSubscription, error)
	Update(ctx context.Context, tx *gorm.DB, id snowflake.ID, fields map[string]any) error
	// IncrementUsage adds quantity to the subscription's usage counter
	// atomically in SQL, stamping updated_at with the caller's clock.
	IncrementUsage(ctx context.Context, tx *gorm.DB, id snowflake.ID, quantity decimal.Decimal, now time.Time) error
	ListByCustomer(ctx context.Context, db *gorm.DB, customerID snowflake.ID) ([]SubscriptionDetail, error)
}
