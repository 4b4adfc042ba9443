// Package domain contains persistence models and contracts for
// subscription plans and customer subscriptions.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// SubscriptionStatus represents subscription lifecycle states.
type SubscriptionStatus string

const (
	SubscriptionStatusTrial     SubscriptionStatus = "trial"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// BillingCycle determines how subscription period dates are derived.
type BillingCycle string

const (
	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleYearly  BillingCycle = "yearly"
	BillingCycleOneTime BillingCycle = "one_time"
)

// SubscriptionPlan is a catalog entry. Plans are seeded at startup and
// read-only through the API.
type SubscriptionPlan struct {
	ID            snowflake.ID    `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"type:text;not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	Type          string          `gorm:"type:text;not null" json:"type"`
	Price         decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
	Currency      string          `gorm:"type:text;not null" json:"currency"`
	BillingCycle  BillingCycle    `gorm:"type:text;not null" json:"billingCycle"`
	Features      datatypes.JSON  `gorm:"type:json" json:"features"`
	MaxVehicles   int             `gorm:"not null;default:0" json:"maxVehicles"`
	MaxBookings   int             `gorm:"not null;default:0" json:"maxBookings"`
	MaxUsers      int             `gorm:"not null;default:0" json:"maxUsers"`
	UsageRate     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"usageRate"`
	FreeTrialDays int             `gorm:"not null;default:0" json:"freeTrialDays"`
	IsActive      bool            `gorm:"not null;default:true" json:"isActive"`
	CreatedAt     time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updatedAt"`
}

// TableName sets the database table name.
func (SubscriptionPlan) TableName() string { return "subscription_plans" }

// CustomerSubscription binds a customer to a plan. Recurring cycles
// carry period and next-billing dates; one_time subscriptions have no
// end date. Reactivation restores active status without recomputing
// period dates.
type CustomerSubscription struct {
	ID                 snowflake.ID       `gorm:"primaryKey" json:"id"`
	CustomerID         snowflake.ID       `gorm:"not null;index" json:"customerId"`
	PlanID             snowflake.ID       `gorm:"not null;index" json:"planId"`
	Status             SubscriptionStatus `gorm:"type:text;not null" json:"status"`
	StartDate          time.Time          `gorm:"not null" json:"startDate"`
	EndDate            *time.Time         `gorm:"" json:"endDate"`
	TrialEndDate       *time.Time         `gorm:"" json:"trialEndDate"`
	AutoRenew          bool               `gorm:"not null;default:true" json:"autoRenew"`
	NextBillingDate    *time.Time         `gorm:"" json:"nextBillingDate"`
	CurrentPeriodStart time.Time          `gorm:"not null" json:"currentPeriodStart"`
	CurrentPeriodEnd   *time.Time         `gorm:"" json:"currentPeriodEnd"`
	CancelledAt        *time.Time         `gorm:"" json:"cancelledAt"`
	CancelReason       string             `gorm:"type:text" json:"cancelReason"`
	UsageCount         decimal.Decimal    `gorm:"type:decimal(18,2);not null;default:0" json:"usageCount"`
	CreatedAt          time.Time          `gorm:"not null" json:"createdAt"`
	UpdatedAt          time.Time          `gorm:"not null" json:"updatedAt"`
}

// TableName sets the database table name.
func (CustomerSubscription) TableName() string { return "customer_subscriptions" }

// SubscriptionDetail is a subscription joined with its plan summary.
type SubscriptionDetail struct {
	CustomerSubscription

	PlanName     string          `json:"planName"`
	PlanType     string          `json:"planType"`
	PlanPrice    decimal.Decimal `json:"planPrice"`
	BillingCycle BillingCycle    `json:"billingCycle"`
}
