// Package domain contains the metered-usage model and contract.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// UsageRecord is one metered event against a subscription. Records are
// append-only; aggregate consumption lives on the subscription row.
type UsageRecord struct {
	ID             snowflake.ID    `gorm:"primaryKey" json:"id"`
	SubscriptionID snowflake.ID    `gorm:"not null;index" json:"subscriptionId"`
	CustomerID     snowflake.ID    `gorm:"not null;index" json:"customerId"`
	UsageType      string          `gorm:"type:text;not null" json:"usageType"`
	Quantity       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"quantity"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unitPrice"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	Description    string          `gorm:"type:text" json:"description"`
	RecordDate     time.Time       `gorm:"not null" json:"recordDate"`
	CreatedAt      time.Time       `gorm:"not null" json:"createdAt"`
}

// TableName sets the database table name.
func (UsageRecord) TableName() string { return "usage_records" }

type RecordUsageRequest struct {
	SubscriptionID string          `json:"subscriptionId"`
	CustomerID     string          `json:"customerId"`
	UsageType      string          `json:"usageType"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Description    string          `json:"description"`
}

type RecordUsageResponse struct {
	Amount   decimal.Decimal `json:"amount"`
	Quantity decimal.Decimal `json:"quantity"`
}

type Service interface {
	Record(context.Context, RecordUsageRequest) (RecordUsageResponse, error)
}

var (
	ErrInvalidSubscription = errors.New("invalid_subscription")
	ErrInvalidCustomer     = errors.New("invalid_customer")
	ErrInvalidUsageType    = errors.New("invalid_usage_type")
	ErrInvalidQuantity     = errors.New("invalid_quantity")
	ErrInvalidUnitPrice    = errors.New("invalid_unit_price")
)
