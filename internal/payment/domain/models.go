// Package domain holds the booking payment model and contract. These
// are simple cash-register entries against bookings, separate from the
// invoice payment transactions.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type Payment struct {
	ID            snowflake.ID    `gorm:"primaryKey" json:"id"`
	BookingID     snowflake.ID    `gorm:"not null;index" json:"bookingId"`
	CustomerName  string          `gorm:"type:text;not null" json:"customerName"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	PaymentMethod string          `gorm:"type:text;not null" json:"paymentMethod"`
	Date          time.Time       `gorm:"not null" json:"date"`
	Notes         string          `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time       `gorm:"not null" json:"createdAt"`
}

// TableName sets the database table name.
func (Payment) TableName() string { return "payments" }

type Service interface {
	List(ctx context.Context) ([]Payment, error)
	Create(ctx context.Context, payment Payment) (Payment, error)
	Update(ctx context.Context, id string, payment Payment) (Payment, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrPaymentNotFound = errors.New("payment_not_found")
	ErrInvalidID       = errors.New("invalid_payment_id")
)
