// Package domain holds the fleet vehicle model and contract.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

const DefaultStatus = "available"

type Vehicle struct {
	ID           snowflake.ID    `gorm:"primaryKey" json:"id"`
	Make         string          `gorm:"type:text;not null" json:"make"`
	Model        string          `gorm:"type:text;not null" json:"model"`
	Year         int             `gorm:"not null" json:"year"`
	LicensePlate string          `gorm:"type:text;not null;uniqueIndex" json:"licensePlate"`
	DailyRate    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"dailyRate"`
	Status       string          `gorm:"type:text;not null;default:'available'" json:"status"`
	Color        string          `gorm:"type:text" json:"color"`
	Mileage      int             `gorm:"" json:"mileage"`
	CreatedAt    time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updatedAt"`
}

// TableName sets the database table name.
func (Vehicle) TableName() string { return "vehicles" }

type Service interface {
	List(ctx context.Context) ([]Vehicle, error)
	Get(ctx context.Context, id string) (Vehicle, error)
	Create(ctx context.Context, vehicle Vehicle) (Vehicle, error)
	Update(ctx context.Context, id string, vehicle Vehicle) (Vehicle, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrVehicleNotFound = errors.New("vehicle_not_found")
	ErrInvalidID       = errors.New("invalid_vehicle_id")
)
