// Package domain holds the vehicle maintenance model and contract.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

const DefaultStatus = "pending"

type Maintenance struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	VehicleID   snowflake.ID `gorm:"not null;index" json:"vehicleId"`
	VehicleName string       `gorm:"type:text" json:"vehicleName"`
	Type        string       `gorm:"type:text;not null" json:"type"`
	Description string       `gorm:"type:text" json:"description"`
	Date        time.Time    `gorm:"not null" json:"date"`
	Status      string       `gorm:"type:text;not null;default:'pending'" json:"status"`
	CreatedAt   time.Time    `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time    `gorm:"not null" json:"updatedAt"`
}

// TableName sets the database table name.
func (Maintenance) TableName() string { return "maintenance" }

type Service interface {
	List(ctx context.Context) ([]Maintenance, error)
	Create(ctx context.Context, record Maintenance) (Maintenance, error)
	Update(ctx context.Context, id string, record Maintenance) (Maintenance, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrMaintenanceNotFound = errors.New("maintenance_not_found")
	ErrInvalidID           = errors.New("invalid_maintenance_id")
)
