// Package domain holds the rental booking model and contract.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	DefaultStatus          = "active"
	DefaultFuelLevel       = "Full"
	DefaultSecurityDeposit = 2500
)

type Booking struct {
	ID               snowflake.ID    `gorm:"primaryKey" json:"id"`
	CustomerID       *snowflake.ID   `gorm:"index" json:"customerId"`
	CustomerName     string          `gorm:"type:text;not null" json:"customerName"`
	CustomerEmail    string          `gorm:"type:text" json:"customerEmail"`
	CustomerPhone    string          `gorm:"type:text" json:"customerPhone"`
	DriverLicense    string          `gorm:"type:text" json:"driverLicense"`
	EmergencyContact string          `gorm:"type:text" json:"emergencyContact"`
	VehicleID        snowflake.ID    `gorm:"not null;index" json:"vehicleId"`
	VehicleName      string          `gorm:"type:text" json:"vehicleName"`
	LicensePlate     string          `gorm:"type:text" json:"licensePlate"`
	StartDate        time.Time       `gorm:"not null" json:"startDate"`
	EndDate          time.Time       `gorm:"not null" json:"endDate"`
	OdometerReading  int             `gorm:"" json:"odometerReading"`
	FuelLevel        string          `gorm:"type:text;not null;default:'Full'" json:"fuelLevel"`
	SecurityDeposit  decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"securityDeposit"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"totalAmount"`
	Damages          datatypes.JSON  `gorm:"type:json" json:"damages"`
	DamageNotes      string          `gorm:"type:text" json:"damageNotes"`
	Status           string          `gorm:"type:text;not null;default:'active'" json:"status"`
	LicenseDocument  datatypes.JSON  `gorm:"type:json" json:"licenseDocument"`
	CreatedAt        time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updatedAt"`
}

// TableName sets the database table name.
func (Booking) TableName() string { return "bookings" }

type Service interface {
	List(ctx context.Context) ([]Booking, error)
	Get(ctx context.Context, id string) (Booking, error)
	Create(ctx context.Context, booking Booking) (Booking, error)
	Update(ctx context.Context, id string, booking Booking) (Booking, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrBookingNotFound = errors.New("booking_not_found")
	ErrInvalidID       = errors.New("invalid_booking_id")
)
