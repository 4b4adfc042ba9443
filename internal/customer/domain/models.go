// Package domain holds the rental customer model and contract.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type Customer struct {
	ID               snowflake.ID   `gorm:"primaryKey" json:"id"`
	Name             string         `gorm:"type:text;not null" json:"name"`
	Email            string         `gorm:"type:text" json:"email"`
	Phone            string         `gorm:"type:text" json:"phone"`
	Address          string         `gorm:"type:text" json:"address"`
	License          string         `gorm:"type:text" json:"license"`
	LicenseNumber    string         `gorm:"type:text" json:"licenseNumber"`
	EmergencyContact string         `gorm:"type:text" json:"emergencyContact"`
	LicenseDocument  datatypes.JSON `gorm:"type:json" json:"licenseDocument"`
	CreatedDate      time.Time      `gorm:"not null" json:"createdDate"`
	UpdatedAt        time.Time      `gorm:"not null" json:"updatedAt"`
}

// TableName sets the database table name.
func (Customer) TableName() string { return "customers" }

type Service interface {
	List(ctx context.Context) ([]Customer, error)
	Get(ctx context.Context, id string) (Customer, error)
	Create(ctx context.Context, customer Customer) (Customer, error)
	Update(ctx context.Context, id string, customer Customer) (Customer, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrCustomerNotFound = errors.New("customer_not_found")
	ErrInvalidID        = errors.New("invalid_customer_id")
)
