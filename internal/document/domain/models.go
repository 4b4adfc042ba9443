// Package domain holds the booking document model and contract.
// Documents carry base64 file payloads inline, as the web client
// uploads them.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

type Document struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	BookingID    snowflake.ID `gorm:"not null;index" json:"bookingId"`
	CustomerName string       `gorm:"type:text" json:"customerName"`
	VehicleName  string       `gorm:"type:text" json:"vehicleName"`
	Type         string       `gorm:"type:text;not null" json:"type"`
	Notes        string       `gorm:"type:text" json:"notes"`
	Date         time.Time    `gorm:"not null" json:"date"`
	FileData     string       `gorm:"type:text" json:"fileData"`
	FileName     string       `gorm:"type:text" json:"fileName"`
	CreatedAt    time.Time    `gorm:"not null" json:"createdAt"`
}

// TableName sets the database table name.
func (Document) TableName() string { return "documents" }

type Service interface {
	List(ctx context.Context) ([]Document, error)
	Create(ctx context.Context, document Document) (Document, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrDocumentNotFound = errors.New("document_not_found")
	ErrInvalidID        = errors.New("invalid_document_id")
)
