// Package domain holds the company profile model and contract.
package domain

import (
	"context"
	"errors"
	"time"
)

// CompanyInfo is a single-row table (id is always 1). The profile feeds
// the receipt PDF header.
type CompanyInfo struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Phone     string    `gorm:"type:text" json:"phone"`
	Email     string    `gorm:"type:text" json:"email"`
	Address   string    `gorm:"type:text" json:"address"`
	Website   string    `gorm:"type:text" json:"website"`
	Logo      string    `gorm:"type:text" json:"logo"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

// TableName sets the database table name.
func (CompanyInfo) TableName() string { return "company_info" }

// CompanyRowID is the fixed primary key of the profile row.
const CompanyRowID int64 = 1

type UpdateCompanyRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Website string `json:"website"`
	Logo    string `json:"logo"`
}

type Service interface {
	Get(ctx context.Context) (CompanyInfo, error)
	Update(ctx context.Context, req UpdateCompanyRequest) (CompanyInfo, error)
}

var ErrCompanyNotFound = errors.New("company_not_found")
