package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, tx *gorm.DB, receipt *Receipt) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Receipt, error)
	FindByNumber(ctx context.Context, db *gorm.DB, number string) (*Receipt, error)
	// FindDetail resolves the receipt together with its payment
	// transaction and optional invoice. A receipt whose transaction row
	// is missing is treated as absent.
	FindDetail(ctx context.Context, db *gorm.DB, id snowflake.ID) (*ReceiptDetail, error)
	List(ctx context.Context, db *gorm.DB, req ListReceiptRequest) ([]Receipt, error)
	ListByCustomer(ctx context.Context, db *gorm.DB, customerID snowflake.ID) ([]Receipt, error)
}
