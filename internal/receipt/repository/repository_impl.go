package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/ketukakahala/rentalops/internal/receipt/domain"
	"gorm.io/gorm"
)

type repository struct{}

func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) Insert(ctx context.Context, tx *gorm.DB, receipt *domain.Receipt) error {
	return tx.WithContext(ctx).Create(receipt).Error
}

func (r *repository) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Receipt, error) {
	var receipt domain.Receipt
	err := db.WithContext(ctx).Where("id = ?", id).First(&receipt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &receipt, nil
}

func (r *repository) FindByNumber(ctx context.Context, db *gorm.DB, number string) (*domain.Receipt, error) {
	var receipt domain.Receipt
	err := db.WithContext(ctx).Where("receipt_number = ?", number).First(&receipt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &receipt, nil
}

func (r *repository) FindDetail(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.ReceiptDetail, error) {
	var detail domain.ReceiptDetail
	err := db.WithContext(ctx).
		Table("receipts").
		Select("receipts.*, payment_transactions.payment_status, payment_transactions.payment_date, invoices.invoice_number, invoices.total as invoice_total").
		Joins("inner join payment_transactions on payment_transactions.id = receipts.transaction_id").
		Joins("left join invoices on invoices.id = receipts.invoice_id").
		Where("receipts.id = ?", id).
		First(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *repository) List(ctx context.Context, db *gorm.DB, req domain.ListReceiptRequest) ([]domain.Receipt, error) {
	stmt := db.WithContext(ctx).Model(&domain.Receipt{})
	if req.CustomerID != "" {
		customerID, err := snowflake.ParseString(req.CustomerID)
		if err != nil {
			return nil, domain.ErrInvalidCustomer
		}
		stmt = stmt.Where("customer_id = ?", customerID)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	var receipts []domain.Receipt
	err := stmt.Order("created_at desc").Limit(limit).Offset(offset).Find(&receipts).Error
	return receipts, err
}

func (r *repository) ListByCustomer(ctx context.Context, db *gorm.DB, customerID snowflake.ID) ([]domain.Receipt, error) {
	var receipts []domain.Receipt
	err := db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&receipts).Error
	return receipts, err
}
