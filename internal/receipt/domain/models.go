// Package domain contains persistence models and contracts for receipts.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Receipt is proof of a completed payment. Receipts issued from the
// payment flow reference the payment transaction written in the same
// transaction; standalone receipts carry the caller-supplied transaction
// id and resolve it on read.
// PDFPath, EmailSent and EmailSentDate are carried in the schema but
// never written; PDFs are rendered on demand and no mailer exists.
type Receipt struct {
	ID            snowflake.ID    `gorm:"primaryKey" json:"id"`
	ReceiptNumber string          `gorm:"type:text;not null;uniqueIndex" json:"receiptNumber"`
	InvoiceID     *snowflake.ID   `gorm:"index" json:"invoiceId"`
	TransactionID snowflake.ID    `gorm:"not null;index" json:"transactionId"`
	CustomerID    snowflake.ID    `gorm:"not null;index" json:"customerId"`
	CustomerName  string          `gorm:"type:text;not null" json:"customerName"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	PaymentMethod string          `gorm:"type:text;not null" json:"paymentMethod"`
	IssueDate     time.Time       `gorm:"not null" json:"issueDate"`
	Notes         string          `gorm:"type:text" json:"notes"`
	PDFPath       string          `gorm:"type:text;column:pdf_path" json:"pdfPath"`
	EmailSent     bool            `gorm:"not null;default:false" json:"emailSent"`
	EmailSentDate *time.Time      `gorm:"" json:"emailSentDate"`
	CreatedAt     time.Time       `gorm:"not null" json:"createdAt"`
}

// TableName sets the database table name.
func (Receipt) TableName() string { return "receipts" }

// ReceiptDetail is a receipt joined with its payment transaction and,
// when present, the invoice it settles.
type ReceiptDetail struct {
	Receipt

	InvoiceNumber string          `json:"invoiceNumber,omitempty"`
	PaymentStatus string          `json:"paymentStatus"`
	PaymentDate   time.Time       `json:"paymentDate"`
	InvoiceTotal  decimal.Decimal `json:"invoiceTotal,omitempty"`
}
