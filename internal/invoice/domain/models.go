// Package domain contains persistence models and contracts for invoicing.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents invoice lifecycle states.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusPartial   InvoiceStatus = "partial"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// ValidStatus reports whether s is one of the fixed invoice states.
// There is no transition graph: any status is reachable from any other.
func ValidStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid,
		InvoiceStatusPartial, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	default:
		return false
	}
}

// Invoice is a billing document with line items and a running balance.
// amountPaid + balance == total holds after every payment application,
// except that balance is clamped at zero on overpayment.
type Invoice struct {
	ID              snowflake.ID    `gorm:"primaryKey" json:"id"`
	InvoiceNumber   string          `gorm:"type:text;not null;uniqueIndex" json:"invoiceNumber"`
	CustomerID      snowflake.ID    `gorm:"not null;index" json:"customerId"`
	CustomerName    string          `gorm:"type:text;not null" json:"customerName"`
	CustomerEmail   string          `gorm:"type:text" json:"customerEmail"`
	CustomerPhone   string          `gorm:"type:text" json:"customerPhone"`
	CustomerAddress string          `gorm:"type:text" json:"customerAddress"`
	SubscriptionID  *snowflake.ID   `gorm:"index" json:"subscriptionId"`
	BookingID       *snowflake.ID   `gorm:"index" json:"bookingId"`
	Type            string          `gorm:"type:text;not null" json:"type"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"subtotal"`
	TaxRate         decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"taxRate"`
	TaxAmount       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"taxAmount"`
	Discount        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"discount"`
	Total           decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total"`
	AmountPaid      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amountPaid"`
	Balance         decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"balance"`
	Status          InvoiceStatus   `gorm:"type:text;not null;default:'draft'" json:"status"`
	DueDate         time.Time       `gorm:"not null" json:"dueDate"`
	IssueDate       time.Time       `gorm:"not null" json:"issueDate"`
	PaidDate        *time.Time      `gorm:"" json:"paidDate"`
	Notes           string          `gorm:"type:text" json:"notes"`
	Terms           string          `gorm:"type:text;column:terms_and_conditions" json:"termsAndConditions"`
	CreatedAt       time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updatedAt"`

	Items []InvoiceItem `gorm:"-" json:"items,omitempty"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// InvoiceItem is one line on an invoice. Items are created atomically
// with their invoice and never mutated independently.
type InvoiceItem struct {
	ID          snowflake.ID    `gorm:"primaryKey" json:"id"`
	InvoiceID   snowflake.ID    `gorm:"not null;index" json:"invoiceId"`
	Description string          `gorm:"type:text" json:"description"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unitPrice"`
	TaxRate     decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"taxRate"`
	TaxAmount   decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"taxAmount"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	CreatedAt   time.Time       `gorm:"not null" json:"createdAt"`
}

// TableName sets the database table name.
func (InvoiceItem) TableName() string { return "invoice_items" }

// PaymentTransaction records one payment event against an invoice.
// Rows are immutable after creation; there is no failure path, every
// transaction is written as completed.
type PaymentTransaction struct {
	ID            snowflake.ID    `gorm:"primaryKey" json:"id"`
	InvoiceID     snowflake.ID    `gorm:"not null;index" json:"invoiceId"`
	ReceiptNumber string          `gorm:"type:text;not null" json:"receiptNumber"`
	CustomerID    snowflake.ID    `gorm:"not null;index" json:"customerId"`
	CustomerName  string          `gorm:"type:text;not null" json:"customerName"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	PaymentMethod string          `gorm:"type:text;not null" json:"paymentMethod"`
	PaymentStatus string          `gorm:"type:text;not null;default:'completed'" json:"paymentStatus"`
	TransactionID string          `gorm:"type:text;column:external_ref" json:"transactionId"`
	PaymentDate   time.Time       `gorm:"not null" json:"paymentDate"`
	Notes         string          `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time       `gorm:"not null" json:"createdAt"`
}

// TableName sets the database table name.
func (PaymentTransaction) TableName() string { return "payment_transactions" }
