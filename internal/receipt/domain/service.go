package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type IssueReceiptRequest struct {
	TransactionID string          `json:"transactionId"`
	InvoiceID     string          `json:"invoiceId"`
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Notes         string          `json:"notes"`
}

type IssueReceiptResponse struct {
	ReceiptID     string          `json:"receiptId"`
	ReceiptNumber string          `json:"receiptNumber"`
	Amount        decimal.Decimal `json:"amount"`
	IssueDate     time.Time       `json:"issueDate"`
}

type ListReceiptRequest struct {
	CustomerID string
	Limit      int
	Offset     int
}

// ReceiptPDF is a rendered receipt document plus the number used to
// name the download.
type ReceiptPDF struct {
	ReceiptNumber string
	Document      []byte
}

type Service interface {
	Issue(context.Context, IssueReceiptRequest) (IssueReceiptResponse, error)
	List(context.Context, ListReceiptRequest) ([]Receipt, error)
	GetByID(ctx context.Context, id string) (ReceiptDetail, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Receipt, error)
	RenderPDF(ctx context.Context, id string) (ReceiptPDF, error)
}

var (
	ErrReceiptNotFound      = errors.New("receipt_not_found")
	ErrInvalidID            = errors.New("invalid_receipt_id")
	ErrInvalidTransaction   = errors.New("invalid_transaction")
	ErrInvalidCustomer      = errors.New("invalid_customer")
	ErrInvalidAmount        = errors.New("invalid_amount")
	ErrInvalidPaymentMethod = errors.New("invalid_payment_method")
)
