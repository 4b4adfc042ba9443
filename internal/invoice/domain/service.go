package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

type CreateItemRequest struct {
	Description string           `json:"description"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unitPrice"`
	TaxRate     *decimal.Decimal `json:"taxRate,omitempty"`
}

type CreateInvoiceRequest struct {
	CustomerID      string              `json:"customerId"`
	CustomerName    string              `json:"customerName"`
	CustomerEmail   string              `json:"customerEmail"`
	CustomerPhone   string              `json:"customerPhone"`
	CustomerAddress string              `json:"customerAddress"`
	SubscriptionID  string              `json:"subscriptionId"`
	BookingID       string              `json:"bookingId"`
	Type            string              `json:"type"`
	Items           []CreateItemRequest `json:"items"`
	Discount        decimal.Decimal     `json:"discount"`
	DueDate         string              `json:"dueDate"`
	Notes           string              `json:"notes"`
	Terms           string              `json:"termsAndConditions"`
}

type CreateInvoiceResponse struct {
	InvoiceID     string          `json:"invoiceId"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Total         decimal.Decimal `json:"total"`
	Balance       decimal.Decimal `json:"balance"`
}

type RecordPaymentRequest struct {
	InvoiceID     string          `json:"-"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	TransactionID string          `json:"transactionId"`
	Notes         string          `json:"notes"`
}

type RecordPaymentResponse struct {
	ReceiptNumber string          `json:"receiptNumber"`
	NewBalance    decimal.Decimal `json:"newBalance"`
	Status        InvoiceStatus   `json:"status"`
}

type ListInvoiceRequest struct {
	Status     string
	CustomerID string
	Limit      int
	Offset     int
}

type Service interface {
	Create(context.Context, CreateInvoiceRequest) (CreateInvoiceResponse, error)
	List(context.Context, ListInvoiceRequest) ([]Invoice, error)
	GetByID(ctx context.Context, id string) (Invoice, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Invoice, error)
	UpdateStatus(ctx context.Context, id string, status InvoiceStatus) error
	RecordPayment(context.Context, RecordPaymentRequest) (RecordPaymentResponse, error)
	Cancel(ctx context.Context, id string) error
}

var (
	ErrInvoiceNotFound      = errors.New("invoice_not_found")
	ErrInvalidID            = errors.New("invalid_invoice_id")
	ErrInvalidCustomer      = errors.New("invalid_customer")
	ErrInvalidType          = errors.New("invalid_type")
	ErrInvalidItems         = errors.New("invalid_items")
	ErrInvalidAmount        = errors.New("invalid_amount")
	ErrInvalidPaymentMethod = errors.New("invalid_payment_method")
	ErrInvalidStatus        = errors.New("invalid_status")
	ErrInvalidDueDate       = errors.New("invalid_due_date")
)
