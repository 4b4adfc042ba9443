// Package pdf renders billing documents with maroto.
package pdf

import (
	"context"
	"io"
)

type Provider interface {
	GenerateReceipt(ctx context.Context, data ReceiptData) (io.Reader, error)
}

// ReceiptData carries everything the receipt layout needs, already
// formatted for display.
type ReceiptData struct {
	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	CompanyEmail   string

	ReceiptNumber string
	IssueDate     string
	CustomerName  string
	InvoiceNumber string

	PaymentMethod string
	PaymentDate   string

	AmountPaid string
	Notes      string
}
