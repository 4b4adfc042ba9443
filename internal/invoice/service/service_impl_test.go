package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/ketukakahala/rentalops/internal/clock"
	"github.com/ketukakahala/rentalops/internal/config"
	invoicedomain "github.com/ketukakahala/rentalops/internal/invoice/domain"
	invoicerepository "github.com/ketukakahala/rentalops/internal/invoice/repository"
	receiptdomain "github.com/ketukakahala/rentalops/internal/receipt/domain"
	receiptrepository "github.com/ketukakahala/rentalops/internal/receipt/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupInvoiceService(t *testing.T, clk clock.Clock) (invoicedomain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&invoicedomain.Invoice{},
		&invoicedomain.InvoiceItem{},
		&invoicedomain.PaymentTransaction{},
		&receiptdomain.Receipt{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := NewService(ServiceParam{
		DB:          db,
		Log:         zap.NewNop(),
		Cfg:         config.Config{DefaultTaxRate: 15},
		GenID:       node,
		Clock:       clk,
		Repo:        invoicerepository.Provide(),
		ReceiptRepo: receiptrepository.Provide(),
	})
	return svc, db, node
}

func createRequest(node *snowflake.Node, items []invoicedomain.CreateItemRequest) invoicedomain.CreateInvoiceRequest {
	return invoicedomain.CreateInvoiceRequest{
		CustomerID:   node.Generate().String(),
		CustomerName: "T. Amadhila",
		Type:         "rental",
		Items:        items,
	}
}

func TestCreateInvoiceTotals(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	svc, db, node := setupInvoiceService(t, clk)
	ctx := context.Background()

	customRate := decimal.NewFromInt(10)
	req := createRequest(node, []invoicedomain.CreateItemRequest{
		{Description: "Vehicle rental", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(500)},
		{Description: "Insurance", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromFloat(199.99), TaxRate: &customRate},
	})
	req.Discount = decimal.NewFromInt(50)

	resp, err := svc.Create(ctx, req)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(resp.InvoiceNumber, "INV-202603-"))

	invoice, err := svc.GetByID(ctx, resp.InvoiceID)
	require.NoError(t, err)

	// 3*500 = 1500 at 15% tax = 225; 199.99 at 10% = 20.00 (rounded)
	require.True(t, invoice.Subtotal.Equal(decimal.NewFromFloat(1699.99)), "subtotal %s", invoice.Subtotal)
	require.True(t, invoice.TaxAmount.Equal(decimal.NewFromInt(245)), "tax %s", invoice.TaxAmount)
	require.True(t, invoice.Total.Equal(decimal.NewFromFloat(1894.99)), "total %s", invoice.Total)
	require.True(t, invoice.Balance.Equal(invoice.Total))
	require.True(t, invoice.AmountPaid.IsZero())
	require.Equal(t, invoicedomain.InvoiceStatusDraft, invoice.Status)

	// Invoice-level tax equals the sum of per-item taxes.
	var itemTaxSum decimal.Decimal
	require.Len(t, invoice.Items, 2)
	for _, item := range invoice.Items {
		itemTaxSum = itemTaxSum.Add(item.TaxAmount)
	}
	require.True(t, invoice.TaxAmount.Equal(itemTaxSum))

	// Default due date is issue + 14 days.
	require.Equal(t, time.Date(2026, 3, 24, 0, 0, 0, 0, time.UTC), invoice.DueDate)

	var itemCount int64
	require.NoError(t, db.Model(&invoicedomain.InvoiceItem{}).Count(&itemCount).Error)
	require.EqualValues(t, 2, itemCount)
}

func TestCreateInvoiceValidation(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	svc, _, node := setupInvoiceService(t, clk)
	ctx := context.Background()

	items := []invoicedomain.CreateItemRequest{
		{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
	}

	_, err := svc.Create(ctx, invoicedomain.CreateInvoiceRequest{CustomerName: "X", Type: "rental", Items: items})
	require.ErrorIs(t, err, invoicedomain.ErrInvalidCustomer)

	req := createRequest(node, items)
	req.Type = ""
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, invoicedomain.ErrInvalidType)

	req = createRequest(node, nil)
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, invoicedomain.ErrInvalidItems)

	req = createRequest(node, items)
	req.DueDate = "31-12-2026"
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, invoicedomain.ErrInvalidDueDate)
}

func TestRecordPaymentPartialThenPaid(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	svc, db, node := setupInvoiceService(t, clk)
	ctx := context.Background()

	resp, err := svc.Create(ctx, createRequest(node, []invoicedomain.CreateItemRequest{
		{Description: "Rental", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(500)},
	}))
	require.NoError(t, err)
	// total = 1000 + 150 tax = 1150

	payment, err := svc.RecordPayment(ctx, invoicedomain.RecordPaymentRequest{
		InvoiceID:     resp.InvoiceID,
		Amount:        decimal.NewFromInt(400),
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	require.Equal(t, invoicedomain.InvoiceStatusPartial, payment.Status)
	require.True(t, payment.NewBalance.Equal(decimal.NewFromInt(750)))
	require.True(t, strings.HasPrefix(payment.ReceiptNumber, "REC-202603-"))

	invoice, err := svc.GetByID(ctx, resp.InvoiceID)
	require.NoError(t, err)
	require.Nil(t, invoice.PaidDate)
	require.True(t, invoice.AmountPaid.Add(invoice.Balance).Equal(invoice.Total))

	clk.Advance(24 * time.Hour)
	payment, err = svc.RecordPayment(ctx, invoicedomain.RecordPaymentRequest{
		InvoiceID:     resp.InvoiceID,
		Amount:        decimal.NewFromInt(750),
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	require.Equal(t, invoicedomain.InvoiceStatusPaid, payment.Status)
	require.True(t, payment.NewBalance.IsZero())

	invoice, err = svc.GetByID(ctx, resp.InvoiceID)
	require.NoError(t, err)
	require.NotNil(t, invoice.PaidDate)
	require.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), invoice.PaidDate.UTC())

	// Each payment wrote a transaction and a receipt.
	var txns, receipts int64
	require.NoError(t, db.Model(&invoicedomain.PaymentTransaction{}).Count(&txns).Error)
	require.NoError(t, db.Model(&receiptdomain.Receipt{}).Count(&receipts).Error)
	require.EqualValues(t, 2, txns)
	require.EqualValues(t, 2, receipts)
}

func TestRecordPaymentOverpaymentClampsBalance(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	svc, _, node := setupInvoiceService(t, clk)
	ctx := context.Background()

	resp, err := svc.Create(ctx, createRequest(node, []invoicedomain.CreateItemRequest{
		{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
	}))
	require.NoError(t, err)
	// total = 115

	payment, err := svc.RecordPayment(ctx, invoicedomain.RecordPaymentRequest{
		InvoiceID:     resp.InvoiceID,
		Amount:        decimal.NewFromInt(200),
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	require.Equal(t, invoicedomain.InvoiceStatusPaid, payment.Status)
	require.True(t, payment.NewBalance.IsZero())

	invoice, err := svc.GetByID(ctx, resp.InvoiceID)
	require.NoError(t, err)
	require.True(t, invoice.Balance.IsZero())
	require.True(t, invoice.AmountPaid.Equal(decimal.NewFromInt(200)))
}

func TestRecordPaymentValidation(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	svc, _, node := setupInvoiceService(t, clk)
	ctx := context.Background()

	resp, err := svc.Create(ctx, createRequest(node, []invoicedomain.CreateItemRequest{
		{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
	}))
	require.NoError(t, err)

	_, err = svc.RecordPayment(ctx, invoicedomain.RecordPaymentRequest{
		InvoiceID:     resp.InvoiceID,
		PaymentMethod: "cash",
	})
	require.ErrorIs(t, err, invoicedomain.ErrInvalidAmount)

	_, err = svc.RecordPayment(ctx, invoicedomain.RecordPaymentRequest{
		InvoiceID: resp.InvoiceID,
		Amount:    decimal.NewFromInt(10),
	})
	require.ErrorIs(t, err, invoicedomain.ErrInvalidPaymentMethod)

	_, err = svc.RecordPayment(ctx, invoicedomain.RecordPaymentRequest{
		InvoiceID:     node.Generate().String(),
		Amount:        decimal.NewFromInt(10),
		PaymentMethod: "cash",
	})
	require.ErrorIs(t, err, invoicedomain.ErrInvoiceNotFound)
}

func TestUpdateStatusAndCancel(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	svc, _, node := setupInvoiceService(t, clk)
	ctx := context.Background()

	resp, err := svc.Create(ctx, createRequest(node, []invoicedomain.CreateItemRequest{
		{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
	}))
	require.NoError(t, err)

	require.ErrorIs(t, svc.UpdateStatus(ctx, resp.InvoiceID, "archived"), invoicedomain.ErrInvalidStatus)
	require.ErrorIs(t, svc.UpdateStatus(ctx, node.Generate().String(), invoicedomain.InvoiceStatusSent), invoicedomain.ErrInvoiceNotFound)

	require.NoError(t, svc.UpdateStatus(ctx, resp.InvoiceID, invoicedomain.InvoiceStatusSent))
	invoice, err := svc.GetByID(ctx, resp.InvoiceID)
	require.NoError(t, err)
	require.Equal(t, invoicedomain.InvoiceStatusSent, invoice.Status)

	require.NoError(t, svc.Cancel(ctx, resp.InvoiceID))
	invoice, err = svc.GetByID(ctx, resp.InvoiceID)
	require.NoError(t, err)
	require.Equal(t, invoicedomain.InvoiceStatusCancelled, invoice.Status)
}

func TestListFiltersByStatusAndCustomer(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	svc, _, node := setupInvoiceService(t, clk)
	ctx := context.Background()

	first := createRequest(node, []invoicedomain.CreateItemRequest{
		{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
	})
	second := createRequest(node, []invoicedomain.CreateItemRequest{
		{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(200)},
	})

	respA, err := svc.Create(ctx, first)
	require.NoError(t, err)
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, respA.InvoiceID, invoicedomain.InvoiceStatusSent))

	sent, err := svc.List(ctx, invoicedomain.ListInvoiceRequest{Status: "sent"})
	require.NoError(t, err)
	require.Len(t, sent, 1)

	byCustomer, err := svc.ListByCustomer(ctx, first.CustomerID)
	require.NoError(t, err)
	require.Len(t, byCustomer, 1)
}
