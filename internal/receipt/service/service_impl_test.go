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
	companydomain "github.com/ketukakahala/rentalops/internal/company/domain"
	companyservice "github.com/ketukakahala/rentalops/internal/company/service"
	invoicedomain "github.com/ketukakahala/rentalops/internal/invoice/domain"
	"github.com/ketukakahala/rentalops/internal/providers/pdf"
	"github.com/ketukakahala/rentalops/internal/receipt/domain"
	receiptrepository "github.com/ketukakahala/rentalops/internal/receipt/repository"
	"github.com/ketukakahala/rentalops/pkg/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupReceiptService(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&domain.Receipt{},
		&invoicedomain.Invoice{},
		&invoicedomain.PaymentTransaction{},
		&companydomain.CompanyInfo{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	clk := clock.NewFakeClock(time.Date(2026, 8, 20, 11, 0, 0, 0, time.UTC))

	company := companyservice.NewService(companyservice.ServiceParam{
		Log:   zap.NewNop(),
		Clock: clk,
		Repo:  repository.ProvideStore[companydomain.CompanyInfo](db),
	})

	svc := NewService(ServiceParam{
		DB:      db,
		Log:     zap.NewNop(),
		GenID:   node,
		Clock:   clk,
		Repo:    receiptrepository.Provide(),
		Company: company,
		PDF:     pdf.New(),
	})
	return svc, db, node
}

func seedTransaction(t *testing.T, db *gorm.DB, node *snowflake.Node, invoiceID snowflake.ID) invoicedomain.PaymentTransaction {
	t.Helper()
	txn := invoicedomain.PaymentTransaction{
		ID:            node.Generate(),
		InvoiceID:     invoiceID,
		ReceiptNumber: "REC-202608-7777",
		CustomerID:    node.Generate(),
		CustomerName:  "Hilma Shikongo",
		Amount:        decimal.NewFromInt(450),
		PaymentMethod: "card",
		PaymentStatus: "completed",
		PaymentDate:   time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, db.Create(&txn).Error)
	return txn
}

func TestIssueReceipt(t *testing.T) {
	svc, db, node := setupReceiptService(t)
	txn := seedTransaction(t, db, node, node.Generate())

	resp, err := svc.Issue(context.Background(), domain.IssueReceiptRequest{
		TransactionID: txn.ID.String(),
		CustomerID:    txn.CustomerID.String(),
		CustomerName:  txn.CustomerName,
		Amount:        decimal.NewFromFloat(450.005),
		PaymentMethod: "card",
		Notes:         "Deposit refund applied",
	})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(resp.ReceiptNumber, "REC-202608-"), resp.ReceiptNumber)
	require.True(t, resp.Amount.Equal(decimal.NewFromFloat(450.01)))
	require.Equal(t, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), resp.IssueDate)

	var stored domain.Receipt
	require.NoError(t, db.First(&stored).Error)
	require.Equal(t, resp.ReceiptNumber, stored.ReceiptNumber)
	require.Equal(t, txn.ID, stored.TransactionID)
	require.Nil(t, stored.InvoiceID)

	// Carried-but-unwritten columns stay at their zero values.
	require.Empty(t, stored.PDFPath)
	require.False(t, stored.EmailSent)
	require.Nil(t, stored.EmailSentDate)
}

func TestIssueReceiptValidation(t *testing.T) {
	svc, _, node := setupReceiptService(t)

	valid := domain.IssueReceiptRequest{
		TransactionID: node.Generate().String(),
		CustomerID:    node.Generate().String(),
		CustomerName:  "Hilma Shikongo",
		Amount:        decimal.NewFromInt(100),
		PaymentMethod: "cash",
	}
	ctx := context.Background()

	req := valid
	req.TransactionID = ""
	_, err := svc.Issue(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidTransaction)

	req = valid
	req.CustomerName = " "
	_, err = svc.Issue(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidCustomer)

	req = valid
	req.Amount = decimal.Zero
	_, err = svc.Issue(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidAmount)

	req = valid
	req.PaymentMethod = ""
	_, err = svc.Issue(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidPaymentMethod)

	req = valid
	req.InvoiceID = "nope"
	_, err = svc.Issue(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestGetByIDJoinsTransactionAndInvoice(t *testing.T) {
	svc, db, node := setupReceiptService(t)

	invoice := invoicedomain.Invoice{
		ID:            node.Generate(),
		InvoiceNumber: "INV-202608-0042",
		CustomerID:    node.Generate(),
		CustomerName:  "Hilma Shikongo",
		Type:          "booking",
		Status:        "paid",
		Total:         decimal.NewFromInt(450),
		IssueDate:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	require.NoError(t, db.Create(&invoice).Error)
	txn := seedTransaction(t, db, node, invoice.ID)

	resp, err := svc.Issue(context.Background(), domain.IssueReceiptRequest{
		TransactionID: txn.ID.String(),
		InvoiceID:     invoice.ID.String(),
		CustomerID:    txn.CustomerID.String(),
		CustomerName:  txn.CustomerName,
		Amount:        decimal.NewFromInt(450),
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	detail, err := svc.GetByID(context.Background(), resp.ReceiptID)
	require.NoError(t, err)
	require.Equal(t, "INV-202608-0042", detail.InvoiceNumber)
	require.Equal(t, "completed", detail.PaymentStatus)
	require.True(t, detail.InvoiceTotal.Equal(invoice.Total))
	require.Equal(t, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), detail.PaymentDate.UTC())
}

func TestGetByIDRequiresTransactionRow(t *testing.T) {
	svc, db, node := setupReceiptService(t)

	// A receipt whose transaction row is gone is treated as absent.
	orphan := domain.Receipt{
		ID:            node.Generate(),
		ReceiptNumber: "REC-202608-0001",
		TransactionID: node.Generate(),
		CustomerID:    node.Generate(),
		CustomerName:  "Hilma Shikongo",
		Amount:        decimal.NewFromInt(100),
		PaymentMethod: "cash",
		IssueDate:     time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, db.Create(&orphan).Error)

	_, err := svc.GetByID(context.Background(), orphan.ID.String())
	require.ErrorIs(t, err, domain.ErrReceiptNotFound)

	_, err = svc.GetByID(context.Background(), "garbage")
	require.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestListByCustomer(t *testing.T) {
	svc, db, node := setupReceiptService(t)
	txn := seedTransaction(t, db, node, node.Generate())
	other := seedTransaction(t, db, node, node.Generate())

	for _, tx := range []invoicedomain.PaymentTransaction{txn, other} {
		_, err := svc.Issue(context.Background(), domain.IssueReceiptRequest{
			TransactionID: tx.ID.String(),
			CustomerID:    tx.CustomerID.String(),
			CustomerName:  tx.CustomerName,
			Amount:        tx.Amount,
			PaymentMethod: tx.PaymentMethod,
		})
		require.NoError(t, err)
	}

	receipts, err := svc.ListByCustomer(context.Background(), txn.CustomerID.String())
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	require.Equal(t, txn.CustomerID, receipts[0].CustomerID)
}

func TestRenderPDF(t *testing.T) {
	svc, db, node := setupReceiptService(t)

	require.NoError(t, db.Create(&companydomain.CompanyInfo{
		ID:        companydomain.CompanyRowID,
		Name:      "Ketu Kakahala Vehicle Rentals",
		Address:   "12 Independence Ave, Windhoek",
		Phone:     "+264 61 000 000",
		Email:     "billing@ketukakahala.example",
		UpdatedAt: time.Now().UTC(),
	}).Error)

	txn := seedTransaction(t, db, node, node.Generate())
	resp, err := svc.Issue(context.Background(), domain.IssueReceiptRequest{
		TransactionID: txn.ID.String(),
		CustomerID:    txn.CustomerID.String(),
		CustomerName:  txn.CustomerName,
		Amount:        txn.Amount,
		PaymentMethod: txn.PaymentMethod,
	})
	require.NoError(t, err)

	doc, err := svc.RenderPDF(context.Background(), resp.ReceiptID)
	require.NoError(t, err)
	require.Equal(t, resp.ReceiptNumber, doc.ReceiptNumber)
	require.NotEmpty(t, doc.Document)
	require.True(t, strings.HasPrefix(string(doc.Document[:5]), "%PDF-"))
}
