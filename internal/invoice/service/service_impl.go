package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ketukakahala/rentalops/internal/clock"
	"github.com/ketukakahala/rentalops/internal/config"
	invoicedomain "github.com/ketukakahala/rentalops/internal/invoice/domain"
	receiptdomain "github.com/ketukakahala/rentalops/internal/receipt/domain"
	"github.com/ketukakahala/rentalops/pkg/db"
	"github.com/ketukakahala/rentalops/pkg/telemetry"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultDueDays     = 14
	numberGenAttempts  = 5
	dateLayout         = "2006-01-02"
	paymentStatusFinal = "completed"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID       *snowflake.Node
	clock       clock.Clock
	repo        invoicedomain.Repository
	receiptRepo receiptdomain.Repository
	metrics     *telemetry.Metrics

	defaultTaxRate decimal.Decimal
}

type ServiceParam struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	Cfg         config.Config
	GenID       *snowflake.Node
	Clock       clock.Clock
	Repo        invoicedomain.Repository
	ReceiptRepo receiptdomain.Repository
	Metrics     *telemetry.Metrics `optional:"true"`
}

func NewService(p ServiceParam) invoicedomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("invoice.service"),

		genID:       p.GenID,
		clock:       p.Clock,
		repo:        p.Repo,
		receiptRepo: p.ReceiptRepo,
		metrics:     p.Metrics,

		defaultTaxRate: decimal.NewFromFloat(p.Cfg.DefaultTaxRate),
	}
}

func (s *Service) Create(ctx context.Context, req invoicedomain.CreateInvoiceRequest) (invoicedomain.CreateInvoiceResponse, error) {
	customerID, err := parseID(req.CustomerID, invoicedomain.ErrInvalidCustomer)
	if err != nil {
		return invoicedomain.CreateInvoiceResponse{}, err
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return invoicedomain.CreateInvoiceResponse{}, invoicedomain.ErrInvalidCustomer
	}
	if strings.TrimSpace(req.Type) == "" {
		return invoicedomain.CreateInvoiceResponse{}, invoicedomain.ErrInvalidType
	}
	if len(req.Items) == 0 {
		return invoicedomain.CreateInvoiceResponse{}, invoicedomain.ErrInvalidItems
	}

	subscriptionID, err := parseOptionalID(req.SubscriptionID)
	if err != nil {
		return invoicedomain.CreateInvoiceResponse{}, invoicedomain.ErrInvalidCustomer
	}
	bookingID, err := parseOptionalID(req.BookingID)
	if err != nil {
		return invoicedomain.CreateInvoiceResponse{}, invoicedomain.ErrInvalidCustomer
	}

	now := s.clock.Now()
	issueDate := clock.Today(s.clock)

	dueDate := issueDate.AddDate(0, 0, defaultDueDays)
	if strings.TrimSpace(req.DueDate) != "" {
		parsed, err := time.ParseInLocation(dateLayout, req.DueDate, time.UTC)
		if err != nil {
			return invoicedomain.CreateInvoiceResponse{}, invoicedomain.ErrInvalidDueDate
		}
		dueDate = parsed
	}

	invoiceID := s.genID.Generate()
	subtotal := decimal.Zero
	totalTax := decimal.Zero
	items := make([]invoicedomain.InvoiceItem, 0, len(req.Items))
	for _, item := range req.Items {
		rate := s.defaultTaxRate
		if item.TaxRate != nil {
			rate = *item.TaxRate
		}
		itemSubtotal := item.Quantity.Mul(item.UnitPrice).Round(2)
		itemTax := itemSubtotal.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)

		subtotal = subtotal.Add(itemSubtotal)
		totalTax = totalTax.Add(itemTax)

		items = append(items, invoicedomain.InvoiceItem{
			ID:          s.genID.Generate(),
			InvoiceID:   invoiceID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxRate:     rate,
			TaxAmount:   itemTax,
			Amount:      itemSubtotal.Add(itemTax),
			CreatedAt:   now,
		})
	}

	discount := req.Discount.Round(2)
	total := subtotal.Add(totalTax).Sub(discount)

	invoice := invoicedomain.Invoice{
		ID:              invoiceID,
		CustomerID:      customerID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		SubscriptionID:  subscriptionID,
		BookingID:       bookingID,
		Type:            req.Type,
		Subtotal:        subtotal,
		TaxRate:         s.defaultTaxRate,
		TaxAmount:       totalTax,
		Discount:        discount,
		Total:           total,
		AmountPaid:      decimal.Zero,
		Balance:         total,
		Status:          invoicedomain.InvoiceStatusDraft,
		DueDate:         dueDate,
		IssueDate:       issueDate,
		Notes:           req.Notes,
		Terms:           req.Terms,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// The number pre-check cannot see a concurrent candidate that has not
	// committed yet; a duplicate-key failure on the unique index rolls the
	// insert back and retries with a fresh draw.
	if err := retryOnDuplicate(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			number, err := s.nextInvoiceNumber(ctx, tx)
			if err != nil {
				return err
			}
			invoice.InvoiceNumber = number

			if err := s.repo.Insert(ctx, tx, &invoice); err != nil {
				return err
			}
			return s.repo.InsertItems(ctx, tx, items)
		})
	}); err != nil {
		return invoicedomain.CreateInvoiceResponse{}, err
	}

	s.metrics.ObserveInvoiceCreated(invoice.Type, invoice.Total.InexactFloat64())
	s.log.Info("invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("total", invoice.Total.String()),
	)

	return invoicedomain.CreateInvoiceResponse{
		InvoiceID:     invoice.ID.String(),
		InvoiceNumber: invoice.InvoiceNumber,
		Total:         invoice.Total,
		Balance:       invoice.Balance,
	}, nil
}

func (s *Service) List(ctx context.Context, req invoicedomain.ListInvoiceRequest) ([]invoicedomain.Invoice, error) {
	return s.repo.List(ctx, s.db, req)
}

func (s *Service) GetByID(ctx context.Context, id string) (invoicedomain.Invoice, error) {
	invoiceID, err := parseID(id, invoicedomain.ErrInvalidID)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}

	invoice, err := s.repo.FindByID(ctx, s.db, invoiceID)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}
	if invoice == nil {
		return invoicedomain.Invoice{}, invoicedomain.ErrInvoiceNotFound
	}

	items, err := s.repo.FindItems(ctx, s.db, invoiceID)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}
	invoice.Items = items

	return *invoice, nil
}

func (s *Service) ListByCustomer(ctx context.Context, customerID string) ([]invoicedomain.Invoice, error) {
	id, err := parseID(customerID, invoicedomain.ErrInvalidCustomer)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByCustomer(ctx, s.db, id)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status invoicedomain.InvoiceStatus) error {
	if !invoicedomain.ValidStatus(status) {
		return invoicedomain.ErrInvalidStatus
	}

	invoiceID, err := parseID(id, invoicedomain.ErrInvalidID)
	if err != nil {
		return err
	}

	invoice, err := s.repo.FindByID(ctx, s.db, invoiceID)
	if err != nil {
		return err
	}
	if invoice == nil {
		return invoicedomain.ErrInvoiceNotFound
	}

	return s.repo.Update(ctx, s.db, invoiceID, map[string]any{
		"status":     status,
		"updated_at": s.clock.Now(),
	})
}

// RecordPayment applies a payment to the invoice balance inside one
// transaction: the read-modify-write on balance/amountPaid is never
// interleaved with a concurrent payment against the same invoice.
func (s *Service) RecordPayment(ctx context.Context, req invoicedomain.RecordPaymentRequest) (invoicedomain.RecordPaymentResponse, error) {
	invoiceID, err := parseID(req.InvoiceID, invoicedomain.ErrInvalidID)
	if err != nil {
		return invoicedomain.RecordPaymentResponse{}, err
	}
	if req.Amount.IsZero() || req.Amount.IsNegative() {
		return invoicedomain.RecordPaymentResponse{}, invoicedomain.ErrInvalidAmount
	}
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return invoicedomain.RecordPaymentResponse{}, invoicedomain.ErrInvalidPaymentMethod
	}

	var resp invoicedomain.RecordPaymentResponse
	if err := retryOnDuplicate(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			invoice, err := s.repo.FindByID(ctx, tx, invoiceID)
			if err != nil {
				return err
			}
			if invoice == nil {
				return invoicedomain.ErrInvoiceNotFound
			}

			amount := req.Amount.Round(2)
			newAmountPaid := invoice.AmountPaid.Add(amount)
			newBalance := invoice.Balance.Sub(amount)

			// Overpayment is accepted: balance clamps to zero while
			// amountPaid keeps the full sum.
			newStatus := invoicedomain.InvoiceStatusPartial
			if newBalance.Sign() <= 0 {
				newStatus = invoicedomain.InvoiceStatusPaid
			}
			storedBalance := newBalance
			if storedBalance.Sign() < 0 {
				storedBalance = decimal.Zero
			}

			now := s.clock.Now()
			today := clock.Today(s.clock)

			fields := map[string]any{
				"amount_paid": newAmountPaid,
				"balance":     storedBalance,
				"status":      newStatus,
				"updated_at":  now,
			}
			if newBalance.Sign() <= 0 && invoice.PaidDate == nil {
				fields["paid_date"] = today
			}
			if err := s.repo.Update(ctx, tx, invoiceID, fields); err != nil {
				return err
			}

			receiptNumber, err := s.nextReceiptNumber(ctx, tx)
			if err != nil {
				return err
			}

			txn := invoicedomain.PaymentTransaction{
				ID:            s.genID.Generate(),
				InvoiceID:     invoiceID,
				ReceiptNumber: receiptNumber,
				CustomerID:    invoice.CustomerID,
				CustomerName:  invoice.CustomerName,
				Amount:        amount,
				PaymentMethod: req.PaymentMethod,
				PaymentStatus: paymentStatusFinal,
				TransactionID: req.TransactionID,
				PaymentDate:   today,
				Notes:         req.Notes,
				CreatedAt:     now,
			}
			if err := s.repo.InsertTransaction(ctx, tx, &txn); err != nil {
				return err
			}

			receipt := receiptdomain.Receipt{
				ID:            s.genID.Generate(),
				ReceiptNumber: receiptNumber,
				InvoiceID:     &invoiceID,
				TransactionID: txn.ID,
				CustomerID:    invoice.CustomerID,
				CustomerName:  invoice.CustomerName,
				Amount:        amount,
				PaymentMethod: req.PaymentMethod,
				IssueDate:     today,
				Notes:         req.Notes,
				CreatedAt:     now,
			}
			if err := s.receiptRepo.Insert(ctx, tx, &receipt); err != nil {
				return err
			}

			resp = invoicedomain.RecordPaymentResponse{
				ReceiptNumber: receiptNumber,
				NewBalance:    storedBalance,
				Status:        newStatus,
			}
			return nil
		})
	}); err != nil {
		return invoicedomain.RecordPaymentResponse{}, err
	}

	s.metrics.ObservePayment(string(resp.Status))
	s.log.Info("payment recorded",
		zap.String("invoice_id", invoiceID.String()),
		zap.String("receipt_number", resp.ReceiptNumber),
		zap.String("status", string(resp.Status)),
	)

	return resp, nil
}

func (s *Service) Cancel(ctx context.Context, id string) error {
	return s.UpdateStatus(ctx, id, invoicedomain.InvoiceStatusCancelled)
}

// nextInvoiceNumber draws INV-YYYYMM-NNNN candidates until one is free.
// The random suffix keeps the original format but collisions are checked
// instead of silently producing duplicate-looking documents.
func (s *Service) nextInvoiceNumber(ctx context.Context, tx *gorm.DB) (string, error) {
	yearMonth := s.clock.Now().Format("200601")
	for range numberGenAttempts {
		candidate := fmt.Sprintf("INV-%s-%04d", yearMonth, rand.IntN(10000))
		existing, err := s.repo.FindByNumber(ctx, tx, candidate)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invoice number space exhausted for %s", yearMonth)
}

func (s *Service) nextReceiptNumber(ctx context.Context, tx *gorm.DB) (string, error) {
	yearMonth := s.clock.Now().Format("200601")
	for range numberGenAttempts {
		candidate := fmt.Sprintf("REC-%s-%04d", yearMonth, rand.IntN(10000))
		existing, err := s.receiptRepo.FindByNumber(ctx, tx, candidate)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("receipt number space exhausted for %s", yearMonth)
}

// retryOnDuplicate re-runs fn while it fails on a unique-index
// violation, bounded by the same attempt budget as number generation.
func retryOnDuplicate(fn func() error) error {
	var err error
	for range numberGenAttempts {
		err = fn()
		if err == nil || !db.IsDuplicateKeyErr(err) {
			return err
		}
	}
	return err
}

func parseID(raw string, invalid error) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil || id == 0 {
		return 0, invalid
	}
	return id, nil
}

func parseOptionalID(raw string) (*snowflake.ID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	id, err := snowflake.ParseString(trimmed)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
